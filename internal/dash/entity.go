package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindCoin
)

// String returns the kind name used in snapshots.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Shape is the cosmetic outline of an obstacle. Collision always uses the box.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeTriangle
)

func (s Shape) String() string {
	if s == ShapeTriangle {
		return "triangle"
	}
	return "square"
}

// Paint is an obstacle color from the three-color palette.
type Paint int

const (
	PaintBlack Paint = iota
	PaintRed
	PaintBlue
)

func (p Paint) String() string {
	switch p {
	case PaintRed:
		return "red"
	case PaintBlue:
		return "blue"
	default:
		return "black"
	}
}

// paletteSize is the number of obstacle paints drawn from.
const paletteSize = 3

// Entity is a positioned box with a kind tag.
// Shape and Paint are only meaningful for obstacles.
type Entity struct {
	ID    int
	Kind  Kind
	Box   core.RectF
	Shape Shape
	Paint Paint
}
