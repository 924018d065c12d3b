package dash

// EntityView is the render-facing description of one entity.
type EntityView struct {
	ID    int     `json:"id"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Shape string  `json:"shape,omitempty"`
	Paint string  `json:"paint,omitempty"`
}

// Snapshot is everything a renderer needs for one tick.
type Snapshot struct {
	Tick      int          `json:"tick"`
	State     string       `json:"state"`
	Outcome   string       `json:"outcome,omitempty"`
	Score     int          `json:"score"`
	Lives     int          `json:"lives"`
	Coins     int          `json:"coins"`
	Speed     float64      `json:"speed"`
	Skin      string       `json:"skin"`
	Player    EntityView   `json:"player"`
	Obstacles []EntityView `json:"obstacles"`
	Pickups   []EntityView `json:"pickups"`
}

func view(e Entity) EntityView {
	v := EntityView{
		ID:   e.ID,
		Kind: e.Kind.String(),
		X:    e.Box.X,
		Y:    e.Box.Y,
		W:    e.Box.W,
		H:    e.Box.H,
	}
	if e.Kind == KindObstacle {
		v.Shape = e.Shape.String()
		v.Paint = e.Paint.String()
	}
	return v
}

// Snapshot captures the current run for rendering.
func (l *RunLoop) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      l.tick,
		State:     l.state.String(),
		Score:     l.score,
		Lives:     l.player.Lives,
		Coins:     l.record.Coins,
		Speed:     l.difficulty.Speed(),
		Skin:      l.skin.Name,
		Player:    view(Entity{Kind: KindPlayer, Box: l.player.Box}),
		Obstacles: make([]EntityView, 0, len(l.obstacles)),
		Pickups:   make([]EntityView, 0, len(l.coins)),
	}
	if l.outcome != OutcomeNone {
		s.Outcome = l.outcome.String()
	}
	for _, o := range l.obstacles {
		s.Obstacles = append(s.Obstacles, view(o))
	}
	for _, c := range l.coins {
		s.Pickups = append(s.Pickups, view(c))
	}
	return s
}
