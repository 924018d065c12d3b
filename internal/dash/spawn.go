package dash

import (
	"math/rand"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

// SpawnController decides when new coins and obstacles enter from the right.
//
// Obstacle spacing is anchored on the x-origin of the last obstacle actually
// created. A rejected roll leaves the anchor alone, so the next eligible tick
// retries against the same anchor.
type SpawnController struct {
	world         config.WorldConfig
	obstacles     config.ObstacleConfig
	coins         config.CoinConfig
	rng           *rand.Rand
	coinsSpawned  int
	lastObstacleX float64
	nextID        int
}

// NewSpawnController creates a controller drawing from the shared generator.
func NewSpawnController(cfg config.DashConfig, rng *rand.Rand) *SpawnController {
	return &SpawnController{
		world:         cfg.World,
		obstacles:     cfg.Obstacles,
		coins:         cfg.Coins,
		rng:           rng,
		lastObstacleX: cfg.World.Width + cfg.Obstacles.SpawnMargin,
		nextID:        1,
	}
}

// CoinsSpawned returns how many coins this run has produced.
func (s *SpawnController) CoinsSpawned() int {
	return s.coinsSpawned
}

// LastObstacleX returns the current spacing anchor.
func (s *SpawnController) LastObstacleX() float64 {
	return s.lastObstacleX
}

// roll draws uniformly from 1..100.
func (s *SpawnController) roll() int {
	return s.rng.Intn(100) + 1
}

// RollCoin spawns a coin at the right edge with a small fixed chance,
// up to the per-run cap. No draw is made once the cap is reached.
func (s *SpawnController) RollCoin() (Entity, bool) {
	if s.coinsSpawned >= s.coins.MaxPerRun {
		return Entity{}, false
	}
	if s.roll() > s.coins.ChancePercent {
		return Entity{}, false
	}

	s.coinsSpawned++
	return Entity{
		ID:   s.id(),
		Kind: KindCoin,
		Box: core.NewRectF(
			s.world.Width+s.coins.SpawnMargin,
			s.world.Height-s.coins.HeightOffset,
			s.coins.Size, s.coins.Size,
		),
	}, true
}

// ObstacleChance returns the spawn chance factor for a score, in [min, max].
func (s *SpawnController) ObstacleChance(score int) int {
	return core.Clamp(score/s.obstacles.ChanceDivisor, s.obstacles.MinChance, s.obstacles.MaxChance)
}

// Eligible reports whether an obstacle roll happens this tick given the
// most recently created live obstacle (nil when none is live).
func (s *SpawnController) Eligible(newest *Entity) bool {
	if newest == nil {
		return true
	}
	return newest.Box.X < s.world.Width-float64(s.obstacles.MinDistance)
}

// RollObstacle proposes a candidate position past the anchor and creates an
// obstacle there if the score-scaled roll passes.
func (s *SpawnController) RollObstacle(score int, newest *Entity) (Entity, bool) {
	if !s.Eligible(newest) {
		return Entity{}, false
	}

	spread := s.obstacles.MaxDistance - s.obstacles.MinDistance
	candidateX := s.lastObstacleX + float64(s.obstacles.MinDistance+s.rng.Intn(spread+1))

	if s.roll() >= s.ObstacleChance(score)*s.obstacles.ChanceScale {
		return Entity{}, false
	}

	shape := Shape(s.rng.Intn(2))
	paint := Paint(s.rng.Intn(paletteSize))
	y := s.world.Height - s.obstacles.ElevatedOffset
	if s.rng.Intn(2) == 0 {
		y = s.world.Height - s.obstacles.GroundOffset
	}

	s.lastObstacleX = candidateX
	return Entity{
		ID:    s.id(),
		Kind:  KindObstacle,
		Box:   core.NewRectF(candidateX, y, s.obstacles.Width, s.obstacles.Height),
		Shape: shape,
		Paint: paint,
	}, true
}

func (s *SpawnController) id() int {
	id := s.nextID
	s.nextID++
	return id
}
