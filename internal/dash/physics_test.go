package dash

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestPlayer() Player {
	cfg := config.DefaultDashConfig()
	return Player{
		Box:         core.NewRectF(cfg.Player.X, cfg.GroundY(), cfg.Player.Width, cfg.Player.Height),
		Grounded:    true,
		Lives:       cfg.Run.Lives,
		gravity:     cfg.Player.Gravity,
		jumpImpulse: cfg.Player.JumpImpulse,
		groundY:     cfg.GroundY(),
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p := newTestPlayer()

	p.Jump()
	if p.Grounded {
		t.Fatal("player should be airborne after jump")
	}
	p.Tick()
	if !approx(p.Velocity, -14.5) || !approx(p.Box.Y, 535.5) {
		t.Fatalf("after one tick: velocity=%v y=%v, want -14.5 and 535.5", p.Velocity, p.Box.Y)
	}

	// A jump while airborne changes nothing.
	v, y := p.Velocity, p.Box.Y
	p.Jump()
	if p.Velocity != v || p.Box.Y != y {
		t.Error("air jump should be a no-op")
	}

	ticks := 1
	for !p.Grounded && ticks < 200 {
		p.Tick()
		ticks++
	}
	if !p.Grounded || p.Box.Y != 550 || p.Velocity != 0 {
		t.Errorf("landing: grounded=%v y=%v v=%v", p.Grounded, p.Box.Y, p.Velocity)
	}
	if ticks < 55 || ticks > 65 {
		t.Errorf("airtime = %d ticks, want about 60", ticks)
	}
}

func TestPlayerGroundedGravityAbsorbed(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 10; i++ {
		p.Tick()
	}
	if p.Box.Y != 550 || p.Velocity != 0 || !p.Grounded {
		t.Errorf("grounded player drifted: y=%v v=%v", p.Box.Y, p.Velocity)
	}
}

func TestPlayerCeilingClamp(t *testing.T) {
	p := newTestPlayer()
	p.Box.Y = 5
	p.Velocity = -20
	p.Grounded = false
	p.Tick()
	if p.Box.Y != 0 || p.Velocity != 0 {
		t.Errorf("ceiling clamp: y=%v v=%v, want 0 and 0", p.Box.Y, p.Velocity)
	}
}

func TestPlayerForceGround(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Tick()
	p.ForceGround()
	if p.Box.Y != 550 || p.Velocity != 0 || !p.Grounded {
		t.Errorf("force ground: y=%v v=%v grounded=%v", p.Box.Y, p.Velocity, p.Grounded)
	}
}

func TestPlayerLoseLife(t *testing.T) {
	p := newTestPlayer()
	if p.LoseLife() || p.LoseLife() {
		t.Fatal("should have lives left after two hits")
	}
	if !p.LoseLife() {
		t.Fatal("third hit should be fatal")
	}
	p.LoseLife()
	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}
}

func TestDifficultyEscalation(t *testing.T) {
	d, err := NewDifficultyModel(config.DefaultDashConfig().Difficulty, config.TierEasy)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		score  int
		raised bool
		speed  float64
	}{
		{0, false, 3},
		{999, false, 3},
		{1000, true, 3.2},
		{1500, false, 3.2},
		{2000, true, 3.4},
		{2001, false, 3.4},
	}
	for _, s := range steps {
		if got := d.Escalate(s.score); got != s.raised {
			t.Errorf("Escalate(%d) = %v, want %v", s.score, got, s.raised)
		}
		if !approx(d.Speed(), s.speed) {
			t.Errorf("after score %d speed = %v, want %v", s.score, d.Speed(), s.speed)
		}
	}
	if d.NextThreshold() != 3000 {
		t.Errorf("next threshold = %d, want 3000", d.NextThreshold())
	}
}

func TestDifficultyTiers(t *testing.T) {
	cfg := config.DefaultDashConfig().Difficulty
	for tier, want := range map[config.Tier]float64{
		config.TierEasy:   3,
		config.TierMedium: 5,
		config.TierHard:   7,
	} {
		d, err := NewDifficultyModel(cfg, tier)
		if err != nil {
			t.Fatalf("%s: %v", tier, err)
		}
		if d.Speed() != want {
			t.Errorf("%s speed = %v, want %v", tier, d.Speed(), want)
		}
	}

	if _, err := NewDifficultyModel(cfg, config.Tier("insane")); !errors.Is(err, config.ErrUnknownTier) {
		t.Errorf("unknown tier err = %v", err)
	}
}

func TestObstacleChance(t *testing.T) {
	s := NewSpawnController(config.DefaultDashConfig(), rand.New(rand.NewSource(1)))
	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{399, 1},
		{800, 2},
		{1999, 4},
		{4000, 10},
		{100000, 10},
	}
	for _, tt := range tests {
		if got := s.ObstacleChance(tt.score); got != tt.want {
			t.Errorf("ObstacleChance(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestObstacleEligibility(t *testing.T) {
	s := NewSpawnController(config.DefaultDashConfig(), rand.New(rand.NewSource(1)))

	if !s.Eligible(nil) {
		t.Error("no live obstacle should be eligible")
	}
	far := Entity{Box: core.NewRectF(700, 550, 50, 50)}
	if s.Eligible(&far) {
		t.Error("newest obstacle at x=700 should block spawning")
	}
	edge := Entity{Box: core.NewRectF(650, 550, 50, 50)}
	if s.Eligible(&edge) {
		t.Error("x=650 is not strictly left of 650")
	}
	near := Entity{Box: core.NewRectF(600, 550, 50, 50)}
	if !s.Eligible(&near) {
		t.Error("newest obstacle at x=600 should allow spawning")
	}
	if _, ok := s.RollObstacle(4000, &far); ok {
		t.Error("ineligible roll spawned an obstacle")
	}
}

func TestObstacleSpacing(t *testing.T) {
	s := NewSpawnController(config.DefaultDashConfig(), rand.New(rand.NewSource(7)))
	if s.LastObstacleX() != 850 {
		t.Fatalf("initial anchor = %v, want 850", s.LastObstacleX())
	}

	spawned := 0
	for i := 0; i < 2000; i++ {
		before := s.LastObstacleX()
		o, ok := s.RollObstacle(4000, nil)
		if !ok {
			if s.LastObstacleX() != before {
				t.Fatal("rejected roll moved the anchor")
			}
			continue
		}
		spawned++
		gap := o.Box.X - before
		if gap < 150 || gap > 300 {
			t.Fatalf("gap %v outside [150, 300]", gap)
		}
		if o.Box.Y != 550 && o.Box.Y != 400 {
			t.Fatalf("obstacle lane y=%v", o.Box.Y)
		}
		if o.Kind != KindObstacle || o.Box.W != 50 || o.Box.H != 50 {
			t.Fatalf("bad obstacle %+v", o)
		}
	}
	if spawned == 0 {
		t.Fatal("no obstacles spawned at max chance")
	}
}

func TestCoinCap(t *testing.T) {
	s := NewSpawnController(config.DefaultDashConfig(), rand.New(rand.NewSource(3)))
	spawned := 0
	for i := 0; i < 100000; i++ {
		c, ok := s.RollCoin()
		if !ok {
			continue
		}
		spawned++
		if c.Box.X != 850 || c.Box.Y != 520 || c.Box.W != 30 {
			t.Fatalf("coin spawned at %+v", c.Box)
		}
	}
	if spawned != 5 || s.CoinsSpawned() != 5 {
		t.Errorf("spawned %d coins, want the cap of 5", spawned)
	}
}
