package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// Player is the avatar: a box with vertical physics and a life counter.
type Player struct {
	Box         core.RectF
	Velocity    float64 // positive is downward
	Grounded    bool
	Lives       int
	gravity     float64
	jumpImpulse float64
	groundY     float64
}

// Jump launches the player when standing on the floor.
// There is no air jump.
func (p *Player) Jump() {
	if !p.Grounded {
		return
	}
	p.Velocity = p.jumpImpulse
	p.Grounded = false
}

// ForceGround drops the player straight onto the floor line.
func (p *Player) ForceGround() {
	p.Box.Y = p.groundY
	p.Velocity = 0
	p.Grounded = true
}

// Tick advances one step of vertical motion.
// Gravity applies every tick, grounded or not; the floor clamp absorbs it.
func (p *Player) Tick() {
	p.Velocity += p.gravity
	p.Box.Y += p.Velocity

	if p.Box.Y >= p.groundY {
		p.Box.Y = p.groundY
		p.Velocity = 0
		p.Grounded = true
	}
	if p.Box.Y < 0 {
		p.Box.Y = 0
		p.Velocity = 0
	}
}

// LoseLife removes one life and reports whether none remain.
func (p *Player) LoseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}
