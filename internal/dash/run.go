// Package dash implements the runner simulation: player physics, obstacle
// and coin spawning, difficulty escalation, collisions and the per-tick run
// loop. It has no terminal or storage dependencies; collaborators plug in
// through RunContext.
package dash

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/progress"
)

// State is the run loop's state machine position.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome is why a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
	OutcomeManualExit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	case OutcomeManualExit:
		return "manual_exit"
	default:
		return "none"
	}
}

// RunConfig is what the menus choose before a run.
type RunConfig struct {
	Tier config.Tier
	Skin string
}

// RunContext carries the collaborators of one run. Any field may be nil.
type RunContext struct {
	Frames    FrameSink
	Audio     AudioSink
	Persister Persister
	Rand      *rand.Rand
	Logger    *log.Logger
	TickRate  int // ticks per second for Run; 0 runs unpaced
}

// Result is handed back to the caller when the run terminates.
type Result struct {
	Outcome    Outcome
	Score      int
	Lives      int
	PickedUp   int              // coins collected this run
	Record     *progress.Record // the caller's record, updated in place
	Hold       time.Duration    // how long to keep the end screen up
	PersistErr error            // non-fatal storage failure
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State   State
	Outcome Outcome
}

// RunLoop simulates one run. It is not safe for concurrent use.
type RunLoop struct {
	cfg        config.DashConfig
	rc         RunContext
	logger     *log.Logger
	record     *progress.Record
	skin       progress.Skin
	tier       config.Tier
	player     Player
	obstacles  []Entity // creation order; the last one is the newest
	coins      []Entity
	spawner    *SpawnController
	difficulty *DifficultyModel
	state      State
	outcome    Outcome
	score      int
	tick       int
	pickedUp   int
	victory    bool
	persistErr error
}

// New prepares a run. It fails fast on an invalid config or an unknown tier; an unknown or broken
// skin only degrades to the placeholder sprite.
func New(cfg config.DashConfig, run RunConfig, rec *progress.Record, rc RunContext) (*RunLoop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dash: invalid config: %w", err)
	}
	tier, err := config.ParseTier(string(run.Tier))
	if err != nil {
		return nil, err
	}
	difficulty, err := NewDifficultyModel(cfg.Difficulty, tier)
	if err != nil {
		return nil, err
	}

	logger := rc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rc.Rand == nil {
		rc.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if rec == nil {
		rec = progress.New()
	}

	skin := progress.NewCatalog(cfg.Skins).Resolve(run.Skin)
	if skin.Placeholder {
		logger.Warn("skin sprite missing, using placeholder", "skin", run.Skin)
	}

	l := &RunLoop{
		cfg:        cfg,
		rc:         rc,
		logger:     logger,
		record:     rec,
		skin:       skin,
		tier:       tier,
		spawner:    NewSpawnController(cfg, rc.Rand),
		difficulty: difficulty,
		state:      StateRunning,
		player: Player{
			Box: core.NewRectF(
				cfg.Player.X,
				cfg.World.Height-cfg.Player.StartOffset,
				cfg.Player.Width, cfg.Player.Height,
			),
			Grounded:    true,
			Lives:       cfg.Run.Lives,
			gravity:     cfg.Player.Gravity,
			jumpImpulse: cfg.Player.JumpImpulse,
			groundY:     cfg.GroundY(),
		},
	}

	logger.Info("run started", "tier", tier, "skin", skin.Name, "speed", difficulty.Speed())
	return l, nil
}

// State returns the current state.
func (l *RunLoop) State() State { return l.state }

// Score returns the current score.
func (l *RunLoop) Score() int { return l.score }

// Lives returns the player's remaining lives.
func (l *RunLoop) Lives() int { return l.player.Lives }

// Player returns a copy of the player.
func (l *RunLoop) Player() Player { return l.player }

// Speed returns the shared obstacle speed.
func (l *RunLoop) Speed() float64 { return l.difficulty.Speed() }

// Skin returns the resolved skin for this run.
func (l *RunLoop) Skin() progress.Skin { return l.skin }

// Tier returns the run's difficulty tier.
func (l *RunLoop) Tier() config.Tier { return l.tier }

// Step advances the run by one tick.
//
// Order while running: input, movement, coin roll, obstacle roll,
// escalation, score, obstacle collisions, coin collisions, victory, frame.
// Paused ticks only publish a frame; terminated ticks do nothing.
func (l *RunLoop) Step(in core.InputFrame) StepResult {
	if l.state == StateTerminated {
		return l.stepResult()
	}
	l.tick++

	if in.Has(core.ActionQuit) || in.Has(core.ActionExitToMenu) {
		l.terminate(OutcomeManualExit)
		return l.stepResult()
	}

	if in.Has(core.ActionTogglePause) {
		if l.state == StatePaused {
			l.state = StateRunning
		} else {
			l.state = StatePaused
		}
	}
	if l.state == StatePaused {
		l.publish()
		return l.stepResult()
	}

	if in.Has(core.ActionJump) {
		l.player.Jump()
	}
	if in.Has(core.ActionFall) {
		l.player.ForceGround()
	}

	l.advance()

	if coin, ok := l.spawner.RollCoin(); ok {
		l.coins = append(l.coins, coin)
	}
	if obstacle, ok := l.spawner.RollObstacle(l.score, l.newestObstacle()); ok {
		l.obstacles = append(l.obstacles, obstacle)
	}

	if l.difficulty.Escalate(l.score) {
		l.logger.Debug("speed raised", "score", l.score, "speed", l.difficulty.Speed())
	}

	l.score++

	if l.resolveObstacles() {
		return l.stepResult()
	}
	l.collectCoins()

	if l.score >= l.cfg.Run.VictoryScore && !l.victory {
		l.victory = true
		l.emit(EventVictory)
		l.terminate(OutcomeVictory)
		return l.stepResult()
	}

	l.publish()
	return l.stepResult()
}

// advance moves every entity and drops those past the left edge.
// All obstacles share the current speed.
func (l *RunLoop) advance() {
	l.player.Tick()

	speed := l.difficulty.Speed()
	kept := l.obstacles[:0]
	for _, o := range l.obstacles {
		o.Box.X -= speed
		if o.Box.X >= l.cfg.Obstacles.DespawnX {
			kept = append(kept, o)
		}
	}
	l.obstacles = kept

	keptCoins := l.coins[:0]
	for _, c := range l.coins {
		c.Box.X -= l.cfg.Coins.Speed
		if c.Box.X >= l.cfg.Coins.DespawnX {
			keptCoins = append(keptCoins, c)
		}
	}
	l.coins = keptCoins
}

func (l *RunLoop) newestObstacle() *Entity {
	if len(l.obstacles) == 0 {
		return nil
	}
	return &l.obstacles[len(l.obstacles)-1]
}

// terminate enters the absorbing state and requests a persist.
func (l *RunLoop) terminate(o Outcome) {
	l.state = StateTerminated
	l.outcome = o

	if l.rc.Persister != nil {
		if err := l.rc.Persister.Persist(l.record); err != nil {
			l.persistErr = err
			l.logger.Warn("could not save progress", "error", err)
		}
	}

	l.logger.Info("run ended",
		"outcome", o,
		"score", l.score,
		"lives", l.player.Lives,
		"coins", l.pickedUp,
	)
	l.publish()
}

func (l *RunLoop) emit(e Event) {
	if l.rc.Audio != nil {
		l.rc.Audio.Emit(e)
	}
}

func (l *RunLoop) publish() {
	if l.rc.Frames != nil {
		l.rc.Frames.Frame(l.Snapshot())
	}
}

func (l *RunLoop) stepResult() StepResult {
	return StepResult{State: l.state, Outcome: l.outcome}
}

// Result returns the terminal result. Before termination Outcome is OutcomeNone.
func (l *RunLoop) Result() Result {
	r := Result{
		Outcome:    l.outcome,
		Score:      l.score,
		Lives:      l.player.Lives,
		PickedUp:   l.pickedUp,
		Record:     l.record,
		PersistErr: l.persistErr,
	}
	if l.outcome == OutcomeDefeat || l.outcome == OutcomeVictory {
		r.Hold = l.cfg.Run.EndHold
	}
	return r
}

// Run drives the loop until it terminates. At each tick boundary it drains
// pending intents without blocking; a cancelled context is treated as a quit
// at the next boundary. With a TickRate the loop waits a fixed interval per
// tick and holds the end screen before returning.
func (l *RunLoop) Run(ctx context.Context, intents <-chan core.Action) Result {
	var ticker *time.Ticker
	if l.rc.TickRate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(l.rc.TickRate))
		defer ticker.Stop()
	}

	frame := core.NewInputFrame()
	for {
	drain:
		for intents != nil {
			select {
			case a, ok := <-intents:
				if !ok {
					intents = nil
					break drain
				}
				frame.Set(a)
			default:
				break drain
			}
		}
		if ctx.Err() != nil {
			frame.Set(core.ActionQuit)
		}

		res := l.Step(frame)
		frame.Clear()
		if res.State == StateTerminated {
			break
		}
		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
			}
		}
	}

	result := l.Result()
	if ticker != nil && result.Hold > 0 {
		hold := time.NewTimer(result.Hold)
		defer hold.Stop()
		select {
		case <-hold.C:
		case <-ctx.Done():
		}
	}
	return result
}
