package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// hitsAny reports whether the box overlaps any of the entities.
func hitsAny(box core.RectF, entities []Entity) bool {
	for _, e := range entities {
		if box.Intersects(e.Box) {
			return true
		}
	}
	return false
}

// collect splits entities into those overlapping box and the rest.
// The kept slice reuses the input's backing array.
func collect(box core.RectF, entities []Entity) (kept []Entity, taken int) {
	kept = entities[:0]
	for _, e := range entities {
		if box.Intersects(e.Box) {
			taken++
			continue
		}
		kept = append(kept, e)
	}
	return kept, taken
}

// resolveObstacles costs one life when the player touches any obstacle.
// Obstacles are not removed and there is no cooldown, so an obstacle that
// stays in contact keeps costing lives every tick. Returns true when the
// run ended in defeat.
func (l *RunLoop) resolveObstacles() bool {
	if !hitsAny(l.player.Box, l.obstacles) {
		return false
	}

	l.emit(EventLifeLost)
	if !l.player.LoseLife() {
		l.logger.Debug("life lost", "lives", l.player.Lives, "score", l.score)
		return false
	}

	l.record.AppendScore(l.score)
	l.terminate(OutcomeDefeat)
	return true
}

// collectCoins removes every coin under the player and credits the balance.
func (l *RunLoop) collectCoins() {
	var taken int
	l.coins, taken = collect(l.player.Box, l.coins)
	for i := 0; i < taken; i++ {
		l.record.AddCoins(1)
		l.pickedUp++
		l.emit(EventCoinCollected)
	}
}
