package game

import "time"

// lineScore is the base score for clearing n rows at once, before the
// level multiplier. Clearing four rows in one lock is worth far more
// than four separate single clears.
var lineScore = map[int]int{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

const (
	linesPerLevel = 10
	maxLevel      = 29

	baseFallInterval = 500 * time.Millisecond
	fallIntervalStep = 50 * time.Millisecond
	minFallInterval  = 50 * time.Millisecond
)

// Progress tracks the score, level and cleared-line counters for one
// session. Score and Lines only ever grow; Level is derived from Lines.
// The zero value is a fresh session at level 0 (shown as level 1).
type Progress struct {
	Score int
	Level int
	Lines int
}

// ApplyClears records a clear event of n rows (0-4). Zero rows is a
// normal outcome and changes nothing.
func (p *Progress) ApplyClears(n int) {
	if n <= 0 {
		return
	}
	p.Score += lineScore[n] * (p.Level + 1)
	p.Lines += n
	p.Level = min(p.Lines/linesPerLevel, maxLevel)
}

// FallInterval returns the time between gravity steps at the current
// level. It shrinks as the level rises and never goes below the floor.
func (p Progress) FallInterval() time.Duration {
	interval := baseFallInterval - time.Duration(p.Level)*fallIntervalStep
	return max(interval, minFallInterval)
}
