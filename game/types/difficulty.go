package types

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DefaultDifficulty is used when nothing else is configured
const DefaultDifficulty = Medium

var tickRates = [...]int{
	Easy:   8,
	Medium: 12,
	Hard:   18,
}

// TickRate returns ticks per second. Unknown values fall back to medium.
func (d Difficulty) TickRate() int {
	if d < Easy || d > Hard {
		return tickRates[DefaultDifficulty]
	}
	return tickRates[d]
}

// TickInterval is the duration of a single tick
func (d Difficulty) TickInterval() time.Duration {
	return time.Second / time.Duration(d.TickRate())
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return DefaultDifficulty.String()
	}
}

// ParseDifficulty maps a label to a Difficulty. Unknown labels yield the
// default together with an error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return DefaultDifficulty, fmt.Errorf("unknown difficulty %q", s)
}
