// Package pursuit steers nextbots toward the player, one fixed pattern per bot.
package pursuit

import (
	"fmt"
	"strings"
)

// Pattern is the steering strategy assigned to an agent at spawn, immutable afterward
type Pattern int

const (
	PatternDirect Pattern = iota
	PatternFlankLeft
	PatternFlankRight
	PatternZigzag
	PatternErratic
	PatternCircling
	PatternSpiral
	PatternStalker
	PatternCharger
	PatternPatience
	PatternArcher
	PatternPredator
	PatternFearful
	PatternSwarmer
	PatternJitter
	PatternPatrol
	PatternTracker
	PatternCount
)

var patternNames = [PatternCount]string{
	"direct", "flank-left", "flank-right", "zigzag", "erratic",
	"circling", "spiral", "stalker", "charger", "patience",
	"archer", "predator", "fearful", "swarmer", "jitter",
	"patrol", "tracker",
}

func (p Pattern) String() string {
	if p >= 0 && p < PatternCount {
		return patternNames[p]
	}
	return "unknown"
}

// Patterns lists every pattern in spawn assignment order
func Patterns() []Pattern {
	out := make([]Pattern, PatternCount)
	for i := range out {
		out[i] = Pattern(i)
	}
	return out
}

// ParsePattern resolves a pattern name, case-insensitive
func ParsePattern(s string) (Pattern, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range patternNames {
		if name == s {
			return Pattern(i), nil
		}
	}
	return PatternDirect, fmt.Errorf("unknown pattern %q", s)
}

// ParsePatterns resolves a comma-separated list, empty input yields nil
func ParsePatterns(s string) ([]Pattern, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []Pattern
	for _, part := range strings.Split(s, ",") {
		p, err := ParsePattern(part)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
