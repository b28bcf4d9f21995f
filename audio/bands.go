// Package audio gates per-bot proximity sounds and plays them through beep.
package audio

import "github.com/lixenwraith/nextbot-maze/parameter"

// Bands maps horizontal distance to gain
//
//	d <= Inner          1
//	d <= Middle         MiddleGain
//	d <= Outer          MiddleGain fading linearly to 0
//	beyond              0
type Bands struct {
	Inner, Middle, Outer float64
	MiddleGain           float64
}

// DefaultBands returns the parameter defaults
func DefaultBands() Bands {
	return Bands{
		Inner:      parameter.AudioInnerRadius,
		Middle:     parameter.AudioMiddleRadius,
		Outer:      parameter.AudioOuterRadius,
		MiddleGain: parameter.AudioMiddleGain,
	}
}

// Gain returns the volume for horizontal distance d
func (b Bands) Gain(d float64) float64 {
	switch {
	case d <= b.Inner:
		return 1
	case d <= b.Middle:
		return b.MiddleGain
	case d <= b.Outer:
		span := b.Outer - b.Middle
		if span <= 0 {
			return 0
		}
		return b.MiddleGain * (1 - (d-b.Middle)/span)
	default:
		return 0
	}
}

// Audible reports whether d is inside the outer radius
func (b Bands) Audible(d float64) bool {
	return d <= b.Outer
}
