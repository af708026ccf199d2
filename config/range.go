package config

import "fmt"

const (
	defaultRangeStart = 0
	defaultRangeEnd   = 10

	// MaxRangeSpan caps the number of observations one run prints.
	MaxRangeSpan = 1_000_000
)

// RangeConfig bounds the integer observations printed by the output loop:
// Start is included, End is not.
type RangeConfig struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SetDefaults selects [0, 10) when neither bound is set.
func (c *RangeConfig) SetDefaults() {
	if c.Start == 0 && c.End == 0 {
		c.Start = defaultRangeStart
		c.End = defaultRangeEnd
	}
}

// Validate rejects reversed bounds and ranges wider than MaxRangeSpan.
func (c RangeConfig) Validate() error {
	if c.End < c.Start {
		return fmt.Errorf("range end %d is before start %d", c.End, c.Start)
	}
	// End >= Start, so the unsigned difference is exact even when the signed
	// one would overflow.
	if span := uint64(c.End) - uint64(c.Start); span > MaxRangeSpan {
		return fmt.Errorf("range [%d, %d) spans %d values, limit is %d", c.Start, c.End, span, MaxRangeSpan)
	}
	return nil
}
