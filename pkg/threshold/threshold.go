// Package threshold maps a value onto a color name using a list of trigger
// values. Lists are kept sorted in descending order so a value resolves to the
// highest threshold it meets or exceeds.
package threshold

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
)

// Threshold pairs a trigger value with the color used at or above it.
type Threshold struct {
	Value float64 `mapstructure:"value" json:"value" toml:"value"`
	Color string  `mapstructure:"color" json:"color" toml:"color"`
}

// List is a threshold list sorted by descending Value. Build it with NewList.
type List []Threshold

// NewList validates thresholds and returns them sorted in descending order.
// The input slice is left untouched. Equal values keep their input order.
func NewList(thresholds []Threshold) (List, error) {
	out := make(List, len(thresholds))
	copy(out, thresholds)

	for i, t := range out {
		if math.IsNaN(t.Value) {
			return nil, errors.Newf(errors.ErrThresholdInvalid, "threshold %d has no numeric value", i).
				WithDetail("index", i)
		}
		if strings.TrimSpace(t.Color) == "" {
			return nil, errors.Newf(errors.ErrThresholdInvalid, "threshold %d (%g) has an empty color", i, t.Value).
				WithDetail("index", i)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

// Colors returns the distinct colors referenced by the list, in list order.
func (l List) Colors() []string {
	seen := make(map[string]bool, len(l))
	var out []string
	for _, t := range l {
		if !seen[t.Color] {
			seen[t.Color] = true
			out = append(out, t.Color)
		}
	}
	return out
}

// Resolve returns the color of the first threshold whose value is <= value.
// When none qualifies the lowest threshold's color is used, and an empty list
// yields defaultColor.
func Resolve(value float64, thresholds List, defaultColor string) string {
	if len(thresholds) == 0 {
		return defaultColor
	}
	for _, t := range thresholds {
		if value >= t.Value {
			return t.Color
		}
	}
	return thresholds[len(thresholds)-1].Color
}

// Index is Resolve expressed as a position in the list, so callers can keep
// per-threshold data in a parallel slice. It returns -1 for an empty list.
func Index(value float64, thresholds List) int {
	if len(thresholds) == 0 {
		return -1
	}
	for i, t := range thresholds {
		if value >= t.Value {
			return i
		}
	}
	return len(thresholds) - 1
}

// Parse reads a "value:color" (or "value=color") pair.
func Parse(s string) (Threshold, error) {
	sep := strings.IndexAny(s, ":=")
	if sep < 0 {
		return Threshold{}, errors.Newf(errors.ErrThresholdInvalid, "threshold '%s' must look like value:color", s)
	}
	raw, color := strings.TrimSpace(s[:sep]), strings.TrimSpace(s[sep+1:])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Threshold{}, errors.Wrapf(err, errors.ErrThresholdInvalid, "threshold '%s' has a non-numeric value", s)
	}
	return Threshold{Value: v, Color: color}, nil
}

// ParseAll parses every entry with Parse.
func ParseAll(entries []string) ([]Threshold, error) {
	out := make([]Threshold, 0, len(entries))
	for _, e := range entries {
		t, err := Parse(e)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
