package sparkline

import (
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/palette"
)

// Mode selects how a sparkline reads its samples.
type Mode int

const (
	// ModeAbsolute plots each slot's average level.
	ModeAbsolute Mode = iota
	// ModeDelta plots the direction of change between neighbours.
	ModeDelta
	// ModeTrend plots direction and magnitude of change relative to the
	// median change.
	ModeTrend
)

var modeNames = []string{"absolute", "delta", "trend"}

func (m Mode) String() string {
	if int(m) >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Namespace is the palette namespace themes for m are looked up in.
func (m Mode) Namespace() palette.Namespace {
	switch m {
	case ModeDelta:
		return palette.Delta
	case ModeTrend:
		return palette.Trend
	default:
		return palette.Absolute
	}
}

// ParseMode resolves a mode name. The empty string selects ModeAbsolute.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAbsolute, nil
	}
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return ModeAbsolute, errors.Newf(errors.ErrUnknownMode,
		"unknown mode '%s', available are <%s>", s, strings.Join(modeNames, ", ")).
		WithDetail("mode", s)
}

// ModeNames returns the valid mode names.
func ModeNames() []string {
	out := make([]string, len(modeNames))
	copy(out, modeNames)
	return out
}
