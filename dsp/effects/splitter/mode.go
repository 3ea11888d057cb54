package splitter

import (
	"fmt"
	"strings"
)

// Mode selects the crossover engine.
type Mode int

const (
	// ModeLR24 is the minimum-phase Linkwitz-Riley 24 dB/oct crossover.
	ModeLR24 Mode = iota
	// ModeLR24LinearPhase is the linear-phase FIR version of ModeLR24.
	ModeLR24LinearPhase
)

// String returns the short identifier of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLR24:
		return "lr24"
	case ModeLR24LinearPhase:
		return "lr24-lp"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Name returns the display name of the mode.
func (m Mode) Name() string {
	switch m {
	case ModeLR24:
		return "LR24"
	case ModeLR24LinearPhase:
		return "LR24 (LP)"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m == ModeLR24 || m == ModeLR24LinearPhase
}

// ParseMode parses the identifiers returned by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lr24":
		return ModeLR24, nil
	case "lr24-lp", "lr24lp":
		return ModeLR24LinearPhase, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMode, s)
	}
}
