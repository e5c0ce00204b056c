package layout

import "github.com/matzehuels/shapealign/pkg/errors"

// Mode is an alignment strategy.
type Mode string

// Alignment modes. The string values are the wire format used by directives.
const (
	HorizontalDistribute Mode = "horizontal_distribute"
	VerticalDistribute   Mode = "vertical_distribute"
	HorizontalCenter     Mode = "horizontal_center"
	VerticalCenter       Mode = "vertical_center"
)

// Modes lists every supported mode in a stable order.
var Modes = []Mode{
	HorizontalDistribute,
	VerticalDistribute,
	HorizontalCenter,
	VerticalCenter,
}

var modeDescriptions = map[Mode]string{
	HorizontalDistribute: "spread shapes evenly left to right",
	VerticalDistribute:   "spread shapes evenly top to bottom",
	HorizontalCenter:     "line shapes up on one row (shared vertical center)",
	VerticalCenter:       "line shapes up in one column (shared horizontal center)",
}

// ParseMode maps a directive string to a Mode. Matching is exact; any other
// value, including a differently cased one, yields an UNSUPPORTED_MODE notice.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", unsupportedMode(s)
	}
	return m, nil
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	_, ok := modeDescriptions[m]
	return ok
}

// IsDistribute reports whether m spreads shapes along an axis.
func (m Mode) IsDistribute() bool {
	return m == HorizontalDistribute || m == VerticalDistribute
}

// Description returns a short human-readable summary of the mode.
func (m Mode) Description() string {
	return modeDescriptions[m]
}

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }

func unsupportedMode(s string) error {
	return errors.New(errors.ErrCodeUnsupportedMode, "unsupported alignment mode %q", s)
}
