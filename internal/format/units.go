package format

import (
	"strconv"

	"VDOStats/internal/stats"
)

// Options carries the output switches resolved from the command line.
// They are threaded explicitly into the formatter and renderers rather
// than held as process-global state.
type Options struct {
	HumanReadable bool
	SI            bool
	Verbose       bool
}

// unitScale is the size unit ladder. Scaling stops at the last entry
// even if the value still exceeds the divisor.
var unitScale = [...]string{"B", "K", "M", "G", "T"}

// FormatSize renders a size-in-kilobytes value. NotAvailable passes
// through as its display text, never unit-scaled. Raw mode returns the
// kilobyte count unchanged; human-readable mode scales bytes through
// the unit ladder with a 1024 divisor, or 1000 when useSI is set, and
// renders one decimal digit with the unit suffix attached.
func FormatSize(v stats.StatValue, humanReadable, useSI bool) string {
	if v.IsNotAvailable() {
		return stats.NotAvailableText
	}
	if !humanReadable {
		return strconv.FormatInt(v.Int64(), 10)
	}

	divisor := 1024.0
	if useSI {
		divisor = 1000.0
	}
	value := float64(v.Int64()) * 1024
	unit := 0
	for value >= divisor && unit < len(unitScale)-1 {
		value /= divisor
		unit++
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + unitScale[unit]
}

// FormatPercent renders a percentage value with a literal % suffix.
// NotAvailable passes through as its display text.
func FormatPercent(v stats.StatValue) string {
	if v.IsNotAvailable() {
		return stats.NotAvailableText
	}
	return strconv.FormatInt(v.Int64(), 10) + "%"
}
