package layout

import "strconv"

// Tick is one label on the vertical axis. Category axes carry their text
// as given, numeric axes get it from a TickFormatter.
type Tick struct {
	Value float64
	Text  string
}

// TickFormatter renders a numeric tick value as label text.
type TickFormatter func(float64) string

func PlainTicks(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// KiloTicks shortens values with base 10 prefixes, 1500 -> "1.5 k".
func KiloTicks(v float64) string {
	return prefixed(v, unitPrefixBase10)
}

// KibiTicks shortens values with base 2 prefixes, 2048 -> "2 Ki".
func KibiTicks(v float64) string {
	return prefixed(v, unitPrefixBase2)
}

func prefixed(v float64, transform func(float64) (bool, float64, string)) string {
	neg := v < 0
	if neg {
		v = -v
	}
	changed, vt, s := transform(v)
	if neg {
		vt = -vt
	}
	if !changed {
		return PlainTicks(vt)
	}
	return strconv.FormatFloat(vt, 'g', 3, 64) + " " + s
}

func unitPrefixBase10(v float64) (bool, float64, string) {
	var d float64
	var s string

	switch {
	case v >= 1e18:
		d, s = 1e18, "E"
	case v >= 1e15:
		d, s = 1e15, "P"
	case v >= 1e12:
		d, s = 1e12, "T"
	case v >= 1e9:
		d, s = 1e9, "G"
	case v >= 1e6:
		d, s = 1e6, "M"
	case v >= 1e3:
		d, s = 1e3, "k"
	default:
		return false, v, ""
	}
	return true, v / d, s
}

func unitPrefixBase2(v float64) (bool, float64, string) {
	var d float64
	var s string

	switch {
	case v >= 1<<60:
		d, s = 1<<60, "Ei"
	case v >= 1<<50:
		d, s = 1<<50, "Pi"
	case v >= 1<<40:
		d, s = 1<<40, "Ti"
	case v >= 1<<30:
		d, s = 1<<30, "Gi"
	case v >= 1<<20:
		d, s = 1<<20, "Mi"
	case v >= 1<<10:
		d, s = 1<<10, "Ki"
	default:
		return false, v, ""
	}
	return true, v / d, s
}
