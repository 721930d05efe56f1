package itemp

import "math"

// ParseFahrenheit parses a signed decimal temperature in degrees
// Fahrenheit, e.g. "68.18" or "-15.52". Digits beyond the second decimal
// place are ignored.
func ParseFahrenheit(s string) (ITemp, error) {
	v, err := parseHundredths(s)
	if err != nil {
		return 0, err
	}

	return FromFahrenheit100(v), nil
}

// ParseCelsius parses a signed decimal temperature in degrees Celsius,
// e.g. "20.10" or "-26.4". Digits beyond the second decimal place are
// ignored.
func ParseCelsius(s string) (ITemp, error) {
	v, err := parseHundredths(s)
	if err != nil {
		return 0, err
	}

	return FromCelsius100(v), nil
}

// parseHundredths parses a signed decimal number into hundredths, i.e.
// "68.18" -> 6818 and "-1.5" -> -150.
func parseHundredths(s string) (int16, error) {
	var value, prev int16
	var negative, dotSeen bool
	var digits, decimals int

	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case i == 0 && b == '-':
			negative = true
		case b >= '0' && b <= '9':
			if dotSeen {
				if decimals == 2 {
					// Truncate beyond hundredths.
					continue
				}
				decimals++
			}
			digits++
			prev = value
			value = value*10 + int16(b-'0')
			if (prev ^ value) < 0 {
				return 0, Error.New("out of range: %q", s)
			}
		case b == '.':
			if dotSeen {
				return 0, Error.New("invalid syntax: %q", s)
			}
			dotSeen = true
		default:
			return 0, Error.New("invalid syntax: %q", s)
		}
	}

	if digits == 0 {
		return 0, Error.New("invalid syntax: %q", s)
	}

	// Scale up to exactly two decimal places ("68" -> 6800).
	for ; decimals < 2; decimals++ {
		v := int32(value) * 10
		if v > math.MaxInt16 {
			return 0, Error.New("out of range: %q", s)
		}
		value = int16(v)
	}

	if negative {
		value = -value
	}

	return value, nil
}
