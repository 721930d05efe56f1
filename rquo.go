package itemp

// rquo returns x/y rounded to the nearest integer, ties away from zero,
// using integer-only maths. Works with positive or negative x or y (4
// quadrant).
func rquo(x, y int32) int16 {
	if (x ^ y) >= 0 { // signs match, positive quotient
		return int16((x + y/2) / y)
	}

	return int16((x - y/2) / y) // signs differ, negative quotient
}
