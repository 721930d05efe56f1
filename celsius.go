package itemp

// FromCelsius1 converts whole degrees Celsius to an ITemp.
func FromCelsius1(c int16) ITemp {
	return FromCelsius100(c * 100)
}

// FromCelsius10 converts tenths of a degree Celsius to an ITemp.
func FromCelsius10(c int16) ITemp {
	return FromCelsius100(c * 10)
}

// FromCelsius100 converts hundredths of a degree Celsius to an ITemp.
// Values outside [-2640, 4641] wrap through the 16 bit conversion.
func FromCelsius100(c int16) ITemp {
	return ITemp((int32(c) + cOffset) * cSlope)
}

// FromCelsius converts degrees Celsius to an ITemp.
func FromCelsius(c float32) ITemp {
	return ITemp((float64(c)*100.0 + cOffset) * cSlope)
}

// Celsius1 returns the temperature in whole degrees Celsius, rounded to
// nearest.
func (t ITemp) Celsius1() int16 {
	return rquo(int32(t.Celsius100()), 100)
}

// Celsius10 returns the temperature in tenths of a degree Celsius, rounded
// to nearest.
func (t ITemp) Celsius10() int16 {
	return rquo(int32(t.Celsius100()), 10)
}

// Celsius100 returns the temperature in hundredths of a degree Celsius,
// rounded to nearest.
func (t ITemp) Celsius100() int16 {
	return rquo(int32(t), cSlope) - cOffset
}

// Celsius returns the temperature in degrees Celsius.
func (t ITemp) Celsius() float32 {
	return (float32(t)/cSlope - cOffset) / 100.0
}
