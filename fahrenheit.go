package itemp

// FromFahrenheit1 converts whole degrees Fahrenheit to an ITemp.
func FromFahrenheit1(f int16) ITemp {
	return FromFahrenheit100(f * 100)
}

// FromFahrenheit10 converts tenths of a degree Fahrenheit to an ITemp.
func FromFahrenheit10(f int16) ITemp {
	return FromFahrenheit100(f * 10)
}

// FromFahrenheit100 converts hundredths of a degree Fahrenheit to an
// ITemp. Values outside [-1552, 11555] wrap through the 16 bit conversion.
func FromFahrenheit100(f int16) ITemp {
	return ITemp((int32(f) + fOffset) * fSlope)
}

// FromFahrenheit converts degrees Fahrenheit to an ITemp.
func FromFahrenheit(f float32) ITemp {
	return ITemp((float64(f)*100.0 + fOffset) * fSlope)
}

// Fahrenheit1 returns the temperature in whole degrees Fahrenheit, rounded
// to nearest.
func (t ITemp) Fahrenheit1() int16 {
	return rquo(int32(t.Fahrenheit100()), 100)
}

// Fahrenheit10 returns the temperature in tenths of a degree Fahrenheit,
// rounded to nearest.
func (t ITemp) Fahrenheit10() int16 {
	return rquo(int32(t.Fahrenheit100()), 10)
}

// Fahrenheit100 returns the temperature in hundredths of a degree
// Fahrenheit, rounded to nearest.
func (t ITemp) Fahrenheit100() int16 {
	return rquo(int32(t), fSlope) - fOffset
}

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (t ITemp) Fahrenheit() float32 {
	return (float32(t)/fSlope - fOffset) / 100.0
}
