package itemp

import "fmt"

// ITemp is a compact 16 bit representation of temperature.
type ITemp uint16

// Transform constants, in encoded units per hundredth of a degree.
const (
	fOffset = 1552
	fSlope  = 5
	cOffset = 2640
	cSlope  = 9
)

// Unit steps. Adding or subtracting these on an ITemp adjusts the
// temperature by the named amount.
const (
	OneDegreeF          ITemp = 100 * fSlope
	OneTenthDegreeF     ITemp = 10 * fSlope
	OneHundredthDegreeF ITemp = fSlope
	OneDegreeC          ITemp = 100 * cSlope
	OneTenthDegreeC     ITemp = 10 * cSlope
	OneHundredthDegreeC ITemp = cSlope
)

// String renders the temperature in both unit systems at hundredths
// precision.
func (t ITemp) String() string {
	return fmt.Sprintf("%.2fF (%.2fC)", t.Fahrenheit(), t.Celsius())
}
