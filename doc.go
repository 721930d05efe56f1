// Package itemp provides a compact 16 bit representation of temperature
// and uses integer arithmetic to convert between Celsius and Fahrenheit
// with accuracy down to 0.01 degree.
//
// An ITemp holds the temperature as an unsigned 16 bit integer related to
// the physical temperature by two affine transforms, one per unit system:
//
//  itemp = (fahrenheit_100 + 1552) * 5
//  itemp = (celsius_100 + 2640) * 9
//
// Where fahrenheit_100 and celsius_100 are hundredths of a degree. Both
// transforms describe the same encoded space, so a single ITemp carries the
// temperature in both unit systems at once.
//
// Decoding divides back out with a round-to-nearest quotient (ties away
// from zero). Whole degree and tenth of a degree decodes round the
// hundredths value a second time rather than rounding the raw ITemp
// directly, so their outputs match the hundredths decode they derive from.
//
// Representable Range
//
// The 16 bit encoded space covers:
//
//  | itemp | Fahrenheit | Celsius |
//  |-------|------------|---------|
//  | 0     | -15.52     | -26.40  |
//  | 7760  | 0.00       | -17.78  |
//  | 23760 | 32.00      | 0.00    |
//  | 65535 | 115.55     | 46.42   |
//
// Conversions never fail. Encoding a temperature outside the representable
// range wraps through the fixed width integer conversion instead of
// saturating or signaling, matching 16 bit integer arithmetic on the
// embedded targets this representation comes from.
//
// Arithmetic
//
// Because the encoding is affine in the physical temperature, adding a
// fixed number of encoded units to an ITemp adds the corresponding number
// of degrees. The unit step constants make this direct:
//
//  t := itemp.FromFahrenheit1(70) // 70F
//  t -= 2 * itemp.OneDegreeF      // 68F
//  f := t.Fahrenheit1()           // 68
//  c := t.Celsius1()              // 20
//
// A step expressed in one unit system perturbs the decoded value in the
// other by the physically equivalent amount (the slopes 5 and 9 differ per
// unit, the encoded space does not).
package itemp
