package engine

// Fahrenheit converts a Celsius integer with tenths-based round-half-up
// arithmetic: 21°C is 69.8°F and rounds to 70, 13°C is 55.4°F and
// rounds to 55. The remainder is normalized to floored-division range
// so negative inputs round the same way.
func Fahrenheit(c int) int {
	tenths := c*18 + 320
	q, r := tenths/10, tenths%10
	if r < 0 {
		q--
		r += 10
	}
	if r >= 5 {
		q++
	}
	return q
}
