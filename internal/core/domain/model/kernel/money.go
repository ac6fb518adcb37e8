package kernel

import "math"

// RoundToCents rounds a monetary amount to 2 decimal places.
// All prices and totals in the system are stored with this precision.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
