package money

import "fmt"

// Format converts an amount in minor units (cents) into the decimal string the
// payment rails API expects, e.g. 1000 -> "10.00".
func Format(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
