package validate

import (
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// WithLunaCheckDigit appends the digit that makes prefix pass the Luhn check.
func WithLunaCheckDigit(prefix string) (string, bool) {
	for d := 0; d <= 9; d++ {
		candidate := prefix + strconv.Itoa(d)
		if IsLuna(candidate) {
			return candidate, true
		}
	}
	return "", false
}
