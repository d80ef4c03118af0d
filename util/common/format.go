package common

import (
	"fmt"
)

// FormatAmount renders a money amount with two decimal places and a dollar
// sign, the way prices appear everywhere in the panel.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
