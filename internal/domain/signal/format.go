package signal

import "fmt"

func formatRateRange(lower, upper float64) string {
	return fmt.Sprintf("%.2f%%-%.2f%%", lower, upper)
}
