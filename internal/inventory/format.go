package inventory

import "fmt"

// FormatPercent renders part as an integer percentage of whole, e.g. 450 of
// 1000 becomes "45%". A non-positive whole yields "0%".
func FormatPercent(part, whole int64) string {
	if whole <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", part*100/whole)
}
