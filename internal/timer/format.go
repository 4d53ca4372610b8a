package timer

import (
	"fmt"
	"time"
)

// FormatRemaining renders remaining time as MM:SS. Half a second is added
// before truncating so the display rounds to the nearest whole second
// (61.9s shows as 01:02, 0.5s as 00:01). Minutes are not capped at 99.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := (d + 500*time.Millisecond) / time.Second
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
