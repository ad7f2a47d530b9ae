// Package slots derives wall-clock visit slots from queue tokens.
//
// Token 1 maps to the 09:00 slot; every later token shifts the start by a
// fixed 15 minutes. There is deliberately no end-of-day cutoff here — whether
// a clinic wants to stop handing out tokens is a booking policy, not a slot
// arithmetic concern.
package slots

import (
	"fmt"
	"time"
)

const (
	// DayStart is the offset from midnight of the first slot.
	DayStart = 9 * time.Hour

	// Length is the fixed width of every slot.
	Length = 15 * time.Minute
)

// Start returns the slot start as an offset from midnight for the given
// token. Tokens below 1 are treated as 1.
func Start(token int) time.Duration {
	if token < 1 {
		token = 1
	}
	return DayStart + time.Duration(token-1)*Length
}

// At anchors the slot start on the given calendar day. The day's own clock
// time is ignored; only its date (in its own location) is used.
func At(day time.Time, token int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(Start(token))
}

// Label formats the slot start as "HH:MM", e.g. Label(1) == "09:00".
func Label(token int) string {
	s := Start(token)
	return fmt.Sprintf("%02d:%02d", int(s.Hours()), int(s.Minutes())%60)
}
