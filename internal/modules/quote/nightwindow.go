// README: Night-window evaluation; wrap-aware clock windows and interval intersection.
package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Clock is a time of day in minutes since midnight [0, 1440).
type Clock int

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("clock %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock %q: bad hour", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock %q: bad minute", s)
	}
	return Clock(hour*60 + minute), nil
}

func clockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Window is a half-open time-of-day window [Start, End). When End <= Start the
// window crosses midnight (e.g. 20:00-06:00) and membership is
// c >= Start || c < End.
type Window struct {
	Start, End Clock
}

func ParseWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}

func (w Window) wraps() bool {
	return w.End <= w.Start
}

// Contains reports whether the clock time falls inside the window.
func (w Window) Contains(c Clock) bool {
	if w.wraps() {
		return c >= w.Start || c < w.End
	}
	return c >= w.Start && c < w.End
}

// Length is the window size in minutes. A degenerate Start == End window wraps the
// whole day (1440 minutes).
func (w Window) Length() int {
	if w.wraps() {
		return minutesPerDay - int(w.Start) + int(w.End)
	}
	return int(w.End) - int(w.Start)
}

// NightMinutes counts the whole minutes of [start, start+minutes) that fall inside
// the window, closed-form: full elapsed days contribute one window length each, the
// partial boundary intervals are resolved by overlap arithmetic anchored at the
// midnight preceding the interval start. Equivalent to scanning minute by minute,
// for any duration.
func NightMinutes(start time.Time, minutes int, w Window) int {
	if minutes <= 0 {
		return 0
	}
	from := int(clockOf(start))
	return w.nightSinceMidnight(from+minutes) - w.nightSinceMidnight(from)
}

// nightSinceMidnight returns the night minutes in [0, t), where 0 is the anchoring
// midnight and t may extend past it by any number of days.
func (w Window) nightSinceMidnight(t int) int {
	days := t / minutesPerDay
	rem := t % minutesPerDay
	return days*w.Length() + w.overlapFromMidnight(rem)
}

// overlapFromMidnight returns the night minutes in [0, x) for x within one day.
func (w Window) overlapFromMidnight(x int) int {
	if w.wraps() {
		// The window occupies [0, End) and [Start, 1440) within a day.
		n := x
		if n > int(w.End) {
			n = int(w.End)
		}
		if x > int(w.Start) {
			n += x - int(w.Start)
		}
		return n
	}
	n := x
	if n > int(w.End) {
		n = int(w.End)
	}
	n -= int(w.Start)
	if n < 0 {
		return 0
	}
	return n
}
