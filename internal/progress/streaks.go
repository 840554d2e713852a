package progress

import (
	"sort"
	"time"
)

// dayKey truncates t to its calendar day in local time.
func dayKey(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// calcStreaks derives the current and longest run of consecutive
// activity days. The current streak counts back from today, and
// survives if the last activity was yesterday; a two-day gap resets it
// to zero.
func calcStreaks(activity []time.Time, today time.Time) (current, longest int) {
	if len(activity) == 0 {
		return 0, 0
	}

	seen := make(map[time.Time]bool, len(activity))
	for _, t := range activity {
		seen[dayKey(t)] = true
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// Consecutive days are compared with AddDate so DST transitions
	// don't break a run.
	consecutive := func(a, b time.Time) bool {
		return a.AddDate(0, 0, 1).Equal(b)
	}

	// Longest run anywhere in the history.
	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if consecutive(days[i-1], days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Current run ending today or yesterday.
	todayDay := dayKey(today)
	last := days[len(days)-1]
	if !last.Equal(todayDay) && !consecutive(last, todayDay) {
		return 0, longest
	}
	current = 1
	for i := len(days) - 1; i > 0; i-- {
		if !consecutive(days[i-1], days[i]) {
			break
		}
		current++
	}
	return current, longest
}
