// internal/cadence/cadence.go
//
// Pure date arithmetic for campaign cadence. Position in a campaign is
// derived from elapsed calendar time since the enrollment anchor rather than
// a stored counter, so these functions are the single source of truth for
// "which day / month is this recipient on". All comparisons normalize both
// timestamps to calendar dates in the campaign's fixed timezone.
package cadence

import "time"

const (
	// CoachingDays is the length of the 30-day coaching program.
	CoachingDays = 30
	// NewsletterMonths is the length of the 12-month newsletter cycle.
	NewsletterMonths = 12
)

// dateOnly truncates t to midnight of its calendar day in loc, expressed in
// UTC so day subtraction is immune to DST shifts.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween is the number of whole calendar days from anchor's date to
// now's date (negative when anchor lies in the future).
func daysBetween(anchor, now time.Time, loc *time.Location) int {
	return int(dateOnly(now, loc).Sub(dateOnly(anchor, loc)).Hours() / 24)
}

// ElapsedDays returns the coaching day number for a recipient: 1 on the
// enrollment day itself, increasing by one per calendar day, clamped to
// [1, CoachingDays].
func ElapsedDays(anchor, now time.Time, loc *time.Location) int {
	day := daysBetween(anchor, now, loc) + 1
	if day < 1 {
		return 1
	}
	if day > CoachingDays {
		return CoachingDays
	}
	return day
}

// TooEarly reports whether the anchor's calendar date still lies in the
// future (an admin-set start date), the day-level skip sentinel.
func TooEarly(anchor, now time.Time, loc *time.Location) bool {
	return daysBetween(anchor, now, loc) < 0
}

// CoachingComplete reports whether the unclamped day number has passed the
// end of the program. ElapsedDays clamps at 30, so sweeps use this to tell
// "on day 30" apart from "already finished".
func CoachingComplete(anchor, now time.Time, loc *time.Location) bool {
	return daysBetween(anchor, now, loc)+1 > CoachingDays
}

// MonthsSinceAnchor is the whole-month difference between the anchor's
// calendar month and now's, ignoring the day of month.
func MonthsSinceAnchor(anchor, now time.Time, loc *time.Location) int {
	a := anchor.In(loc)
	n := now.In(loc)
	return (n.Year()-a.Year())*12 + int(n.Month()) - int(a.Month())
}

// AnniversaryDayMatches reports whether today is the recipient's monthly
// anniversary day. The target day is the enrollment day-of-month clamped to
// the current month's length, so a recipient enrolled on the 31st gets the
// 30th (or 28th/29th) in shorter months.
func AnniversaryDayMatches(anchor, now time.Time, loc *time.Location) bool {
	a := anchor.In(loc)
	n := now.In(loc)

	lastDay := time.Date(n.Year(), n.Month()+1, 0, 0, 0, 0, 0, loc).Day()
	target := a.Day()
	if target > lastDay {
		target = lastDay
	}
	return n.Day() == target
}

// NewsletterOrderNumber returns which newsletter (1..12) the recipient is on.
// Returns 0 on the enrollment day itself: the first newsletter goes out the
// next eligible day, never the day the recipient signed up. The value clamps
// at 12; completion is decided by the auto-completion sweep, not here.
func NewsletterOrderNumber(anchor, now time.Time, loc *time.Location) int {
	if daysBetween(anchor, now, loc) == 0 {
		return 0
	}
	order := MonthsSinceAnchor(anchor, now, loc) + 1
	if order > NewsletterMonths {
		return NewsletterMonths
	}
	if order < 1 {
		return 1
	}
	return order
}

// ShouldSendNewsletterToday reports whether today is a delivery day for the
// recipient. Recipients enrolled yesterday are force-sent their first
// newsletter today regardless of day-of-month alignment; everyone else gets
// theirs on their monthly anniversary day.
func ShouldSendNewsletterToday(anchor, now time.Time, loc *time.Location) bool {
	if daysBetween(anchor, now, loc) == 1 {
		return true
	}
	return AnniversaryDayMatches(anchor, now, loc)
}
