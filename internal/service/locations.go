// internal/service/locations.go
package service

import (
	"time"
	_ "time/tzdata"
)

// Each campaign runs on its own fixed timezone; all cadence math and trigger
// times are evaluated in these locations.
const (
	CoachingTimezone   = "America/Chicago"
	NewsletterTimezone = "Asia/Kolkata"
)

var (
	coachingLoc   = mustLocation(CoachingTimezone)
	newsletterLoc = mustLocation(NewsletterTimezone)
)

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
