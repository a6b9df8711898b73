// internal/scheduler/scheduler.go
//
// Wall-clock trigger scheduling. Each trigger fires once per calendar day at
// a fixed local time in its own timezone; campaigns in different timezones
// run side by side. There is no catch-up: if the process is down at fire
// time, that day's slot is simply skipped and the next day's trigger
// proceeds normally. A startup reconciliation pass would need a persisted
// last-fire marker, which this deployment does not keep.
//
// The design assumes exactly one scheduler instance; running two would
// double-send every sweep.
package scheduler

import (
	"log"
	"sync"
	"time"
)

// Trigger fires a job daily at Hour:Minute in Timezone.
type Trigger struct {
	Campaign string
	Slot     string
	Timezone string
	Hour     int
	Minute   int
	Job      func()
}

// Scheduler owns the trigger goroutines.
type Scheduler struct {
	triggers []Trigger
	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func New() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

// AddDaily registers a daily trigger.
func (s *Scheduler) AddDaily(t Trigger) {
	s.triggers = append(s.triggers, t)
}

// AddInterval registers a job that runs every interval, first firing one
// interval after Start. Used for the timeout sweep, where only detection
// latency depends on the interval.
func (s *Scheduler) AddInterval(name string, interval time.Duration, job func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				log.Printf("⏰ Interval job %s firing", name)
				job()
			case <-s.stop:
				return
			}
		}
	}()
}

// Start launches one goroutine per daily trigger.
func (s *Scheduler) Start() {
	for _, t := range s.triggers {
		trigger := t
		loc, err := time.LoadLocation(trigger.Timezone)
		if err != nil {
			log.Printf("⚠️ Invalid timezone %q for %s/%s trigger, skipping: %v",
				trigger.Timezone, trigger.Campaign, trigger.Slot, err)
			continue
		}
		s.wg.Add(1)
		go s.runDaily(trigger, loc)
		log.Printf("⏰ Scheduled %s/%s daily at %02d:%02d %s",
			trigger.Campaign, trigger.Slot, trigger.Hour, trigger.Minute, trigger.Timezone)
	}
}

// Stop halts all trigger goroutines and waits for them to exit. In-flight
// jobs complete; sweeps are independent, so nothing propagates across runs.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
}

func (s *Scheduler) runDaily(t Trigger, loc *time.Location) {
	defer s.wg.Done()
	for {
		wait := time.Until(NextRun(time.Now(), loc, t.Hour, t.Minute))
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			log.Printf("⏰ Trigger fired: %s/%s", t.Campaign, t.Slot)
			t.Job()
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

// NextRun returns the next hh:mm occurrence in loc strictly after now.
func NextRun(now time.Time, loc *time.Location, hour, minute int) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
