// Package timer provides cooperative one-shot and periodic timers that run on
// the goroutine driving the scheduler.
//
// Nothing fires on its own: the owner calls RunDue with the current time,
// typically once per frame, and every due callback runs synchronously inside
// that call. Stopping a Timer takes effect immediately, so a cancelled timer
// can never fire afterwards, even if it was already due in the same RunDue.
package timer

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	s        *Scheduler
	id       uint64
	due      time.Time
	interval time.Duration // zero for one-shot timers
	fn       func()
	active   bool
}

// Stop cancels the timer. It returns true if the call stopped an active timer.
// Stopping a nil or already stopped timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.active = false
	delete(t.s.timers, t.id)
	return true
}

// Active reports whether the timer is still scheduled.
func (t *Timer) Active() bool {
	return t != nil && t.active
}

// Scheduler owns a set of timers. It is not safe for concurrent use.
type Scheduler struct {
	now    time.Time
	nextID uint64
	timers map[uint64]*Timer
	due    []*Timer // Scratch buffer reused by RunDue
}

// New creates a scheduler whose clock starts at now.
func New(now time.Time) *Scheduler {
	return &Scheduler{
		now:    now,
		nextID: 1,
		timers: make(map[uint64]*Timer),
	}
}

// AfterFunc schedules fn to run once, d after the scheduler's current time.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d, starting d from now.
// A periodic timer fires at most once per RunDue; missed periods are skipped.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t := &Timer{
		s:        s,
		id:       s.nextID,
		due:      s.now.Add(d),
		interval: interval,
		fn:       fn,
		active:   true,
	}
	s.nextID++
	s.timers[t.id] = t
	return t
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Next returns the earliest deadline among active timers.
func (s *Scheduler) Next() (time.Time, bool) {
	var next time.Time
	found := false
	for _, t := range s.timers {
		if !found || t.due.Before(next) {
			next = t.due
			found = true
		}
	}
	return next, found
}

// RunDue advances the clock to now and runs every callback due at or before it,
// in deadline order with ties broken by scheduling order. Timers scheduled by a
// callback run in the same call only if they are already due. It returns the
// number of callbacks run.
func (s *Scheduler) RunDue(now time.Time) int {
	if now.After(s.now) {
		s.now = now
	}

	fired := 0
	ran := make(map[uint64]bool)
	for {
		t := s.earliestDue(ran)
		if t == nil {
			return fired
		}
		ran[t.id] = true

		if t.interval > 0 {
			// Skip missed periods instead of bursting to catch up.
			for !t.due.After(s.now) {
				t.due = t.due.Add(t.interval)
			}
		} else {
			t.active = false
			delete(s.timers, t.id)
		}

		t.fn()
		fired++
	}
}

// earliestDue picks the next due timer that has not run in this pass.
func (s *Scheduler) earliestDue(ran map[uint64]bool) *Timer {
	s.due = s.due[:0]
	for _, t := range s.timers {
		if !ran[t.id] && !t.due.After(s.now) {
			s.due = append(s.due, t)
		}
	}
	if len(s.due) == 0 {
		return nil
	}
	sort.Slice(s.due, func(i, j int) bool {
		if s.due[i].due.Equal(s.due[j].due) {
			return s.due[i].id < s.due[j].id
		}
		return s.due[i].due.Before(s.due[j].due)
	})
	return s.due[0]
}
