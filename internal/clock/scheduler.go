// Package clock provides a virtual game clock with keyed one-shot timers.
//
// The clock only moves when the driver calls Advance, so every callback runs
// on the driver's goroutine and tests control time exactly.
package clock

import "time"

// Keys used by the game for its deferred actions.
const (
	KeyInvincible    = "snake:invincible"
	KeyFeedbackSnake = "feedback:snake"
	KeyFeedbackMine  = "feedback:mine"
	KeyRegenerate    = "mine:regenerate"
)

type task struct {
	key      string
	deadline time.Duration
	seq      uint64
	fn       func()
}

// Scheduler runs one-shot callbacks on a virtual clock.
// At most one task exists per key; scheduling a key again replaces it.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks map[string]*task
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[string]*task)}
}

// Now returns the virtual time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d from now under key.
// A pending task with the same key is cancelled first, so a stale callback can never fire.
func (s *Scheduler) After(key string, d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.tasks[key] = &task{key: key, deadline: s.now + d, seq: s.seq, fn: fn}
}

// Cancel drops the task under key. It reports whether one was pending.
func (s *Scheduler) Cancel(key string) bool {
	if _, ok := s.tasks[key]; !ok {
		return false
	}
	delete(s.tasks, key)
	return true
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	clear(s.tasks)
}

// Pending reports whether a task is scheduled under key.
func (s *Scheduler) Pending(key string) bool {
	_, ok := s.tasks[key]
	return ok
}

// Remaining returns the time left before the task under key fires, or 0.
func (s *Scheduler) Remaining(key string) time.Duration {
	t, ok := s.tasks[key]
	if !ok {
		return 0
	}
	return t.deadline - s.now
}

// Advance moves the clock forward by dt, firing due tasks in deadline order.
// While a callback runs, Now reports that task's deadline.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		delete(s.tasks, next.key)
		s.now = next.deadline
		next.fn()
	}
	s.now = target
}

// nextDue returns the earliest task with deadline <= limit; ties go to the older task.
func (s *Scheduler) nextDue(limit time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.deadline > limit {
			continue
		}
		if best == nil || t.deadline < best.deadline || (t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
