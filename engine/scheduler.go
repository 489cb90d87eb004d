package engine

import (
	"container/heap"
	"sync"
	"time"

	"github.com/lixenwraith/starlit/constants"
)

// TimerID identifies a scheduled callback. Zero is never issued.
type TimerID uint64

// timer is a single fire-once or recurring entry
type timer struct {
	id       TimerID
	deadline time.Time
	interval time.Duration // 0 for fire-once
	seq      uint64        // insertion order, breaks deadline ties
	fn       func()
	index    int
}

// timerHeap orders timers by deadline, then insertion
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a deterministic timer queue driven by an injected clock.
// Nothing fires on its own: RunDue executes every timer whose deadline has passed,
// in deadline order. While a callback runs, Now reports that timer's deadline so
// timers scheduled from inside a callback are offset from when it was due,
// not from when the backlog happened to be drained.
type Scheduler struct {
	mu     sync.Mutex
	clock  TimeProvider
	queue  timerHeap
	byID   map[TimerID]*timer
	nextID TimerID
	seq    uint64

	dispatching bool
	virtualNow  time.Time
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[TimerID]*timer),
	}
}

// Now returns scheduler time: the due time of the running callback, else the clock
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nowLocked()
}

func (s *Scheduler) nowLocked() time.Time {
	if s.dispatching {
		return s.virtualNow
	}
	return s.clock.Now()
}

// After schedules fn once, d from now
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every schedules fn repeatedly with the given interval, first run one interval from now
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval < constants.MinTimerInterval {
		interval = constants.MinTimerInterval
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) TimerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		deadline: s.nowLocked().Add(delay),
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending timer, returns false if it already fired or was cancelled
func (s *Scheduler) Cancel(id TimerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending returns the number of live timers
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// RunDue executes all timers due at the current clock reading and returns how many ran.
// Callbacks run without the lock held and may schedule or cancel timers.
func (s *Scheduler) RunDue() int {
	s.mu.Lock()
	if s.dispatching {
		// Re-entrant call from a callback, the outer loop drains
		s.mu.Unlock()
		return 0
	}
	now := s.clock.Now()
	s.dispatching = true
	ran := 0

	for len(s.queue) > 0 && !s.queue[0].deadline.After(now) {
		t := heap.Pop(&s.queue).(*timer)
		s.virtualNow = t.deadline

		if t.interval > 0 {
			s.seq++
			t.seq = s.seq
			t.deadline = t.deadline.Add(t.interval)
			heap.Push(&s.queue, t)
		} else {
			delete(s.byID, t.id)
		}

		s.mu.Unlock()
		t.fn()
		ran++
		s.mu.Lock()
	}

	s.dispatching = false
	s.virtualNow = time.Time{}
	s.mu.Unlock()
	return ran
}
