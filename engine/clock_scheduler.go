package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/core"
)

// ClockScheduler drives a Scheduler from the wall clock on a fixed tick.
// It is the single owner goroutine: submitted tasks, due timers and the frame
// callback all run on it, in that order, once per tick.
type ClockScheduler struct {
	sched        *Scheduler
	tickInterval time.Duration
	frame        func(now time.Time)

	tasks chan func()

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a loop ticking sched every tickInterval.
// frame may be nil.
func NewClockScheduler(sched *Scheduler, tickInterval time.Duration, frame func(now time.Time)) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = constants.FrameUpdateInterval
	}
	return &ClockScheduler{
		sched:        sched,
		tickInterval: tickInterval,
		frame:        frame,
		tasks:        make(chan func(), constants.SubmitQueueSize),
		stopChan:     make(chan struct{}),
	}
}

// Submit queues fn to run on the loop goroutine before the next timers.
// Returns false when the queue is full or the loop has stopped.
func (cs *ClockScheduler) Submit(fn func()) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}
	select {
	case cs.tasks <- fn:
		return true
	default:
		return false
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// Done is closed once Stop has been called
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.stopChan
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.processTick()
		}
	}
}

// processTick executes one loop cycle
func (cs *ClockScheduler) processTick() {
	cs.drainTasks()
	cs.sched.RunDue()
	if cs.frame != nil {
		cs.frame(cs.sched.Now())
	}
	cs.tickCount.Add(1)
}

func (cs *ClockScheduler) drainTasks() {
	for {
		select {
		case fn := <-cs.tasks:
			fn()
		default:
			return
		}
	}
}
