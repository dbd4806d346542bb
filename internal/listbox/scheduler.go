package listbox

import (
	"sort"
	"time"
)

// TaskKind identifies a deferred controller task.
type TaskKind int

const (
	// TaskTypeaheadExpire clears the typeahead buffer after inactivity.
	TaskTypeaheadExpire TaskKind = iota + 1
	// TaskResolveBlur decides whether focus really left the control.
	TaskResolveBlur
)

func (k TaskKind) String() string {
	switch k {
	case TaskTypeaheadExpire:
		return "typeahead-expire"
	case TaskResolveBlur:
		return "resolve-blur"
	default:
		return "unknown"
	}
}

// Task is a deferred callback request. A task only takes effect if its token
// is still the current one for its kind when it is run; arming a new task of
// the same kind supersedes the old one.
type Task struct {
	Owner *Controller
	Kind  TaskKind
	Token uint64
}

// Scheduler delivers tasks back to the event loop after a delay. The host
// runs delivered tasks with Controller.Run on the loop goroutine.
type Scheduler interface {
	Schedule(delay time.Duration, task Task)
}

// ManualScheduler is a virtual clock. Tasks become due when Advance moves the
// clock past their deadline.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []pendingTask
}

type pendingTask struct {
	due  time.Duration
	seq  int
	task Task
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues the task.
func (s *ManualScheduler) Schedule(delay time.Duration, task Task) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, pendingTask{due: s.now + delay, seq: s.seq, task: task})
}

// Pending returns the number of queued tasks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward and returns the tasks that became due,
// ordered by deadline then by scheduling order.
func (s *ManualScheduler) Advance(d time.Duration) []Task {
	if d > 0 {
		s.now += d
	}

	var due, rest []pendingTask
	for _, p := range s.pending {
		if p.due <= s.now {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	s.pending = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	tasks := make([]Task, 0, len(due))
	for _, p := range due {
		tasks = append(tasks, p.task)
	}
	return tasks
}
