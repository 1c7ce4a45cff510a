// Cooperative task scheduler
// Implements round-robin multitasking without threads or preemption: the
// owning program calls Tick once per iteration of its main loop and due
// tasks fire in construction order
package core

import "tickwork/algo"

// TaskState enumerates the valid task scheduling states
type TaskState uint8

const (
	// TaskIdle tasks are never serviced
	TaskIdle TaskState = iota
	// TaskActive tasks are serviced on every scheduler pass
	TaskActive
)

// Task is a named binding of a command, a firing interval and a
// scheduling state, used as an entry in a Scheduler's collection. Tasks
// are allocated by the caller and handed to the Scheduler by reference,
// so client code controls task lifetime and can toggle the state at
// runtime (e.g. enabling an alarm-check task only once an alarm is armed).
type Task struct {
	command Command
	timer   IntervalTimer
	state   TaskState
}

// NewTask returns a task firing command every interval ticks while Active
func NewTask(command Command, interval Ticks, state TaskState) *Task {
	t := &Task{command: command, state: state}
	t.timer.interval = interval
	return t
}

// Command returns the task's command
func (t *Task) Command() Command {
	return t.command
}

// Interval returns the task's firing interval
func (t *Task) Interval() Ticks {
	return t.timer.Interval()
}

// State returns the task's scheduling state
func (t *Task) State() TaskState {
	return t.state
}

// SetState sets the task's scheduling state
func (t *Task) SetState(state TaskState) {
	t.state = state
}

// SetActive maps a boolean onto the scheduling state
func (t *Task) SetActive(active bool) {
	if active {
		t.state = TaskActive
	} else {
		t.state = TaskIdle
	}
}

// Scheduler drives a fixed, ordered collection of tasks. The collection
// is immutable after construction; tasks are enabled and disabled through
// their state, never inserted or removed. Within one pass tasks fire in
// construction order with no priority or preemption, so a long-running
// command delays every subsequent task in the same pass.
type Scheduler struct {
	tasks      []*Task
	passBudget Ticks
}

// NewScheduler returns a scheduler over the given task collection.
// An empty collection is a contract violation.
func NewScheduler(tasks []*Task) *Scheduler {
	if len(tasks) == 0 {
		panic("scheduler: empty task collection")
	}
	return &Scheduler{tasks: tasks}
}

// Tasks returns the scheduler's task collection in firing order
func (s *Scheduler) Tasks() []*Task {
	return s.tasks
}

// State returns the scheduling state of a task in the collection.
// Unknown tasks report TaskIdle.
func (s *Scheduler) State(task *Task) TaskState {
	if i := algo.Find(s.tasks, task); i >= 0 {
		return s.tasks[i].state
	}
	return TaskIdle
}

// SetState sets the scheduling state of a task in the collection.
// Tasks not in the collection are ignored.
func (s *Scheduler) SetState(task *Task, state TaskState) {
	if i := algo.Find(s.tasks, task); i >= 0 {
		s.tasks[i].state = state
	}
}

// SetPassBudget sets the pass duration above which Tick reports an
// overrun through the debug writer. Zero disables the check.
func (s *Scheduler) SetPassBudget(budget Ticks) {
	s.passBudget = budget
}

// Tick services the task collection once. Each Active task's timer is
// checked and its command executed when due; a task's timer starts on the
// first pass that finds it Active, so it first fires one full interval
// after activation. Idle tasks are never serviced.
func (s *Scheduler) Tick() {
	start := Now()
	for _, t := range s.tasks {
		if t.state != TaskActive {
			continue
		}
		if !t.timer.Active() {
			t.timer.Start()
			continue
		}
		if t.timer.Expired() {
			t.timer.Reset()
			t.command.Execute()
		}
	}
	if s.passBudget != 0 {
		if d := Since(Now(), start); d > s.passBudget {
			DebugPrintln("scheduler: pass overrun " + utoa(uint32(d)) + " ticks")
		}
	}
}
