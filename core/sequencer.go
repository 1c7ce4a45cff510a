// Chronological event sequencer
// Walks an ordered collection of named, durationed events, executing each
// event's command when it begins and notifying an observer at the
// beginning and end of every event
package core

// Event is one element of a sequence: a human-readable name, a duration
// and an optional command executed when the event begins. Events are
// allocated by the caller and immutable once handed to a Sequencer.
// A zero duration is a valid degenerate case meaning the event never
// expires on its own and must be advanced manually with Next.
type Event struct {
	Name     string
	Duration Ticks
	Command  Command
}

// EventPhase identifies which edge of an event a notification reports
type EventPhase uint8

const (
	// EventBegin is reported when an event starts
	EventBegin EventPhase = iota
	// EventEnd is reported when an event completes
	EventEnd
)

// SequencerStatus enumerates the observable sequencer states
type SequencerStatus uint8

const (
	// StatusIdle means the sequencer is not running
	StatusIdle SequencerStatus = iota
	// StatusActive means the event timer is running
	StatusActive
	// StatusDone means a non-wrapping sequence completed
	StatusDone
)

// SequencerCallback receives (event, phase) notifications. For each event
// the order is strictly Begin, zero or more quiet ticks, End; a new
// event's Begin never fires before the previous event's End.
type SequencerCallback func(*Event, EventPhase)

// Sequencer executes a sequence of events in chronological order. It is
// driven by Tick, typically installed as a Scheduler task through its
// Clockable implementation, and uses one internal IntervalTimer to know
// when to advance. The sequence can wrap around and repeat or stop after
// the last event; the cursor can additionally be scrubbed forward and
// backward manually, which is always cyclic regardless of the wrap mode.
type Sequencer struct {
	events   []*Event
	current  int
	callback SequencerCallback
	wrap     bool
	done     bool
	exec     bool // re-fire Begin for a cursor moved while stopped
	timer    IntervalTimer
}

// NewSequencer returns a sequencer over the given events. An empty
// collection is a contract violation. The callback may be nil.
func NewSequencer(events []*Event, callback SequencerCallback, wrap bool) *Sequencer {
	if len(events) == 0 {
		panic("sequencer: empty event collection")
	}
	return &Sequencer{events: events, callback: callback, wrap: wrap}
}

// Events returns the sequence in order
func (s *Sequencer) Events() []*Event {
	return s.events
}

// SetCallback replaces the observer callback
func (s *Sequencer) SetCallback(callback SequencerCallback) {
	s.callback = callback
}

// Wrap returns the automatic end-of-sequence wrap mode
func (s *Sequencer) Wrap() bool {
	return s.wrap
}

// SetWrap sets whether the sequence repeats after the last event
func (s *Sequencer) SetWrap(wrap bool) {
	s.wrap = wrap
}

// Status derives the sequencer state from the timer and done flag;
// it is never stored.
func (s *Sequencer) Status() SequencerStatus {
	if s.timer.Active() {
		return StatusActive
	}
	if s.done {
		return StatusDone
	}
	return StatusIdle
}

// Event returns the current event
func (s *Sequencer) Event() *Event {
	return s.events[s.current]
}

// Elapsed returns the current event's elapsed time
func (s *Sequencer) Elapsed() Ticks {
	return s.timer.Elapsed()
}

// Index returns the 1-based position of the current event, suitable for
// "event m/n" display rendering.
func (s *Sequencer) Index() int {
	return s.current + 1
}

// Start rewinds to the first event and begins the sequence. Already
// active sequencers are left undisturbed.
func (s *Sequencer) Start() {
	if s.Status() != StatusActive {
		s.rewind()
		s.begin()
		s.timer.Start()
	}
}

// Stop halts the sequence without rewinding; the current event and its
// elapsed time are preserved for Resume.
func (s *Sequencer) Stop() {
	s.timer.Stop()
}

// Reset rewinds to the first event. An active sequencer immediately
// restarts timing and re-fires the first event; a stopped one is left
// armed so the next Resume starts fresh.
func (s *Sequencer) Reset() {
	s.rewind()
	if s.Status() == StatusActive {
		s.timer.Reset()
		s.begin()
	} else {
		s.timer.SetInterval(0) // sentinel: sequencer is reset
	}
}

// Resume continues a stopped sequence. On a freshly constructed or Reset
// sequencer it behaves like Start. If the cursor was moved with Next or
// Prev while stopped, the newly selected event's command fires here
// rather than being skipped.
func (s *Sequencer) Resume() {
	if s.Status() != StatusIdle {
		return
	}
	if s.timer.Interval() == 0 { // reset sentinel
		s.Start()
		return
	}
	if s.exec {
		s.begin()
		s.exec = false
	}
	s.timer.Resume()
}

// Next moves the cursor one event forward, cyclically, and re-arms the
// timer for the new event's duration. The event's command does not fire
// until Resume or Tick picks it up. Scrubbing off a wrap-terminated
// position clears the Done state.
func (s *Sequencer) Next() {
	s.current++
	if s.current == len(s.events) {
		s.current = 0
	}
	s.scrubbed()
}

// Prev moves the cursor one event backward, cyclically; otherwise as Next
func (s *Sequencer) Prev() {
	if s.current == 0 {
		s.current = len(s.events)
	}
	s.current--
	s.scrubbed()
}

// Tick steps the sequence: when the current event's time is up its End
// notification fires and the cursor advances. Past the last event the
// sequence either wraps to the first event or stops with StatusDone. If
// still running after advancing, the new current event begins.
func (s *Sequencer) Tick() {
	if s.timer.Expired() {
		s.end()
		s.advance()
		if s.Status() == StatusActive {
			s.begin()
		}
	}
}

// Clock services the sequencer, satisfying the Clockable contract
func (s *Sequencer) Clock() {
	s.Tick()
}

// begin arms the timer for the current event, executes its command and
// fires the Begin notification.
func (s *Sequencer) begin() {
	e := s.events[s.current]
	s.timer.SetInterval(e.Duration)
	s.timer.Reset()
	if e.Command != nil {
		e.Command.Execute()
	}
	s.notify(e, EventBegin)
}

// advance moves the cursor past the completed event. Falling off the end
// of a non-wrapping sequence stops the timer, holds the cursor at the
// last event and fires one more End notification so observers can detect
// completion.
func (s *Sequencer) advance() {
	s.current++
	if s.current == len(s.events) {
		if s.wrap {
			s.current = 0
		} else {
			s.Stop()
			s.current--
			s.done = true
			s.notify(s.events[s.current], EventEnd)
		}
	}
}

func (s *Sequencer) end() {
	s.notify(s.events[s.current], EventEnd)
}

func (s *Sequencer) rewind() {
	s.current = 0
	s.done = false
}

// scrubbed re-arms the timer after a manual cursor move
func (s *Sequencer) scrubbed() {
	s.done = false
	s.exec = true
	s.timer.SetInterval(s.events[s.current].Duration)
	s.timer.Reset()
}

func (s *Sequencer) notify(e *Event, phase EventPhase) {
	if s.callback != nil {
		s.callback(e, phase)
	}
}
