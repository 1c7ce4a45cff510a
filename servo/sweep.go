// Servo sweep controller
// Rotates a hobby servo gradually instead of slamming it to the target:
// each Clock advances the pulse width one step toward the commanded
// angle, so sweep speed is set by the step size and the service interval
// of the scheduler task that drives it.
package servo

import (
	"errors"

	"tickwork/algo"
	"tickwork/hal"
)

// Traits describes a servo's pulse geometry and rotation range
type Traits struct {
	MinPulseUS uint32 // pulse width at angle 0
	MaxPulseUS uint32 // pulse width at MaxAngle
	MaxAngle   uint16 // rotation range in degrees
	FrameUS    uint32 // control frame period
}

// DefaultTraits fits the common analog hobby servo (50 Hz frame,
// 544-2400 us pulse over 180 degrees).
func DefaultTraits() Traits {
	return Traits{
		MinPulseUS: 544,
		MaxPulseUS: 2400,
		MaxAngle:   180,
		FrameUS:    20000,
	}
}

// DefaultStepUS is the default pulse change per clock step
const DefaultStepUS = 40

// ErrNotAttached is returned when a sweep is commanded before Attach
var ErrNotAttached = errors.New("servo: not attached")

// SweepServo drives one PWM channel toward a target angle step by step
type SweepServo struct {
	traits   Traits
	channel  hal.PWMChannel
	attached bool
	current  uint32 // current pulse width in us
	target   uint32
	stepUS   uint32
}

// NewSweepServo returns a detached controller with the given traits
func NewSweepServo(traits Traits) *SweepServo {
	return &SweepServo{traits: traits, stepUS: DefaultStepUS}
}

// Attach binds the servo to a PWM channel and centers it
func (s *SweepServo) Attach(channel hal.PWMChannel) error {
	pwm := hal.MustPWM()
	if err := pwm.ConfigureChannel(channel, s.traits.FrameUS); err != nil {
		return err
	}
	s.channel = channel
	s.attached = true

	// Known starting point: mid travel.
	s.current = (s.traits.MinPulseUS + s.traits.MaxPulseUS) / 2
	s.target = s.current
	return pwm.SetPulseWidth(channel, s.current)
}

// Attached reports whether the servo is bound to a channel
func (s *SweepServo) Attached() bool {
	return s.attached
}

// StepSize returns the pulse change per clock step in microseconds
func (s *SweepServo) StepSize() uint32 {
	return s.stepUS
}

// SetStepSize sets the pulse change per clock step. Zero is pinned to 1
// so a sweep always makes progress.
func (s *SweepServo) SetStepSize(us uint32) {
	s.stepUS = algo.Max(us, 1)
}

// Sweep commands a rotation to the given angle and returns the number of
// clock steps the sweep will take. Angles beyond the range are clamped.
func (s *SweepServo) Sweep(angle uint16) (uint32, error) {
	if !s.attached {
		return 0, ErrNotAttached
	}
	s.target = s.angleToPulse(algo.Clamp(angle, 0, s.traits.MaxAngle))

	var travel uint32
	if s.target > s.current {
		travel = s.target - s.current
	} else {
		travel = s.current - s.target
	}
	return (travel + s.stepUS - 1) / s.stepUS, nil
}

// Angle returns the current position in degrees
func (s *SweepServo) Angle() uint16 {
	return s.pulseToAngle(s.current)
}

// Sweeping reports whether a commanded rotation is still in progress
func (s *SweepServo) Sweeping() bool {
	return s.attached && s.current != s.target
}

// Clock advances the sweep one step, satisfying the Clockable contract
func (s *SweepServo) Clock() {
	if !s.Sweeping() {
		return
	}
	if s.target > s.current {
		s.current += algo.Min(s.stepUS, s.target-s.current)
	} else {
		s.current -= algo.Min(s.stepUS, s.current-s.target)
	}
	// Polling path: a write error leaves current unchanged on the wire
	// and the next step retries.
	_ = hal.MustPWM().SetPulseWidth(s.channel, s.current)
}

func (s *SweepServo) angleToPulse(angle uint16) uint32 {
	span := s.traits.MaxPulseUS - s.traits.MinPulseUS
	return s.traits.MinPulseUS + span*uint32(angle)/uint32(s.traits.MaxAngle)
}

func (s *SweepServo) pulseToAngle(pulse uint32) uint16 {
	span := s.traits.MaxPulseUS - s.traits.MinPulseUS
	return uint16((pulse - s.traits.MinPulseUS) * uint32(s.traits.MaxAngle) / span)
}
