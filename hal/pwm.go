package hal

// PWMChannel identifies a PWM output channel
type PWMChannel uint32

// PWMDriver is the abstract pulse output interface, sized for hobby-servo
// style control: a fixed frame period with a variable pulse width.
type PWMDriver interface {
	// ConfigureChannel prepares a channel with the given frame period
	ConfigureChannel(ch PWMChannel, periodUS uint32) error

	// SetPulseWidth sets the channel's pulse width in microseconds
	SetPulseWidth(ch PWMChannel, us uint32) error

	// PulseWidth reads back the channel's pulse width in microseconds
	PulseWidth(ch PWMChannel) (uint32, error)
}

var pwmDriver PWMDriver

// SetPWMDriver registers the platform PWM driver
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
