// Hardware abstraction layer
// The core and the driver toolkit only ever touch these interfaces;
// platform-specific code registers concrete drivers at startup
package hal

// Pin identifies a hardware GPIO pin number
type Pin uint32

// GPIODriver is the abstract GPIO interface driver code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin Pin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin Pin) error

	// ConfigureInputPullDown configures a pin as a digital input with pull-down resistor
	ConfigureInputPullDown(pin Pin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin Pin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin Pin) (bool, error)

	// ReadPin reads the current pin state, ignoring errors, for polling paths
	ReadPin(pin Pin) bool
}

// Global singleton used by driver code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
