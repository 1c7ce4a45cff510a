package hal

// ADCChannel identifies an analog input channel
type ADCChannel uint32

// ADCDriver is the abstract analog input interface.
// Readings are left-justified to 16 bits regardless of converter width.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for sampling
	ConfigureChannel(ch ADCChannel) error

	// ReadChannel samples the channel once
	ReadChannel(ch ADCChannel) (uint16, error)

	// Sample samples the channel, ignoring errors, for polling paths
	Sample(ch ADCChannel) uint16
}

var adcDriver ADCDriver

// SetADCDriver registers the platform ADC driver
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}
