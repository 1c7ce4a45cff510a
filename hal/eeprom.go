package hal

// EEPROMDevice is byte-addressed non-volatile storage. The ReadAt/WriteAt
// shape matches io.ReaderAt/io.WriterAt so external EEPROM drivers plug
// in directly.
type EEPROMDevice interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)

	// Size returns the device capacity in bytes
	Size() int64
}

var eepromDevice EEPROMDevice

// SetEEPROM registers the platform EEPROM device
func SetEEPROM(d EEPROMDevice) {
	eepromDevice = d
}

// MustEEPROM returns the configured device or panics if missing
func MustEEPROM() EEPROMDevice {
	if eepromDevice == nil {
		panic("EEPROM device not configured")
	}
	return eepromDevice
}
