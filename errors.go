package astirecorder

import "fmt"

// DeviceError is returned when the capture device can't be opened or read. It's fatal to a run.
type DeviceError struct {
	Device string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("astirecorder: device %s failed: %s", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// StorageError is returned when an utterance can't be written. It's never fatal to a run.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("astirecorder: storing %s failed: %s", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
