package stats

import "fmt"

// NotVolumeError reports that a device exists but is not a managed
// dedup volume. The assay escalates it to InvalidDeviceError when the
// device was named explicitly by the caller.
type NotVolumeError struct {
	Device string
}

func (e *NotVolumeError) Error() string {
	return fmt.Sprintf("%s is not a dedup volume", e.Device)
}

// InvalidDeviceError is fatal: a user-specified device failed volume
// validation. Explicit input is a contract the caller must honor.
type InvalidDeviceError struct {
	Device string
}

func (e *InvalidDeviceError) Error() string {
	return fmt.Sprintf("invalid device: %s is not a dedup volume", e.Device)
}

// StatFetchError reports a failure reading a statistic set. It is fatal
// for explicit devices and causes the device to be dropped when it was
// auto-discovered.
type StatFetchError struct {
	Device string
	Set    SetType
	Err    error
}

func (e *StatFetchError) Error() string {
	return fmt.Sprintf("cannot read %s for %s: %v", e.Set, e.Device, e.Err)
}

func (e *StatFetchError) Unwrap() error {
	return e.Err
}
