package entity

import "errors"

// Engine error taxonomy. Callers wrap these with context and match with errors.Is.
var (
	// ErrNotFound is returned when a session or template id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrHostEnumeration is returned when the host cannot list windows, tabs or groups.
	ErrHostEnumeration = errors.New("host enumeration failed")

	// ErrHostCreation marks a failed window, tab or group operation on the host.
	// Restore records it as a warning instead of returning it.
	ErrHostCreation = errors.New("host creation failed")

	// ErrStorage is returned when the persistence adapter cannot read or write a record.
	ErrStorage = errors.New("storage failure")

	// ErrBusy is returned when a restore is requested while another host operation is in flight.
	ErrBusy = errors.New("restore already in progress")

	// ErrInvalidSession is returned when a session record violates its invariants.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidTemplate is returned when a template record violates its invariants.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrUnsupported is returned by host adapters for capabilities the host does not have.
	ErrUnsupported = errors.New("unsupported by host")

	// ErrSyncUnavailable is returned by the sync provider stub.
	ErrSyncUnavailable = errors.New("session sync is not available")
)
