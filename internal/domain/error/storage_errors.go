// Package error defines domain-specific errors for the family finance application.
package error

// StorageFaultClass groups storage faults by how the caller should react.
type StorageFaultClass string

const (
	// StorageFaultTransient covers timeouts, deadlocks and lock contention.
	StorageFaultTransient StorageFaultClass = "transient"
	// StorageFaultConnectivity covers network and server-unreachable faults.
	StorageFaultConnectivity StorageFaultClass = "connectivity"
	// StorageFaultAuthentication covers rejected database credentials.
	StorageFaultAuthentication StorageFaultClass = "authentication"
	// StorageFaultUnknown covers everything that could not be classified.
	StorageFaultUnknown StorageFaultClass = "unknown"
)

// StorageError wraps a storage-layer fault with its class and whether
// retrying the operation may succeed.
type StorageError struct {
	Class     StorageFaultClass
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError.
func NewStorageError(class StorageFaultClass, message string, retryable bool, err error) *StorageError {
	return &StorageError{
		Class:     class,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}
