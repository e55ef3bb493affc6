package fileserver

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while an instance is active.
	ErrAlreadyRunning = errors.New("server is already running")
	// ErrNotRunning is returned by Stop when no instance is active.
	ErrNotRunning = errors.New("server is not running")
	// ErrMissingFolder is returned by Start when no folder is configured.
	ErrMissingFolder = errors.New("folder path is not set")
	// ErrFolderNotFound is returned by Start when the folder does not exist or is not a directory.
	ErrFolderNotFound = errors.New("folder does not exist")
	// ErrInvalidPort is returned by Configure for ports outside [1024, 65535].
	ErrInvalidPort = errors.New("port must be between 1024 and 65535")
	// ErrBindFailed is returned by Start when the listening socket cannot be bound.
	ErrBindFailed = errors.New("failed to bind listener")
)

// Error kinds, as reported by the control API and metrics.
const (
	KindAlreadyRunning = "already_running"
	KindNotRunning     = "not_running"
	KindMissingFolder  = "missing_folder"
	KindFolderNotFound = "folder_not_found"
	KindInvalidPort    = "invalid_port"
	KindBindFailed     = "bind_failed"
	KindUnknown        = "unknown"
)

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyRunning):
		return KindAlreadyRunning
	case errors.Is(err, ErrNotRunning):
		return KindNotRunning
	case errors.Is(err, ErrMissingFolder):
		return KindMissingFolder
	case errors.Is(err, ErrFolderNotFound):
		return KindFolderNotFound
	case errors.Is(err, ErrInvalidPort):
		return KindInvalidPort
	case errors.Is(err, ErrBindFailed):
		return KindBindFailed
	default:
		return KindUnknown
	}
}
