package afs

import "errors"

// Sentinel errors for package afs.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Probe errors
	ErrBadOutput = errors.New("unexpected output from fs command")
	ErrNotInAFS  = errors.New("path is not in AFS")
	ErrSymlink   = errors.New("path is a symbolic link")

	// Cell detection errors
	ErrNoCell = errors.New("workstation cell could not be determined")
)
