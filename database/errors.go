package database

import "errors"

// Repository-level errors. Storage failures are never mapped onto these;
// they propagate wrapped so the driver error stays inspectable.
var (
	ErrNotFound       = errors.New("not found")
	ErrFolderNotEmpty = errors.New("folder is not empty")
	ErrFolderCycle    = errors.New("folder cannot be moved into its own subtree")
)
