package services

import "errors"

// Command-layer validation errors. These are raised before any mutating
// statement runs; repository errors pass through untouched.
var (
	ErrTitleRequired      = errors.New("title cannot be empty")
	ErrFolderNameRequired = errors.New("folder name cannot be empty")
	ErrTagNameRequired    = errors.New("tag name cannot be empty")
	ErrInvalidCredentials = errors.New("current password is incorrect")
)
