// Package common defines the error taxonomy shared by the server and client
// layers of Mini-Reddit. Callers should use errors.Is to match these values:
// every specific failure wraps exactly one kind.
package common

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrorNotFound is wrapped by every lookup miss (post, comment, user).
	ErrorNotFound = errors.New("not found")

	// ErrorValidation is wrapped by every rejected input (empty required field).
	ErrorValidation = errors.New("validation failure")

	// ErrorInternal hides store-level failures from API consumers.
	ErrorInternal = errors.New("internal error")
)

// Lookup misses.
var (
	ErrPostNotFound    = fmt.Errorf("post %w", ErrorNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrorNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrorNotFound)
)

// Validation failures.
var (
	ErrEmptyTitle    = fmt.Errorf("%w: title is required", ErrorValidation)
	ErrEmptyContent  = fmt.Errorf("%w: content is required", ErrorValidation)
	ErrEmptyUsername = fmt.Errorf("%w: username is required", ErrorValidation)
	ErrMissingUser   = fmt.Errorf("%w: owning user is required", ErrorValidation)
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrorValidation)
)
