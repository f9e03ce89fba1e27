package domain

import "errors"

// Sentinel errors returned by services. Handlers translate these into HTTP
// statuses with errors.Is, so wrapped variants keep their classification.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not authorized")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("concurrent modification")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrDepthLimitExceeded = errors.New("comment depth limit exceeded")
	ErrOwnerCannotLeave   = errors.New("project owner cannot leave the project")
	ErrDuplicateRequest   = errors.New("collaboration request already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
