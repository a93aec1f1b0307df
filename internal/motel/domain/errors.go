package domain

import "errors"

// The four failure kinds a request can end in. All are terminal for the
// request; none is retried. Unauthenticated ("log in") and Unauthorized
// ("you lack permission") must stay distinguishable for callers.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnauthorized       = errors.New("not authorized to perform this action")
	ErrMotelNotFound      = errors.New("motel not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrPhotoNotFound      = errors.New("photo not found on motel")
	ErrPhotoQuotaExceeded = errors.New("photo quota for plan exceeded")
	ErrInvalidStatus      = errors.New("invalid motel status")
	ErrInvalidInput       = errors.New("invalid input")
)
