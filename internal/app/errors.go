package app

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied credentials do not
	// match. The message is shown to end users and must not enable account
	// enumeration.
	ErrInvalidCredentials = errors.New("incorrect email address or password")

	// ErrAdminDisabled is returned for disabled accounts. Handlers should
	// map it to the same response as ErrInvalidCredentials.
	ErrAdminDisabled = errors.New("admin account disabled")

	ErrCarNotFound      = errors.New("car not found")
	ErrCategoryNotFound = errors.New("forum category not found")
	ErrDuplicatePost    = errors.New("a post with this title already exists in the category")
	ErrPhotosDisabled   = errors.New("photo storage is not configured")
)
