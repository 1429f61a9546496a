package auth

import "errors"

// ErrMissingCredentials indicates empty login fields. It is rejected locally:
// no network call is made and no store error state is set.
var ErrMissingCredentials = errors.New("email, password, and tenant are required")
