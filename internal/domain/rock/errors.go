package rock

import "errors"

// ErrInvalidPercent indicates a check-in percentage outside 0-100. It is
// rejected locally before any network call.
var ErrInvalidPercent = errors.New("check-in percent must be between 0 and 100")
