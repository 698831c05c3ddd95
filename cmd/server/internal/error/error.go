package srverror

import "errors"

// ErrTypeAssertMismatch reports that a value stashed on the echo context by
// middleware did not have the expected type.
var ErrTypeAssertMismatch = errors.New("type assertion mismatch")
