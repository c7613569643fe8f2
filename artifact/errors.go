package artifact

import "errors"

// ErrNotFound reports that no artifact exists for the session / id pair.
// Callers distinguish it from store failures with errors.Is.
var ErrNotFound = errors.New("artifact not found")
