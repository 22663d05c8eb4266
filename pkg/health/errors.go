package health

import "errors"

// ErrCheckTimeout is reported for a check that did not return before the probe timeout.
var ErrCheckTimeout = errors.New("health: check timeout")
