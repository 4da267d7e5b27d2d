package assign

import "errors"

// ErrInvalidConfig is returned when the assigner is built with unusable settings.
var ErrInvalidConfig = errors.New("assign: invalid config")
