package overlay

import "errors"

// ErrInvalidPositioning is returned when the location, width, height
// and bounds fields do not match exactly one of the four permitted
// positioning combinations. It signals a caller contract violation and
// is never recovered from internally.
var ErrInvalidPositioning = errors.New("invalid positioning configuration")
