package window

import "errors"

// ErrLength is returned when samples and window coefficients differ in
// length.
var ErrLength = errors.New("window: length mismatch")
