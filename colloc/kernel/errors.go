package kernel

import "errors"

// ErrUnknown reports a kernel tag outside the known family.
var ErrUnknown = errors.New("unknown kernel type")
