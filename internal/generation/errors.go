package generation

import "errors"

// ErrNoSections indicates every section completion failed, leaving nothing
// to assemble.
var ErrNoSections = errors.New("no sections generated")
