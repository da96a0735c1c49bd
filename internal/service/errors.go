package service

import "errors"

// ErrValidation marks malformed input: empty or duplicate codes, an
// unresolvable parent_code, a bad date. Validation failures are reported
// before (or instead of) any write; the batch is never partially applied.
var ErrValidation = errors.New("validation failed")
