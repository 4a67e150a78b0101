package tsplib

import "errors"

// ErrParse is the single sentinel wrapping every reader-level failure: the
// core never observes partial or ambiguous state, per spec.md §7.
var ErrParse = errors.New("tsplib: failed to parse input")
