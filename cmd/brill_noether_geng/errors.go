package main

import "errors"

// ErrGengNotFound is returned when the external nauty geng binary cannot
// be located on PATH.
var ErrGengNotFound = errors.New("brill_noether_geng: geng not found on PATH")
