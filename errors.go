package main

import "errors"

// Sentinel errors returned while assembling a document.
var (
	ErrNoInput         = errors.New("no input files provided")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)
