package core

import "errors"

var (
	ErrNoRenderer        = errors.New("hoglib: window has no renderer")
	ErrNotInitialized    = errors.New("hoglib: subsystem not initialized")
	ErrUnsupportedFormat = errors.New("hoglib: unsupported pixel format")
	ErrInvalidBlob       = errors.New("hoglib: invalid texture blob")
	ErrReleased          = errors.New("hoglib: resource already released")
)
