package dds

import "errors"

var (
	ErrNotDDS               = errors.New("not a DDS file")
	ErrInvalidHeader        = errors.New("invalid DDS header")
	ErrNotCubemapCompatible = errors.New("not suitable for a cubemap")
	ErrInconsistentFaces    = errors.New("inconsistent face definition")
)
