package glyphweave

import "errors"

var (
	// ErrInvalidSeedToken indicates a seed token that could not be decoded.
	// It is recovered from by generating a fresh seed, see [ResolveSeed].
	ErrInvalidSeedToken = errors.New("glyphweave: invalid seed token")

	// ErrInsufficientSpace indicates that the requested rows do not fit the
	// available span. The layout is empty in that case.
	ErrInsufficientSpace = errors.New("glyphweave: insufficient space")

	ErrUnknownFamily    = errors.New("glyphweave: unknown layout family")
	ErrUnknownShiftMode = errors.New("glyphweave: unknown shift mode")
	ErrUnknownDirection = errors.New("glyphweave: unknown direction")
	ErrUnknownFormat    = errors.New("glyphweave: unknown settings format")
)
