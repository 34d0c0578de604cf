package buddy

import "errors"

var (
	// ErrBadCount indicates a page count that is not a positive power of two.
	ErrBadCount = errors.New("buddy: page count must be a positive power of two")

	// ErrTooLarge indicates a page count above the configured single-block cap.
	ErrTooLarge = errors.New("buddy: page count exceeds the single-block cap")

	// ErrOutOfMemory indicates that no free block large enough exists.
	ErrOutOfMemory = errors.New("buddy: no free block large enough")

	// ErrArenaTooSmall indicates that [base, limit) cannot hold the
	// configured arena after page alignment.
	ErrArenaTooSmall = errors.New("buddy: arena range too small for configuration")
)
