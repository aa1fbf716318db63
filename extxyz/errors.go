// SPDX-License-Identifier: MIT

package extxyz

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a frame that does not follow the XYZ layout.
	ErrMalformed = errors.New("extxyz: malformed frame")

	// ErrMissingKey indicates a required header key that is absent.
	ErrMissingKey = errors.New("extxyz: missing header key")

	// ErrUnknownElement indicates an element symbol with no tabulated mass.
	ErrUnknownElement = errors.New("extxyz: unknown element")

	// ErrEmpty indicates input without any frame.
	ErrEmpty = errors.New("extxyz: no frames")
)

// frameErrorf attaches the frame index and input line to err.
func frameErrorf(frame, line int, err error) error {
	return fmt.Errorf("frame %d (line %d): %w", frame, line, err)
}
