// Package tsplib - sentinel errors.
package tsplib

import "errors"

var (
	// ErrMissingCoordSection indicates that no NODE_COORD_SECTION line was
	// found.
	ErrMissingCoordSection = errors.New("tsplib: missing NODE_COORD_SECTION")

	// ErrMissingEOF indicates that the input ended inside the coordinate
	// section without an EOF line.
	ErrMissingEOF = errors.New("tsplib: missing EOF terminator")

	// ErrMalformedLine indicates a coordinate line that cannot be decoded.
	// The wrapped error carries the line number and, when available, the
	// underlying strconv error.
	ErrMalformedLine = errors.New("tsplib: malformed line")

	// ErrNoCities indicates a well-formed coordinate section with no cities.
	ErrNoCities = errors.New("tsplib: no cities")
)
