package project

import "errors"

var (
	// ErrProjectNotFound indicates the project directory doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoSamples indicates consolidation was requested but no samples
	// could be identified from the raw data.
	ErrNoSamples = errors.New("no samples identified")
	// ErrDestinationExists indicates the consolidation output directory
	// already exists; nothing is written into pre-existing directories.
	ErrDestinationExists = errors.New("destination directory already exists")
)
