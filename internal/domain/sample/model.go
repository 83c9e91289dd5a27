package sample

import (
	"path/filepath"
	"strings"
)

// Direction identifies the read direction of a raw file.
type Direction int

const (
	Undirected Direction = iota
	R1
	R2
)

const (
	// DefaultSeparator splits the sample identifier from the rest of the
	// filename (Illumina-style: SAMP1_S1_L001_R1_001.fastq.gz).
	DefaultSeparator = "_"

	// Extension is the two-part extension raw read files carry.
	Extension = ".fastq.gz"

	markerR1 = "_R1_"
	markerR2 = "_R2_"
)

// File is a raw read file belonging to exactly one sample.
type File struct {
	Path string
}

// Direction reports the read direction derived from the filename.
func (f File) Direction() Direction {
	name := filepath.Base(f.Path)
	switch {
	case strings.Contains(name, markerR1):
		return R1
	case strings.Contains(name, markerR2):
		return R2
	default:
		return Undirected
	}
}

// ID returns the sample identifier: the segment of the base name, with the
// raw-read extension stripped, preceding the first occurrence of sep.
func (f File) ID(sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	name := strings.TrimSuffix(filepath.Base(f.Path), Extension)
	id, _, _ := strings.Cut(name, sep)
	return id
}

// IsRawRead reports whether name carries the raw-read extension.
func IsRawRead(name string) bool {
	return strings.HasSuffix(name, Extension)
}
