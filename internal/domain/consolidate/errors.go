package consolidate

import "errors"

// ErrAmbiguousMode is returned when an unpaired consolidation is invoked
// against inputs containing R2-direction files. That almost always means the
// run was meant to be paired-end, so nothing is written.
var ErrAmbiguousMode = errors.New("unpaired mode invoked on paired-end data")
