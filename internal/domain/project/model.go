package project

// Project represents one sequencing submission: its identity fields plus the
// cached sample list derived from the raw data directory. Name is immutable
// and maps 1:1 to a directory under the database root. Samples is nil until a
// scan has run; an empty non-nil slice means a scan found nothing.
//
// The YAML form of this struct is the persisted metadata record; the key set
// is fixed and round trips losslessly.
type Project struct {
	Name    string   `yaml:"name"`
	Owner   *string  `yaml:"owner"`
	RunType *string  `yaml:"run_type"`
	Samples []string `yaml:"samples"`
}

// Equal compares all declared fields.
func (p *Project) Equal(o *Project) bool {
	if p.Name != o.Name {
		return false
	}
	if !ptrEqual(p.Owner, o.Owner) || !ptrEqual(p.RunType, o.RunType) {
		return false
	}
	if (p.Samples == nil) != (o.Samples == nil) || len(p.Samples) != len(o.Samples) {
		return false
	}
	for i := range p.Samples {
		if p.Samples[i] != o.Samples[i] {
			return false
		}
	}
	return true
}

// FieldUpdate is a typed partial update of the editable metadata fields.
// Name is not part of the update by construction; nil fields keep their
// current value.
type FieldUpdate struct {
	Owner   *string
	RunType *string
}

// Apply replaces only the fields the update supplies.
func (p *Project) Apply(u FieldUpdate) {
	if u.Owner != nil {
		p.Owner = u.Owner
	}
	if u.RunType != nil {
		p.RunType = u.RunType
	}
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
