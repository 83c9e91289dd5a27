package repository

// SaveOutcome reports how a compare-then-conditionally-write save resolved.
type SaveOutcome string

const (
	// SaveCreated means no record existed and a new one was written.
	SaveCreated SaveOutcome = "created"
	// SaveWritten means an existing record was replaced after confirmation.
	SaveWritten SaveOutcome = "written"
	// SaveUnchanged means the existing record already matched; zero writes.
	SaveUnchanged SaveOutcome = "unchanged"
	// SaveDeclined means the confirmation was answered no; zero writes.
	SaveDeclined SaveOutcome = "declined"
)
