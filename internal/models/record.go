package models

// Keyed is implemented by every persisted entity (value receiver).
type Keyed interface {
	RecordID() string
}

// Record is the mutable form of Keyed used by the persistence gateway.
// Only pointers to entities satisfy it.
type Record interface {
	Keyed
	SetRecordID(id string)
}
