package naming

import (
	"fmt"
	"time"

	"shotname/internal/classify"
)

// Record is the naming decision for one file.
type Record struct {
	Index     int       `json:"index"`
	Directory string    `json:"directory"`
	OldName   string    `json:"old_name"`
	NewBase   string    `json:"new_base"`
	Extension string    `json:"extension"`
	NewName   string    `json:"new_name"`
	RawOld    string    `json:"raw_old,omitempty"`
	RawNew    string    `json:"raw_new,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	// Sequence and SequenceNumber place the file in the day's n-th
	// sequence of that kind.
	Sequence       classify.SequenceKind `json:"sequence,omitempty"`
	SequenceNumber int                   `json:"sequence_number,omitempty"`
}

// Unchanged reports whether the file already carries its new name.
func (r Record) Unchanged() bool {
	return r.OldName == r.NewName
}

// HasRaw reports whether a raw companion follows the rename.
func (r Record) HasRaw() bool {
	return r.RawOld != "" && r.RawNew != ""
}

// String formats the audit log line for the main file.
func (r Record) String() string {
	return fmt.Sprintf("%-50s\t %-50s", r.OldName, r.NewName)
}

// RawString formats the audit log line for the raw companion.
func (r Record) RawString() string {
	return fmt.Sprintf("%-50s\t %-50s", r.RawOld, r.RawNew)
}
