package model

import "time"

// SavedReport is a named, persisted mission report parameter set.
type SavedReport struct {
	ID          string           `json:"_id,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Report      string           `json:"report"`
	Params      ReportParameters `json:"params"`
	UserID      string           `json:"user_id,omitempty"`
	IsGlobal    bool             `json:"is_global"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// DefaultReport is the unsaved report a session starts with.
func DefaultReport() SavedReport {
	return SavedReport{
		Report: ReportName,
		Params: DefaultParameters(),
	}
}

// Clone returns a deep copy of s.
func (s SavedReport) Clone() SavedReport {
	out := s
	out.Params = s.Params.Clone()
	return out
}
