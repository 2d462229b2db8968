package model

import (
	"encoding/json"
	"time"
)

// ReportResult is the aggregated query output a mission report is built from.
// Every field is optional; absent data decodes to zero values.
type ReportResult struct {
	TotalStories int           `json:"total_stories"`
	NewStories   NewStories    `json:"new_stories"`
	Rewrites     int           `json:"rewrites"`
	Corrections  []StoryRecord `json:"corrections"`
	Kills        []StoryRecord `json:"kills"`
	Takedowns    []StoryRecord `json:"takedowns"`
	SMSAlerts    int           `json:"sms_alerts"`
}

// NewStories counts first-version stories, split by category code.
type NewStories struct {
	Count      int            `json:"count"`
	Categories map[string]int `json:"categories"`
}

// StoryRecord is one published item listed in a correction, kill or takedown table.
type StoryRecord struct {
	VersionCreated *time.Time `json:"versioncreated,omitempty"`
	Updated        *time.Time `json:"_updated,omitempty"`
	Slugline       string     `json:"slugline,omitempty"`
	AnpaTakeKey    string     `json:"anpa_take_key,omitempty"`
	Ednote         string     `json:"ednote,omitempty"`
	Reasons        string     `json:"_reasons,omitempty"`
}

// Timestamp returns versioncreated, falling back to _updated. Nil when both are absent.
func (r StoryRecord) Timestamp() *time.Time {
	if r.VersionCreated != nil {
		return r.VersionCreated
	}
	return r.Updated
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
}

func (r *StoryRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		VersionCreated *string `json:"versioncreated"`
		Updated        *string `json:"_updated"`
		Slugline       *string `json:"slugline"`
		AnpaTakeKey    *string `json:"anpa_take_key"`
		Ednote         *string `json:"ednote"`
		Reasons        *string `json:"_reasons"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = StoryRecord{
		VersionCreated: parseTimestamp(raw.VersionCreated),
		Updated:        parseTimestamp(raw.Updated),
		Slugline:       deref(raw.Slugline),
		AnpaTakeKey:    deref(raw.AnpaTakeKey),
		Ednote:         deref(raw.Ednote),
		Reasons:        deref(raw.Reasons),
	}
	return nil
}

// DecodeReportResult decodes a raw query response. Missing or null fields become zero values;
// only malformed JSON is an error.
func DecodeReportResult(data []byte) (ReportResult, error) {
	var r ReportResult
	if len(data) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return ReportResult{}, err
	}
	return r, nil
}

func parseTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
