package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ReportName is the report identifier carried by every mission report parameter set.
const ReportName = "mission_report"

// Date filters.
const (
	DateFilterYesterday = "yesterday"
	DateFilterRelative  = "relative"
)

// Source repositories.
const (
	RepoPublished = "published"
	RepoArchived  = "archived"
)

// Exclusion list keys.
const (
	MustNotCategories      = "categories"
	MustNotGenre           = "genre"
	MustNotIngestProviders = "ingest_providers"
	MustNotStages          = "stages"
)

// Report sections.
const (
	SectionSummary     = "summary"
	SectionCategories  = "categories"
	SectionCorrections = "corrections"
	SectionKills       = "kills"
	SectionTakedowns   = "takedowns"
	SectionUpdates     = "updates"
	SectionSMSAlerts   = "sms_alerts"
)

const DefaultSize = 2000

// DatesFilter selects the reporting window.
type DatesFilter struct {
	Filter string `json:"filter" yaml:"filter" validate:"required,oneof=yesterday relative"`
	// Relative is the window length in hours when Filter is relative.
	Relative int `json:"relative,omitempty" yaml:"relative,omitempty" validate:"required_if=Filter relative,omitempty,min=1,max=8760"`
}

// ReportParameters is the editable parameter set of a mission report.
type ReportParameters struct {
	Dates   DatesFilter         `json:"dates" yaml:"dates"`
	Size    int                 `json:"size" yaml:"size" validate:"min=1,max=10000"`
	Repos   map[string]bool     `json:"repos" yaml:"repos"`
	MustNot map[string][]string `json:"must_not" yaml:"must_not"`
	Reports map[string]bool     `json:"reports" yaml:"reports"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DefaultParameters returns a fresh copy of the baseline parameters.
func DefaultParameters() ReportParameters {
	return ReportParameters{
		Dates: DatesFilter{Filter: DateFilterYesterday},
		Size:  DefaultSize,
		Repos: map[string]bool{RepoPublished: true},
		MustNot: map[string][]string{
			MustNotCategories:      {},
			MustNotGenre:           {},
			MustNotIngestProviders: {},
			MustNotStages:          {},
		},
		Reports: map[string]bool{
			SectionSummary:     true,
			SectionCategories:  true,
			SectionCorrections: true,
			SectionKills:       true,
			SectionTakedowns:   true,
			SectionUpdates:     true,
			SectionSMSAlerts:   true,
		},
	}
}

// Validate checks the value ranges of p.
func (p ReportParameters) Validate() error {
	return validate.Struct(p)
}

// ReportEnabled reports whether section is switched on. Absent keys count as enabled.
func (p ReportParameters) ReportEnabled(section string) bool {
	v, ok := p.Reports[section]
	return !ok || v
}

// Clone returns a deep copy of p.
func (p ReportParameters) Clone() ReportParameters {
	out := ReportParameters{
		Dates: p.Dates,
		Size:  p.Size,
	}
	if p.Repos != nil {
		out.Repos = make(map[string]bool, len(p.Repos))
		for k, v := range p.Repos {
			out.Repos[k] = v
		}
	}
	if p.MustNot != nil {
		out.MustNot = make(map[string][]string, len(p.MustNot))
		for k, v := range p.MustNot {
			if v == nil {
				out.MustNot[k] = nil
				continue
			}
			out.MustNot[k] = append(make([]string, 0, len(v)), v...)
		}
	}
	if p.Reports != nil {
		out.Reports = make(map[string]bool, len(p.Reports))
		for k, v := range p.Reports {
			out.Reports[k] = v
		}
	}
	return out
}

// EnabledRepos lists the repositories switched on, in a stable order.
func (p ReportParameters) EnabledRepos() []string {
	out := []string{}
	for _, r := range []string{RepoPublished, RepoArchived} {
		if p.Repos[r] {
			out = append(out, r)
		}
	}
	return out
}
