package chart

import "encoding/json"

const (
	TypeChart = "chart"
	TypeTable = "table"
)

// Config IDs.
const (
	IDEmpty       = "mission_report_empty"
	IDSummary     = "mission_report_summary"
	IDCategories  = "mission_report_categories"
	IDCorrections = "mission_report_corrections"
	IDKills       = "mission_report_kills"
	IDTakedowns   = "mission_report_takedowns"
	IDUpdates     = "mission_report_updates"
	IDSMSAlerts   = "mission_report_sms_alerts"
)

// List is the display payload of one generation.
type List struct {
	Charts       []Config `json:"charts"`
	MultiChart   bool     `json:"multiChart"`
	MarginBottom bool     `json:"marginBottom"`
}

// Config describes a single chart or table.
type Config struct {
	ID    string        `json:"id"`
	Type  string        `json:"type"`
	Chart *ChartOptions `json:"chart,omitempty"`
	Title string        `json:"title"`

	// Chart fields
	Subtitle      string                 `json:"subtitle,omitempty"`
	ChartType     string                 `json:"chartType,omitempty"`
	Height        int                    `json:"height,omitempty"`
	FullHeight    bool                   `json:"fullHeight,omitempty"`
	DataLabels    bool                   `json:"dataLabels,omitempty"`
	TooltipHeader string                 `json:"tooltipHeader,omitempty"`
	TooltipPoint  string                 `json:"tooltipPoint,omitempty"`
	Translations  map[string]Translation `json:"translations,omitempty"`
	Axes          []Axis                 `json:"axes,omitempty"`

	// Table fields
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// ChartOptions carries the renderer chart type for tables.
type ChartOptions struct {
	Type string `json:"type"`
}

// Translation maps raw category keys of a field to display labels.
type Translation struct {
	Title string            `json:"title"`
	Names map[string]string `json:"names"`
}

type Axis struct {
	Type             string   `json:"type"`
	DefaultChartType string   `json:"defaultChartType"`
	YTitle           string   `json:"yTitle,omitempty"`
	XTitle           string   `json:"xTitle,omitempty"`
	CategoryField    string   `json:"categoryField"`
	Categories       []string `json:"categories"`
	StackLabels      bool     `json:"stackLabels,omitempty"`
	Series           []Series `json:"series"`
}

type Series struct {
	Field     string `json:"field"`
	Data      []int  `json:"data"`
	Stack     *int   `json:"stack,omitempty"`
	StackType string `json:"stackType,omitempty"`
}

// MarshalJSON always emits rows for tables, empty or not.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	if c.Type != TypeTable {
		return json.Marshal(alias(c))
	}
	rows := c.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return json.Marshal(struct {
		alias
		Rows [][]string `json:"rows"`
	}{alias(c), rows})
}

// Find returns the config with id, if present.
func (l List) Find(id string) (Config, bool) {
	for _, c := range l.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return Config{}, false
}

// IDs lists config IDs in display order.
func (l List) IDs() []string {
	ids := make([]string, 0, len(l.Charts))
	for _, c := range l.Charts {
		ids = append(ids, c.ID)
	}
	return ids
}
