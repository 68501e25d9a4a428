package output

import (
	"strconv"

	"github.com/agentstation/brickline/pkg/reconcile"
	"github.com/agentstation/brickline/pkg/stats"
)

var statsHeaders = []string{"List", "Total Items", "Total Parts", "Unique Item/Color", "Unique Colors"}

var statsAlignment = []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight}

// NamedStatistics labels the statistics of one list.
type NamedStatistics struct {
	Name       string           `json:"name" yaml:"name"`
	Statistics stats.Statistics `json:"statistics" yaml:"statistics"`
}

// StatisticsTable renders one row per list.
func StatisticsTable(lists []NamedStatistics) Data {
	rows := make([][]string, 0, len(lists))
	for _, l := range lists {
		rows = append(rows, statsRow(l.Name, l.Statistics))
	}
	return Data{Headers: statsHeaders, Rows: rows, ColumnAlignment: statsAlignment}
}

func statsRow(name string, s stats.Statistics) []string {
	return []string{
		name,
		strconv.Itoa(s.TotalItems),
		strconv.Itoa(s.TotalParts),
		strconv.Itoa(s.UniqueItemColorCount),
		strconv.Itoa(s.UniqueColorCount),
	}
}

// MergeReport describes one merge for the summary printed after it.
type MergeReport struct {
	Output    string            `json:"output" yaml:"output"`
	Summary   reconcile.Summary `json:"summary" yaml:"summary"`
	Primary   NamedStatistics   `json:"primary" yaml:"primary"`
	Secondary NamedStatistics   `json:"secondary" yaml:"secondary"`
	Merged    NamedStatistics   `json:"merged" yaml:"merged"`
}

// MergeTable renders the statistics of both inputs and the result.
func MergeTable(r MergeReport) Data {
	return StatisticsTable([]NamedStatistics{r.Primary, r.Secondary, r.Merged})
}

// ValidationResult is the outcome of decoding one file.
type ValidationResult struct {
	File  string `json:"file" yaml:"file"`
	Valid bool   `json:"valid" yaml:"valid"`
	Items int    `json:"items" yaml:"items"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ValidationTable renders one row per file.
func ValidationTable(results []ValidationResult) Data {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		if !r.Valid {
			status = "invalid"
		}
		rows = append(rows, []string{r.File, status, strconv.Itoa(r.Items), r.Error})
	}
	return Data{
		Headers:         []string{"File", "Status", "Items", "Error"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
}
