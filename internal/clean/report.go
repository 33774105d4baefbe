package clean

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NoonWatt/solarscan-cli/internal/utils"
)

// ColumnChange records what cleaning did to one key column.
type ColumnChange struct {
	Median  float64 `yaml:"median" json:"median"`
	Imputed int     `yaml:"imputed" json:"imputed"`
	Clipped int     `yaml:"clipped" json:"clipped"`
}

// Report describes one cleaning run. It is written next to the cleaned CSV so
// a run can be audited after the fact.
type Report struct {
	RunID            string                  `yaml:"run_id" json:"run_id"`
	Source           string                  `yaml:"source" json:"source"`
	Rows             int                     `yaml:"rows" json:"rows"`
	OutlierThreshold float64                 `yaml:"outlier_threshold" json:"outlier_threshold"`
	OutlierRows      []int                   `yaml:"outlier_rows,flow" json:"outlier_rows"`
	Columns          map[string]ColumnChange `yaml:"columns" json:"columns"`
	DroppedColumns   []string                `yaml:"dropped_columns,omitempty" json:"dropped_columns,omitempty"`
	CreatedAt        time.Time               `yaml:"created_at" json:"created_at"`
}

// TotalImputed sums imputed entries across all columns.
func (r *Report) TotalImputed() int {
	var n int
	for _, ch := range r.Columns {
		n += ch.Imputed
	}
	return n
}

// TotalClipped sums clipped entries across all columns.
func (r *Report) TotalClipped() int {
	var n int
	for _, ch := range r.Columns {
		n += ch.Clipped
	}
	return n
}

// Save writes the report as YAML, atomically.
func (r *Report) Save(path string) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}

// Summary renders the one-line outcome printed by the CLI.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d rows, %d outlier row(s) flagged, %d value(s) imputed, %d value(s) clipped",
		r.Rows, len(r.OutlierRows), r.TotalImputed(), r.TotalClipped())
}
