package pages

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed pagedefs.yaml
var defsYAML []byte

// Row kinds. A data row formats a value, flag/warning/error rows render a
// boolean, min/max/avg aggregate an array field.
const (
	KindData    = "data"
	KindFlag    = "flag"
	KindWarning = "warning"
	KindError   = "error"
	KindMin     = "min"
	KindMax     = "max"
	KindAvg     = "avg"
)

type RowDef struct {
	Label  string `yaml:"label"`
	Field  string `yaml:"field"`
	Topic  string `yaml:"topic"`
	Unit   string `yaml:"unit"`
	Format string `yaml:"format"`
	Kind   string `yaml:"kind"`
	// Index picks one element of an array field; nil for scalar fields.
	Index *int `yaml:"index"`
}

type SectionDef struct {
	Name string   `yaml:"name"`
	Rows []RowDef `yaml:"rows"`
}

type ChartDef struct {
	Name   string   `yaml:"name"`
	Topic  string   `yaml:"topic"`
	Fields []string `yaml:"fields"`
}

type PageDef struct {
	Name     string       `yaml:"name"`
	Title    string       `yaml:"title"`
	Topic    string       `yaml:"topic"`
	Sections []SectionDef `yaml:"sections"`
	Charts   []ChartDef   `yaml:"charts"`
}

type defs struct {
	Pages []PageDef `yaml:"pages"`
}

// loadDefs parses the embedded page definition tables and fills defaults: a
// row without kind is a data row, a row without topic reads the page topic.
func loadDefs() ([]PageDef, error) {
	var d defs
	if err := yaml.Unmarshal(defsYAML, &d); err != nil {
		return nil, fmt.Errorf("parsing page definitions: %w", err)
	}
	for pi := range d.Pages {
		page := &d.Pages[pi]
		if page.Name == "" || page.Topic == "" {
			return nil, fmt.Errorf("page %d needs name and topic", pi)
		}
		for si := range page.Sections {
			for ri := range page.Sections[si].Rows {
				row := &page.Sections[si].Rows[ri]
				if row.Kind == "" {
					row.Kind = KindData
				}
				if row.Topic == "" {
					row.Topic = page.Topic
				}
				if row.Format == "" {
					row.Format = "%v"
				}
			}
		}
	}
	return d.Pages, nil
}
