// Package pages holds the view models of the EUI telemetry pages. Each page
// subscribes to its bus topics and keeps a display snapshot up to date;
// field-to-label bindings are declarative, loaded from an embedded YAML
// table. Pages mutate only on the bus dispatch loop; snapshot readers go
// through bus.Sync.
package pages

import (
	"fmt"

	"mseui/bus"
	"mseui/mirror"
	"mseui/model"
)

// Placeholder rendered for missing or malformed telemetry fields.
const Placeholder = "---"

// Row is one rendered line of a page section.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
	Kind  string `json:"kind"`
	// On is meaningful for flag, warning and error rows.
	On bool `json:"on,omitempty"`
}

type Section struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// Snapshot is the full render model of one page, pushed to clients.
type Snapshot struct {
	Page     string           `json:"page"`
	Title    string           `json:"title"`
	Sections []Section        `json:"sections,omitempty"`
	Mode     string           `json:"mode,omitempty"`
	Mirror   string           `json:"mirrorState,omitempty"`
	Mirror2D *mirror.View     `json:"mirror,omitempty"`
	Selected *mirror.Selected `json:"selected,omitempty"`
	Commands []string         `json:"commands,omitempty"`
}

// Page is one telemetry domain view model.
type Page interface {
	Name() string
	Title() string
	// Snapshot renders the current display state. Must run on the bus
	// dispatch loop.
	Snapshot() *Snapshot
}

// Set wires every page and chart to the bus.
type Set struct {
	bus    *bus.Bus
	pages  map[string]Page
	order  []string
	charts map[string][]*Chart
}

// New builds all pages from the embedded definitions plus the status and
// force actuator pages, and subscribes them.
func New(b *bus.Bus, chartCapacity int) (*Set, error) {
	s := &Set{
		bus:    b,
		pages:  make(map[string]Page),
		charts: make(map[string][]*Chart),
	}

	status := newStatusPage(b)
	s.add(status)

	fa := newForceActuatorPage(b)
	s.add(fa)
	faChart, err := newChart("forces", model.TopicAppliedForces,
		[]string{"fx", "fy", "fz", "forceMagnitude"}, chartCapacity, b)
	if err != nil {
		return nil, err
	}
	s.charts[fa.Name()] = []*Chart{faChart}

	pageDefs, err := loadDefs()
	if err != nil {
		return nil, err
	}
	for _, def := range pageDefs {
		page := newFieldPage(def, b)
		s.add(page)
		for _, cd := range def.Charts {
			chart, err := newChart(cd.Name, cd.Topic, cd.Fields, chartCapacity, b)
			if err != nil {
				return nil, err
			}
			s.charts[def.Name] = append(s.charts[def.Name], chart)
		}
	}
	return s, nil
}

func (s *Set) add(p Page) {
	s.pages[p.Name()] = p
	s.order = append(s.order, p.Name())
}

// Page returns a page by name.
func (s *Set) Page(name string) (Page, error) {
	p, ok := s.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	return p, nil
}

// Names lists pages in registration order.
func (s *Set) Names() []string {
	return s.order
}

// Charts returns the charts of a page, nil when it has none.
func (s *Set) Charts(name string) []*Chart {
	return s.charts[name]
}

// fieldPage renders a declarative field table against the last samples of
// its topics.
type fieldPage struct {
	def  PageDef
	last map[string]model.Sample
}

func newFieldPage(def PageDef, b *bus.Bus) *fieldPage {
	p := &fieldPage{def: def, last: make(map[string]model.Sample)}
	for _, topic := range p.topics() {
		topic := topic
		b.Subscribe(topic, func(data model.Sample) {
			p.last[topic] = data
		})
	}
	return p
}

func (p *fieldPage) topics() []string {
	seen := map[string]bool{}
	var topics []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	add(p.def.Topic)
	for _, sec := range p.def.Sections {
		for _, row := range sec.Rows {
			add(row.Topic)
		}
	}
	for _, c := range p.def.Charts {
		add(c.Topic)
	}
	return topics
}

func (p *fieldPage) Name() string  { return p.def.Name }
func (p *fieldPage) Title() string { return p.def.Title }

func (p *fieldPage) Snapshot() *Snapshot {
	snap := &Snapshot{Page: p.def.Name, Title: p.def.Title}
	for _, sec := range p.def.Sections {
		out := Section{Name: sec.Name, Rows: make([]Row, len(sec.Rows))}
		for i, rd := range sec.Rows {
			out.Rows[i] = p.renderRow(rd)
		}
		snap.Sections = append(snap.Sections, out)
	}
	return snap
}

func (p *fieldPage) renderRow(rd RowDef) Row {
	row := Row{Label: rd.Label, Unit: rd.Unit, Kind: rd.Kind, Value: Placeholder}
	sample := p.last[rd.Topic]
	if sample == nil {
		return row
	}

	switch rd.Kind {
	case KindFlag, KindWarning, KindError:
		if on, ok := sample.Bool(rd.Field); ok {
			row.On = on
			if on {
				row.Value = "On"
			} else {
				row.Value = "Off"
			}
		}
	case KindMin, KindMax, KindAvg:
		if values, ok := sample.Floats(rd.Field); ok && len(values) > 0 {
			row.Value = fmt.Sprintf(rd.Format, aggregate(rd.Kind, values))
		}
	default:
		if rd.Index != nil {
			if values, ok := sample.Floats(rd.Field); ok && *rd.Index < len(values) {
				row.Value = fmt.Sprintf(rd.Format, values[*rd.Index])
			}
		} else if v, ok := sample.Float(rd.Field); ok {
			row.Value = fmt.Sprintf(rd.Format, v)
		}
	}
	return row
}

func aggregate(kind string, values []float64) float64 {
	switch kind {
	case KindMin:
		out := values[0]
		for _, v := range values[1:] {
			if v < out {
				out = v
			}
		}
		return out
	case KindMax:
		out := values[0]
		for _, v := range values[1:] {
			if v > out {
				out = v
			}
		}
		return out
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
