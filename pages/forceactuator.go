package pages

import (
	"fmt"

	"mseui/bus"
	"mseui/fatable"
	"mseui/mirror"
	"mseui/model"
)

// forceActuatorPage renders the mirror grid for one value axis of the
// applied forces telemetry, with an optional selected actuator detail.
type forceActuatorPage struct {
	applied  model.Sample
	warnings []bool

	axis     fatable.Axis
	selected int // actuator ID, 0 for none
}

func newForceActuatorPage(b *bus.Bus) *forceActuatorPage {
	p := &forceActuatorPage{axis: fatable.Z}
	b.Subscribe(model.TopicAppliedForces, func(data model.Sample) {
		p.applied = data
	})
	b.Subscribe(model.TopicForceWarning, func(data model.Sample) {
		if flags, ok := data.Bools("minorFault"); ok {
			p.warnings = flags
		}
	})
	return p
}

func (p *forceActuatorPage) Name() string  { return "forceactuator" }
func (p *forceActuatorPage) Title() string { return "Force Actuators" }

// SetAxis selects the displayed value axis. Must run on the dispatch loop.
func (p *forceActuatorPage) SetAxis(name string) error {
	switch name {
	case "x", "X":
		p.axis = fatable.X
	case "y", "Y":
		p.axis = fatable.Y
	case "z", "Z":
		p.axis = fatable.Z
	case "s", "secondary":
		p.axis = fatable.Secondary
	default:
		return fmt.Errorf("unknown axis %q", name)
	}
	return nil
}

// SetSelected picks the actuator shown in the detail block, 0 clears the
// selection. Must run on the dispatch loop.
func (p *forceActuatorPage) SetSelected(id int) error {
	if id != 0 {
		if _, err := fatable.FindID(id); err != nil {
			return err
		}
	}
	p.selected = id
	return nil
}

func (p *forceActuatorPage) axisField() string {
	switch p.axis {
	case fatable.X:
		return "xForces"
	case fatable.Y:
		return "yForces"
	case fatable.Secondary:
		return "secondaryForces"
	}
	return "zForces"
}

func (p *forceActuatorPage) Snapshot() *Snapshot {
	snap := &Snapshot{Page: p.Name(), Title: p.Title()}
	if p.applied == nil {
		return snap
	}
	values, ok := p.applied.Floats(p.axisField())
	if !ok || len(values) != fatable.Count(p.axis) {
		return snap
	}

	view, err := mirror.Build(p.axis, values, p.warnings)
	if err != nil {
		return snap
	}
	snap.Mirror2D = view

	if p.selected != 0 {
		if sel, err := mirror.Select(p.axis, values, p.selected, "%.2f"); err == nil {
			snap.Selected = sel
		}
	}

	rows := []Row{
		{Label: "Minimum", Value: fmt.Sprintf("%.2f", view.Min), Unit: "N", Kind: KindData},
		{Label: "Maximum", Value: fmt.Sprintf("%.2f", view.Max), Unit: "N", Kind: KindData},
	}
	if fm, ok := p.applied.Float("forceMagnitude"); ok {
		rows = append(rows, Row{
			Label: "Total force magnitude",
			Value: fmt.Sprintf("%.2f", fm), Unit: "N", Kind: KindData,
		})
	}
	snap.Sections = []Section{{Name: p.axis.String() + " Forces", Rows: rows}}
	return snap
}
