package pages

import (
	"fmt"

	"mseui/bus"
	"mseui/model"
)

// statusPage is the application status header: detailed state, mode and
// mirror position, raising/lowering progress and the commands valid in the
// current state.
type statusPage struct {
	state     model.DetailedState
	haveState bool
	// weight supported percentage, valid while raising or lowering
	weightPercent float64
	haveWeight    bool
}

func newStatusPage(b *bus.Bus) *statusPage {
	p := &statusPage{}
	b.Subscribe(model.TopicDetailedState, func(data model.Sample) {
		if v, ok := data.Float("detailedState"); ok {
			p.state = model.DetailedState(int(v))
			p.haveState = true
		}
	})
	b.Subscribe(model.TopicRaisingLowering, func(data model.Sample) {
		if v, ok := data.Float("weightSupportedPercent"); ok {
			p.weightPercent = v
			p.haveWeight = true
		}
	})
	return p
}

func (p *statusPage) Name() string  { return "status" }
func (p *statusPage) Title() string { return "Application Status" }

func (p *statusPage) Snapshot() *Snapshot {
	snap := &Snapshot{Page: p.Name(), Title: p.Title()}
	if !p.haveState {
		snap.Mode = "Unknown"
		snap.Mirror = "Unknown"
		snap.Sections = []Section{{Name: "Status", Rows: []Row{
			{Label: "State", Value: Placeholder, Kind: KindData},
		}}}
		return snap
	}

	snap.Mode = p.state.Mode()
	snap.Mirror = p.mirrorState()
	snap.Commands = EnabledCommands(p.state)
	snap.Sections = []Section{{Name: "Status", Rows: []Row{
		{Label: "State", Value: p.state.String(), Kind: KindData},
		{Label: "Mode", Value: snap.Mode, Kind: KindData},
		{Label: "Mirror State", Value: snap.Mirror, Kind: KindData},
	}}}
	return snap
}

// mirrorState decorates the raising/lowering label with the supported weight
// percentage when known.
func (p *statusPage) mirrorState() string {
	base := p.state.MirrorState()
	if !p.haveWeight {
		return base
	}
	switch p.state {
	case model.StateRaising, model.StateRaisingEngineering:
		if p.weightPercent >= 100 {
			return "Raising - positioning hardpoints"
		}
		return fmt.Sprintf("Raising (%.02f%%)", p.weightPercent)
	case model.StateLowering, model.StateLoweringEngineering:
		if p.weightPercent <= 0 {
			return "Lowering - positioning hardpoints"
		}
		return fmt.Sprintf("Lowering (%.02f%%)", p.weightPercent)
	case model.StateLoweringFault:
		return fmt.Sprintf("Lowering (fault, %.02f%%)", p.weightPercent)
	}
	return base
}
