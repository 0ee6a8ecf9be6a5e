package model

import "fmt"

// DetailedState enumerates the mirror support controller states. Values
// follow the controller's event payload.
type DetailedState int

const (
	StateDisabled DetailedState = iota + 1
	StateFault
	StateOffline
	StateStandby
	StateParked
	StateRaising
	StateActive
	StateLowering
	StateParkedEngineering
	StateRaisingEngineering
	StateActiveEngineering
	StateLoweringEngineering
	StateLoweringFault
	StateProfileHardpointCorrections
)

func (s DetailedState) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateFault:
		return "Fault"
	case StateOffline:
		return "Offline"
	case StateStandby:
		return "Standby"
	case StateParked:
		return "Parked"
	case StateRaising:
		return "Raising"
	case StateActive:
		return "Active"
	case StateLowering:
		return "Lowering"
	case StateParkedEngineering:
		return "Parked Engineering"
	case StateRaisingEngineering:
		return "Raising Engineering"
	case StateActiveEngineering:
		return "Active Engineering"
	case StateLoweringEngineering:
		return "Lowering Engineering"
	case StateLoweringFault:
		return "Lowering Fault"
	case StateProfileHardpointCorrections:
		return "Profile Hardpoint Corrections"
	}
	return fmt.Sprintf("DetailedState(%d)", int(s))
}

// Engineering reports whether the controller is under manual engineering
// control.
func (s DetailedState) Engineering() bool {
	switch s {
	case StateParkedEngineering, StateRaisingEngineering,
		StateActiveEngineering, StateLoweringEngineering:
		return true
	}
	return false
}

// Mode returns the mode label shown in the status page header.
func (s DetailedState) Mode() string {
	switch s {
	case StateOffline:
		return "Offline"
	case StateParkedEngineering, StateRaisingEngineering,
		StateActiveEngineering, StateLoweringEngineering:
		return "Manual"
	case StateDisabled, StateFault, StateStandby, StateParked,
		StateRaising, StateActive, StateLowering, StateLoweringFault,
		StateProfileHardpointCorrections:
		return "Automatic"
	}
	return "Unknown"
}

// MirrorState returns the mirror position label shown in the status page
// header.
func (s DetailedState) MirrorState() string {
	switch s {
	case StateDisabled, StateOffline, StateStandby, StateParked,
		StateParkedEngineering:
		return "Parked"
	case StateFault:
		return "Fault"
	case StateRaising, StateRaisingEngineering:
		return "Raising"
	case StateActive, StateActiveEngineering,
		StateProfileHardpointCorrections:
		return "Active"
	case StateLowering, StateLoweringEngineering:
		return "Lowering"
	case StateLoweringFault:
		return "Lowering (fault)"
	}
	return "Unknown"
}
