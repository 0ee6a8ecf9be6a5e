package pages

import "mseui/model"

// commandOrder fixes the order commands are offered to clients in.
var commandOrder = []string{
	model.CmdStart,
	model.CmdEnable,
	model.CmdRaise,
	model.CmdAbortRaise,
	model.CmdLower,
	model.CmdEnterEngineering,
	model.CmdExitEngineering,
	model.CmdDisable,
	model.CmdStandby,
	model.CmdExitControl,
	model.CmdClearFault,
	model.CmdPanic,
}

// commandStates lists the controller states each command is valid in - the
// button enablement table of the control widget.
var commandStates = map[string][]model.DetailedState{
	model.CmdStart:       {model.StateStandby},
	model.CmdEnable:      {model.StateDisabled},
	model.CmdDisable:     {model.StateParked, model.StateParkedEngineering},
	model.CmdStandby:     {model.StateDisabled, model.StateFault},
	model.CmdExitControl: {model.StateStandby},
	model.CmdRaise:       {model.StateParked, model.StateParkedEngineering},
	model.CmdLower:       {model.StateActive, model.StateActiveEngineering},
	model.CmdAbortRaise:  {model.StateRaising, model.StateRaisingEngineering},
	model.CmdEnterEngineering: {
		model.StateParked, model.StateActive,
	},
	model.CmdExitEngineering: {
		model.StateParkedEngineering, model.StateActiveEngineering,
	},
	model.CmdClearFault: {model.StateFault},
	model.CmdPanic: {
		model.StateParked, model.StateRaising, model.StateActive,
		model.StateLowering, model.StateParkedEngineering,
		model.StateRaisingEngineering, model.StateActiveEngineering,
		model.StateLoweringEngineering, model.StateProfileHardpointCorrections,
	},
}

// EnabledCommands returns the commands valid in the given state, in display
// order.
func EnabledCommands(state model.DetailedState) []string {
	var out []string
	for _, cmd := range commandOrder {
		for _, s := range commandStates[cmd] {
			if s == state {
				out = append(out, cmd)
				break
			}
		}
	}
	return out
}

// CommandEnabled reports whether a command may be issued in the given state.
// Commands without an entry in the table are not state guarded.
func CommandEnabled(cmd string, state model.DetailedState) bool {
	states, ok := commandStates[cmd]
	if !ok {
		return true
	}
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}
