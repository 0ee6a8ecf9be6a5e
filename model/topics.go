package model

// Bus topic names. Events carry discrete controller state, telemetry carries
// periodic samples.
const (
	TopicDetailedState   = "evt_detailedState"
	TopicRaisingLowering = "evt_raisingLoweringInfo"
	TopicForceWarning    = "evt_forceActuatorWarning"
	TopicLogMessage      = "evt_logMessage"
	TopicAppliedForces   = "tel_appliedForces"
	TopicHardpointData   = "tel_hardpointActuatorData"
	TopicCompressor      = "tel_compressor"
	TopicThermalData     = "tel_thermalData"
	TopicMixingValve     = "tel_mixingValve"
	TopicLaserTracker    = "tel_laserTracker"
)

// Controller command names.
const (
	CmdStart            = "start"
	CmdEnable           = "enable"
	CmdDisable          = "disable"
	CmdStandby          = "standby"
	CmdExitControl      = "exitControl"
	CmdRaise            = "raiseM1M3"
	CmdLower            = "lowerM1M3"
	CmdAbortRaise       = "abortRaiseM1M3"
	CmdEnterEngineering = "enterEngineering"
	CmdExitEngineering  = "exitEngineering"
	CmdPanic            = "panic"
	CmdClearFault       = "clearFault"
	CmdCompressorPower  = "compressorPower"
	CmdCompressorReset  = "compressorReset"
	CmdSetFanRPM        = "setFanRPM"
	CmdMeasureTarget    = "measureTarget"
)
