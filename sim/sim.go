// Package sim is a stand-in for the mirror support controller. It runs the
// detailed state machine, accepts the same commands the real controller
// accepts and publishes synthetic telemetry on the bus at a fixed cadence, so
// the EUI can be exercised without hardware.
package sim

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"mseui/bus"
	"mseui/config"
	"mseui/fatable"
	"mseui/model"
)

// mirrorWeight is the supported mirror weight in newtons, spread over the
// Z axis actuators when the mirror is raised.
const mirrorWeight = 171000.0

// weightStep is the supported weight percentage gained or shed per telemetry
// tick while raising or lowering.
const weightStep = 2.5

// transitions maps a command to the states it is accepted in and the state
// it moves the controller to.
var transitions = map[string]map[model.DetailedState]model.DetailedState{
	model.CmdStart: {
		model.StateStandby: model.StateDisabled,
	},
	model.CmdEnable: {
		model.StateDisabled: model.StateParked,
	},
	model.CmdDisable: {
		model.StateParked:            model.StateDisabled,
		model.StateParkedEngineering: model.StateDisabled,
	},
	model.CmdStandby: {
		model.StateDisabled: model.StateStandby,
		model.StateFault:    model.StateStandby,
	},
	model.CmdExitControl: {
		model.StateStandby: model.StateOffline,
	},
	model.CmdRaise: {
		model.StateParked:            model.StateRaising,
		model.StateParkedEngineering: model.StateRaisingEngineering,
	},
	model.CmdLower: {
		model.StateActive:            model.StateLowering,
		model.StateActiveEngineering: model.StateLoweringEngineering,
	},
	model.CmdAbortRaise: {
		model.StateRaising:            model.StateLowering,
		model.StateRaisingEngineering: model.StateLoweringEngineering,
	},
	model.CmdEnterEngineering: {
		model.StateParked: model.StateParkedEngineering,
		model.StateActive: model.StateActiveEngineering,
	},
	model.CmdExitEngineering: {
		model.StateParkedEngineering: model.StateParked,
		model.StateActiveEngineering: model.StateActive,
	},
	model.CmdClearFault: {
		model.StateFault: model.StateStandby,
	},
	model.CmdPanic: {
		model.StateDisabled:                    model.StateFault,
		model.StateParked:                      model.StateFault,
		model.StateParkedEngineering:           model.StateFault,
		model.StateRaising:                     model.StateLoweringFault,
		model.StateRaisingEngineering:          model.StateLoweringFault,
		model.StateActive:                      model.StateLoweringFault,
		model.StateActiveEngineering:           model.StateLoweringFault,
		model.StateLowering:                    model.StateLoweringFault,
		model.StateLoweringEngineering:         model.StateLoweringFault,
		model.StateProfileHardpointCorrections: model.StateLoweringFault,
	},
}

// Simulator implements bus.Remote. All mutable state is guarded by mu;
// Command runs on server goroutines while the telemetry loop runs on its
// own.
type Simulator struct {
	bus *bus.Bus
	cfg config.SimConfig

	mu     sync.Mutex
	state  model.DetailedState
	weight float64 // supported weight percentage, 0..100
	tick   uint64

	compressorOn    bool
	compressorFault bool
	runningHours    float64
	fanRPM          float64
	measureTicks    int

	quit chan struct{}
	done chan struct{}
}

func New(b *bus.Bus, cfg config.SimConfig) *Simulator {
	return &Simulator{
		bus:          b,
		cfg:          cfg,
		state:        model.StateStandby,
		compressorOn: true,
		runningHours: 12874,
		fanRPM:       1200,
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start publishes the initial state and launches the telemetry loop.
func (s *Simulator) Start() {
	s.publishState()
	go s.loop()
}

// Stop terminates the telemetry loop and waits for it to exit.
func (s *Simulator) Stop() {
	close(s.quit)
	<-s.done
}

// Command applies one controller command. Acknowledgement is delayed by the
// configured latency; a command invalid in the current state is rejected.
func (s *Simulator) Command(ctx context.Context, name string, params map[string]interface{}) error {
	if s.cfg.CommandLatency > 0 {
		t := time.NewTimer(s.cfg.CommandLatency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case model.CmdCompressorPower:
		on, _ := model.Sample(params).Bool("on")
		s.compressorOn = on
	case model.CmdCompressorReset:
		s.compressorFault = false
	case model.CmdSetFanRPM:
		rpm, ok := model.Sample(params).Float("rpm")
		if !ok || rpm < 0 {
			return fmt.Errorf("%w: setFanRPM needs a non-negative rpm", bus.ErrRejected)
		}
		s.fanRPM = rpm
	case model.CmdMeasureTarget:
		s.measureTicks = 5
	default:
		valid, ok := transitions[name]
		if !ok {
			return fmt.Errorf("%w %q", bus.ErrUnknownCommand, name)
		}
		next, ok := valid[s.state]
		if !ok {
			return fmt.Errorf("%w: %s in state %s", bus.ErrRejected, name, s.state)
		}
		s.setState(next)
	}

	s.log("info", fmt.Sprintf("command %s accepted", name))
	return nil
}

// setState must be called with mu held.
func (s *Simulator) setState(next model.DetailedState) {
	s.state = next
	switch next {
	case model.StateParked, model.StateParkedEngineering,
		model.StateDisabled, model.StateStandby, model.StateFault:
		s.weight = 0
	case model.StateActive, model.StateActiveEngineering:
		s.weight = 100
	}
	s.publishState()
}

// publishState must be called with mu held (or before the loop starts).
func (s *Simulator) publishState() {
	s.bus.Publish(model.TopicDetailedState, model.Sample{
		"detailedState": float64(s.state),
		"timestamp":     now(),
	})
}

func (s *Simulator) log(level, message string) {
	s.bus.Publish(model.TopicLogMessage, model.Sample{
		"level":     level,
		"message":   message,
		"timestamp": now(),
	})
}

func (s *Simulator) loop() {
	defer close(s.done)
	ticker := time.NewTicker(s.cfg.TelemetryInterval)
	defer ticker.Stop()
	log.WithField("interval", s.cfg.TelemetryInterval).Info("simulator telemetry loop started")
	for {
		select {
		case <-ticker.C:
			s.advance()
		case <-s.quit:
			return
		}
	}
}

// advance runs one telemetry tick: step the raise/lower progress, then
// publish every telemetry topic.
func (s *Simulator) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick++
	s.step()

	ts := now()
	phase := float64(s.tick)

	s.publishForces(ts, phase)
	s.publishHardpoints(ts, phase)
	s.publishCompressor(ts, phase)
	s.publishThermal(ts, phase)
	s.publishLaserTracker(ts, phase)

	switch s.state {
	case model.StateRaising, model.StateRaisingEngineering,
		model.StateLowering, model.StateLoweringEngineering,
		model.StateLoweringFault:
		s.bus.Publish(model.TopicRaisingLowering, model.Sample{
			"weightSupportedPercent": s.weight,
			"timestamp":              ts,
		})
	}
}

// step moves raise and lower progress forward and fires the completion
// transitions. Must be called with mu held.
func (s *Simulator) step() {
	switch s.state {
	case model.StateRaising:
		s.weight = math.Min(100, s.weight+weightStep)
		if s.weight >= 100 {
			s.setState(model.StateActive)
		}
	case model.StateRaisingEngineering:
		s.weight = math.Min(100, s.weight+weightStep)
		if s.weight >= 100 {
			s.setState(model.StateActiveEngineering)
		}
	case model.StateLowering:
		s.weight = math.Max(0, s.weight-weightStep)
		if s.weight <= 0 {
			s.setState(model.StateParked)
		}
	case model.StateLoweringEngineering:
		s.weight = math.Max(0, s.weight-weightStep)
		if s.weight <= 0 {
			s.setState(model.StateParkedEngineering)
		}
	case model.StateLoweringFault:
		s.weight = math.Max(0, s.weight-2*weightStep)
		if s.weight <= 0 {
			s.setState(model.StateFault)
		}
	}
	if s.measureTicks > 0 {
		s.measureTicks--
	}
}

func (s *Simulator) publishForces(ts, phase float64) {
	share := s.weight / 100 * mirrorWeight / float64(fatable.Count(fatable.Z))

	z := make([]float64, fatable.Count(fatable.Z))
	x := make([]float64, fatable.Count(fatable.X))
	y := make([]float64, fatable.Count(fatable.Y))
	sec := make([]float64, fatable.Count(fatable.Secondary))
	var fx, fy, fz float64
	for i := range z {
		z[i] = share + 5*math.Sin(phase/10+float64(i))
		fz += z[i]
	}
	for i := range x {
		x[i] = 2 * math.Sin(phase/15+float64(i))
		fx += x[i]
	}
	for i := range y {
		y[i] = 3 * math.Cos(phase/15+float64(i))
		fy += y[i]
	}
	for i := range sec {
		sec[i] = share/math.Sqrt2 + 2*math.Sin(phase/12+float64(i))
	}

	s.bus.Publish(model.TopicAppliedForces, model.Sample{
		"timestamp":       ts,
		"xForces":         x,
		"yForces":         y,
		"zForces":         z,
		"secondaryForces": sec,
		"fx":              fx,
		"fy":              fy,
		"fz":              fz,
		"forceMagnitude":  math.Sqrt(fx*fx + fy*fy + fz*fz),
	})

	minor := make([]bool, fatable.Count(fatable.Z))
	if s.state == model.StateFault || s.state == model.StateLoweringFault {
		minor[101%len(minor)] = true
	}
	s.bus.Publish(model.TopicForceWarning, model.Sample{
		"timestamp":  ts,
		"minorFault": minor,
	})
}

func (s *Simulator) publishHardpoints(ts, phase float64) {
	force := make([]float64, 6)
	disp := make([]float64, 6)
	var mag float64
	for i := range force {
		force[i] = 120 * math.Sin(phase/8+float64(i)*math.Pi/3)
		disp[i] = 15 * math.Cos(phase/20+float64(i)*math.Pi/3)
		mag += force[i] * force[i]
	}
	s.bus.Publish(model.TopicHardpointData, model.Sample{
		"timestamp":      ts,
		"measuredForce":  force,
		"displacement":   disp,
		"forceMagnitude": math.Sqrt(mag),
	})
}

func (s *Simulator) publishCompressor(ts, phase float64) {
	sample := model.Sample{
		"timestamp":                    ts,
		"powerOn":                      s.compressorOn,
		"startInhibit":                 false,
		"serviceDue":                   false,
		"dischargeOverPressureWarning": false,
		"linePressureHighWarning":      false,
		"powerSupplyFailure":           s.compressorFault,
		"emergencyStopActivated":       false,
		"highMotorTemperature":         false,
		"coolingFault":                 false,
		"oilPressureLow":               false,
	}
	if s.compressorOn {
		s.runningHours += s.cfg.TelemetryInterval.Hours()
		sample["compressorFrequency"] = 47.5 + 0.5*math.Sin(phase/6)
		sample["motorCurrent"] = 36.2 + 1.5*math.Sin(phase/9)
		sample["dischargePressure"] = 7.2 + 0.05*math.Sin(phase/7)
		sample["dischargeTemperature"] = 64.0 + 2*math.Sin(phase/30)
		sample["linePressure"] = 6.9 + 0.04*math.Cos(phase/7)
		sample["heatsinkTemperature"] = 41.0 + math.Sin(phase/25)
	} else {
		sample["compressorFrequency"] = 0.0
		sample["motorCurrent"] = 0.0
		sample["dischargePressure"] = 0.0
		sample["dischargeTemperature"] = 21.0
		sample["linePressure"] = 6.9
		sample["heatsinkTemperature"] = 21.0
	}
	sample["runningHours"] = s.runningHours
	s.bus.Publish(model.TopicCompressor, sample)
}

func (s *Simulator) publishThermal(ts, phase float64) {
	const fcus = 96
	temps := make([]float64, fcus)
	rpm := make([]float64, fcus)
	for i := range temps {
		temps[i] = 12.5 + 0.8*math.Sin(phase/40+float64(i)/10)
		rpm[i] = s.fanRPM + 20*math.Sin(phase/5+float64(i))
	}
	s.bus.Publish(model.TopicThermalData, model.Sample{
		"timestamp":              ts,
		"absoluteTemperature":    temps,
		"fanRPM":                 rpm,
		"aboveMirrorTemperature": 12.1 + 0.3*math.Sin(phase/50),
	})
	s.bus.Publish(model.TopicMixingValve, model.Sample{
		"timestamp":         ts,
		"valvePosition":     35.0 + 5*math.Sin(phase/45),
		"supplyTemperature": 11.8 + 0.2*math.Sin(phase/35),
		"returnTemperature": 12.9 + 0.2*math.Cos(phase/35),
	})
}

func (s *Simulator) publishLaserTracker(ts, phase float64) {
	s.bus.Publish(model.TopicLaserTracker, model.Sample{
		"timestamp":    ts,
		"dX":           40 * math.Sin(phase/60),
		"dY":           35 * math.Cos(phase/60),
		"dZ":           12 * math.Sin(phase/80),
		"dRX":          0.8 * math.Sin(phase/70),
		"dRY":          0.7 * math.Cos(phase/70),
		"dRZ":          0.2 * math.Sin(phase/90),
		"measuring":    s.measureTicks > 0,
		"twoFaceError": false,
	})
}

func now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
