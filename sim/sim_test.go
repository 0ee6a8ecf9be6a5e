package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mseui/bus"
	"mseui/config"
	"mseui/model"
)

// watch subscribes a topic and feeds samples to a channel without blocking
// the dispatch loop.
func watch(b *bus.Bus, topic string) <-chan model.Sample {
	ch := make(chan model.Sample, 64)
	b.Subscribe(topic, func(data model.Sample) {
		select {
		case ch <- data:
		default:
		}
	})
	return ch
}

func waitState(t *testing.T, ch <-chan model.Sample, want model.DetailedState) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case data := <-ch:
			v, ok := data.Float("detailedState")
			require.True(t, ok)
			if model.DetailedState(int(v)) == want {
				return
			}
		case <-deadline:
			t.Fatalf("state %s never published", want)
		}
	}
}

func TestTransitions(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	states := watch(b, model.TopicDetailedState)

	s := New(b, config.SimConfig{TelemetryInterval: time.Hour})
	s.Start()
	defer s.Stop()
	waitState(t, states, model.StateStandby)

	ctx := context.Background()
	steps := []struct {
		cmd  string
		want model.DetailedState
	}{
		{model.CmdStart, model.StateDisabled},
		{model.CmdEnable, model.StateParked},
		{model.CmdEnterEngineering, model.StateParkedEngineering},
		{model.CmdExitEngineering, model.StateParked},
		{model.CmdDisable, model.StateDisabled},
		{model.CmdStandby, model.StateStandby},
	}
	for _, step := range steps {
		require.NoError(t, s.Command(ctx, step.cmd, nil), step.cmd)
		waitState(t, states, step.want)
	}
}

func TestRejectedAndUnknown(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	s := New(b, config.SimConfig{TelemetryInterval: time.Hour})
	s.Start()
	defer s.Stop()

	ctx := context.Background()
	err := s.Command(ctx, model.CmdRaise, nil)
	assert.ErrorIs(t, err, bus.ErrRejected)

	err = s.Command(ctx, "selfDestruct", nil)
	assert.ErrorIs(t, err, bus.ErrUnknownCommand)

	err = s.Command(ctx, model.CmdSetFanRPM, map[string]interface{}{"rpm": -5.0})
	assert.ErrorIs(t, err, bus.ErrRejected)
}

func TestRaiseReachesActive(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	states := watch(b, model.TopicDetailedState)
	progress := watch(b, model.TopicRaisingLowering)

	s := New(b, config.SimConfig{TelemetryInterval: 2 * time.Millisecond})
	s.Start()
	defer s.Stop()

	ctx := context.Background()
	require.NoError(t, s.Command(ctx, model.CmdStart, nil))
	require.NoError(t, s.Command(ctx, model.CmdEnable, nil))
	require.NoError(t, s.Command(ctx, model.CmdRaise, nil))
	waitState(t, states, model.StateActive)

	select {
	case data := <-progress:
		pct, ok := data.Float("weightSupportedPercent")
		require.True(t, ok)
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)
	case <-time.After(time.Second):
		t.Fatal("no raising progress published")
	}

	require.NoError(t, s.Command(ctx, model.CmdLower, nil))
	waitState(t, states, model.StateParked)
}

func TestTelemetryShapes(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	forces := watch(b, model.TopicAppliedForces)
	hardpoints := watch(b, model.TopicHardpointData)
	thermal := watch(b, model.TopicThermalData)
	compressor := watch(b, model.TopicCompressor)

	s := New(b, config.SimConfig{TelemetryInterval: 2 * time.Millisecond})
	s.Start()
	defer s.Stop()

	recv := func(ch <-chan model.Sample) model.Sample {
		select {
		case data := <-ch:
			return data
		case <-time.After(time.Second):
			t.Fatal("no telemetry published")
			return nil
		}
	}

	applied := recv(forces)
	for field, want := range map[string]int{
		"xForces": 12, "yForces": 100, "zForces": 156, "secondaryForces": 112,
	} {
		arr, ok := applied.Floats(field)
		require.True(t, ok, field)
		assert.Len(t, arr, want, field)
	}
	_, ok := applied.Float("forceMagnitude")
	assert.True(t, ok)
	_, ok = applied.Float("timestamp")
	assert.True(t, ok)

	hp := recv(hardpoints)
	force, ok := hp.Floats("measuredForce")
	require.True(t, ok)
	assert.Len(t, force, 6)
	disp, ok := hp.Floats("displacement")
	require.True(t, ok)
	assert.Len(t, disp, 6)

	th := recv(thermal)
	temps, ok := th.Floats("absoluteTemperature")
	require.True(t, ok)
	assert.Len(t, temps, 96)
	rpm, ok := th.Floats("fanRPM")
	require.True(t, ok)
	assert.Len(t, rpm, 96)

	comp := recv(compressor)
	on, ok := comp.Bool("powerOn")
	require.True(t, ok)
	assert.True(t, on)
	freq, ok := comp.Float("compressorFrequency")
	require.True(t, ok)
	assert.Greater(t, freq, 40.0)
}

func TestAuxiliaryCommands(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	compressor := watch(b, model.TopicCompressor)
	thermal := watch(b, model.TopicThermalData)
	tracker := watch(b, model.TopicLaserTracker)

	s := New(b, config.SimConfig{TelemetryInterval: 2 * time.Millisecond})
	s.Start()
	defer s.Stop()

	ctx := context.Background()
	require.NoError(t, s.Command(ctx, model.CmdCompressorPower, map[string]interface{}{"on": false}))
	require.NoError(t, s.Command(ctx, model.CmdSetFanRPM, map[string]interface{}{"rpm": 900.0}))
	require.NoError(t, s.Command(ctx, model.CmdMeasureTarget, nil))

	// skip samples published before the commands took effect
	deadline := time.After(2 * time.Second)
	for {
		select {
		case data := <-compressor:
			if on, ok := data.Bool("powerOn"); ok && !on {
				freq, ok := data.Float("compressorFrequency")
				require.True(t, ok)
				assert.Zero(t, freq)
				goto fans
			}
		case <-deadline:
			t.Fatal("compressor never reported power off")
		}
	}

fans:
	for {
		select {
		case data := <-thermal:
			if rpm, ok := data.Floats("fanRPM"); ok && len(rpm) > 0 &&
				rpm[0] > 850 && rpm[0] < 950 {
				goto measure
			}
		case <-deadline:
			t.Fatal("fan speed never followed the command")
		}
	}

measure:
	for {
		select {
		case data := <-tracker:
			if measuring, ok := data.Bool("measuring"); ok && measuring {
				return
			}
		case <-deadline:
			t.Fatal("laser tracker never started measuring")
		}
	}
}

func TestCommandLatencyTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	s := New(b, config.SimConfig{
		TelemetryInterval: time.Hour,
		CommandLatency:    200 * time.Millisecond,
	})
	s.Start()
	defer s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := s.Command(ctx, model.CmdStart, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPanicLowersToFault(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := bus.New()
	defer b.Close()
	states := watch(b, model.TopicDetailedState)

	s := New(b, config.SimConfig{TelemetryInterval: 2 * time.Millisecond})
	s.Start()
	defer s.Stop()

	ctx := context.Background()
	require.NoError(t, s.Command(ctx, model.CmdStart, nil))
	require.NoError(t, s.Command(ctx, model.CmdEnable, nil))
	require.NoError(t, s.Command(ctx, model.CmdRaise, nil))
	waitState(t, states, model.StateRaising)

	require.NoError(t, s.Command(ctx, model.CmdPanic, nil))
	waitState(t, states, model.StateLoweringFault)
	waitState(t, states, model.StateFault)

	require.NoError(t, s.Command(ctx, model.CmdClearFault, nil))
	waitState(t, states, model.StateStandby)
}
