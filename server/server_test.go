package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mseui/audit"
	"mseui/auth"
	"mseui/bus"
	"mseui/model"
	"mseui/pages"
)

type fakeRemote struct {
	mu    sync.Mutex
	err   error
	calls []string
}

func (f *fakeRemote) Command(ctx context.Context, name string, params map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeRemote) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeRemote) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fixture struct {
	bus    *bus.Bus
	remote *fakeRemote
	conn   *websocket.Conn
	token  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	b := bus.New()
	t.Cleanup(b.Close)

	set, err := pages.New(b, 50)
	require.NoError(t, err)

	verifier, err := auth.NewVerifier("test-secret")
	require.NoError(t, err)
	token, err := verifier.Sign("operator", nil)
	require.NoError(t, err)

	auditLog, err := audit.NewLogger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { auditLog.Close() })

	remote := &fakeRemote{}
	srv := NewServer(Options{
		PushInterval:   20 * time.Millisecond,
		CommandTimeout: time.Second,
	}, b, set, remote, verifier, auditLog)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &fixture{bus: b, remote: remote, conn: conn, token: token}
}

func (f *fixture) send(t *testing.T, msgType string, content interface{}) {
	t.Helper()
	data, err := json.Marshal(content)
	require.NoError(t, err)
	require.NoError(t, f.conn.WriteJSON(model.Msg{Type: msgType, Content: data}))
}

// waitFor reads messages until one of the wanted type arrives, skipping
// periodic pushes of other types.
func (f *fixture) waitFor(t *testing.T, msgType string) model.Msg {
	t.Helper()
	require.NoError(t, f.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var msg model.Msg
		require.NoError(t, f.conn.ReadJSON(&msg))
		if msg.Type == msgType {
			return msg
		}
	}
}

func (f *fixture) authenticate(t *testing.T) {
	t.Helper()
	f.send(t, model.MsgAuth, map[string]string{"token": f.token})
	f.waitFor(t, model.MsgAuthOK)
}

func TestAuth(t *testing.T) {
	f := newFixture(t)

	f.send(t, model.MsgAuth, map[string]string{"token": "bogus"})
	f.waitFor(t, model.MsgAuthError)

	f.send(t, model.MsgAuth, map[string]string{"token": f.token})
	msg := f.waitFor(t, model.MsgAuthOK)

	var content struct {
		User  string   `json:"user"`
		Pages []string `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(msg.Content, &content))
	assert.Equal(t, "operator", content.User)
	assert.Contains(t, content.Pages, "status")
	assert.Contains(t, content.Pages, "forceactuator")
	assert.Contains(t, content.Pages, "compressor")
}

func TestRequiresAuth(t *testing.T) {
	f := newFixture(t)

	f.send(t, model.MsgPage, map[string]string{"name": "status"})
	msg := f.waitFor(t, model.MsgError)

	var content struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(msg.Content, &content))
	assert.Equal(t, "not authenticated", content.Error)
}

func TestUnknownPage(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.send(t, model.MsgPage, map[string]string{"name": "nosuchpage"})
	f.waitFor(t, model.MsgError)
}

func TestSnapshotPush(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.bus.Publish(model.TopicCompressor, model.Sample{
		"timestamp":           100.0,
		"compressorFrequency": 47.5,
		"powerOn":             true,
		"dischargePressure":   7.2,
		"linePressure":        6.9,
	})
	f.send(t, model.MsgPage, map[string]string{"name": "compressor"})
	msg := f.waitFor(t, model.MsgSnapshot)
	assert.Equal(t, "compressor", msg.Topic)

	var snap pages.Snapshot
	require.NoError(t, json.Unmarshal(msg.Content, &snap))
	assert.Equal(t, "compressor", snap.Page)
	require.NotEmpty(t, snap.Sections)
	assert.Equal(t, "Compressor frequency", snap.Sections[0].Rows[0].Label)
	assert.Equal(t, "47.5", snap.Sections[0].Rows[0].Value)
}

func TestChartFramePush(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	for i := 0; i < 5; i++ {
		f.bus.Publish(model.TopicCompressor, model.Sample{
			"timestamp":         100.0 + float64(i),
			"dischargePressure": 7.2,
			"linePressure":      6.9,
		})
	}
	f.send(t, model.MsgPage, map[string]string{"name": "compressor"})
	msg := f.waitFor(t, model.MsgChartFrame)

	var frame pages.Frame
	require.NoError(t, json.Unmarshal(msg.Content, &frame))
	assert.Equal(t, "pressure", frame.Name)
	assert.Equal(t, []string{"timestamp", "dischargePressure", "linePressure"}, frame.Columns)
	assert.Len(t, frame.Rows, 5)
	assert.Equal(t, 100.0, frame.Start)
	assert.Equal(t, 104.0, frame.End)
}

func TestCommandAck(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.send(t, model.MsgCommand, map[string]interface{}{"name": model.CmdStart})
	msg := f.waitFor(t, model.MsgCommandAck)

	var content struct {
		Name        string `json:"name"`
		Correlation string `json:"correlation"`
	}
	require.NoError(t, json.Unmarshal(msg.Content, &content))
	assert.Equal(t, model.CmdStart, content.Name)
	assert.NotEmpty(t, content.Correlation)
	assert.Equal(t, []string{model.CmdStart}, f.remote.called())
}

func TestCommandRejected(t *testing.T) {
	f := newFixture(t)
	f.remote.setErr(bus.ErrRejected)
	f.authenticate(t)

	f.send(t, model.MsgCommand, map[string]interface{}{"name": model.CmdStart})
	msg := f.waitFor(t, model.MsgCommandError)

	var content struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(msg.Content, &content))
	assert.Contains(t, content.Error, "rejected")
}

func TestCommandStateGuard(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.bus.Publish(model.TopicDetailedState, model.Sample{
		"detailedState": float64(model.StateStandby),
	})
	// Last() is set on the dispatch loop, wait for it
	f.bus.Sync(func() {})

	f.send(t, model.MsgCommand, map[string]interface{}{"name": model.CmdRaise})
	msg := f.waitFor(t, model.MsgCommandError)

	var content struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(msg.Content, &content))
	assert.Contains(t, content.Error, "not valid in state")
	assert.Empty(t, f.remote.called())
}

func TestForceActuatorSelection(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	z := make([]float64, 156)
	for i := range z {
		z[i] = float64(i)
	}
	f.bus.Publish(model.TopicAppliedForces, model.Sample{
		"timestamp":      100.0,
		"zForces":        z,
		"forceMagnitude": 1200.0,
	})
	f.send(t, model.MsgPage, map[string]interface{}{
		"name": "forceactuator", "axis": "z", "selected": 227,
	})
	msg := f.waitFor(t, model.MsgSnapshot)

	var snap pages.Snapshot
	require.NoError(t, json.Unmarshal(msg.Content, &snap))
	require.NotNil(t, snap.Mirror2D)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, 227, snap.Selected.ID)
}
