package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"mseui/model"
	"mseui/pages"
)

// axisPage is implemented by pages with a selectable value axis and
// actuator, currently the force actuator page.
type axisPage interface {
	SetAxis(name string) error
	SetSelected(id int) error
}

// pageSelect switches the client to a page, optionally adjusting the axis
// or selected actuator of the force actuator page.
type pageSelect struct {
	Name     string `json:"name"`
	Axis     string `json:"axis,omitempty"`
	Selected int    `json:"selected,omitempty"`
}

// chartCtl resizes the retention of one chart of the current page.
type chartCtl struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type commandReq struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params,omitempty"`
}

type authReq struct {
	Token string `json:"token"`
}

// hub serves one websocket client. handleRequest consumes client messages,
// handleResponse owns the connection writes and the periodic snapshot and
// chart pushes. Page and chart state lives in handleResponse only.
type hub struct {
	srv  *Server
	conn *websocket.Conn

	// request
	msg chan model.Msg
	// response
	out   chan model.Msg
	page  chan pageSelect
	chart chan chartCtl

	quit chan struct{}
	done chan struct{}

	// handleRequest only
	user string
}

func newHub(srv *Server, conn *websocket.Conn) *hub {
	return &hub{
		srv:   srv,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		out:   make(chan model.Msg, 10),
		page:  make(chan pageSelect, 10),
		chart: make(chan chartCtl, 10),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (h *hub) close() {
	close(h.quit)
}

func (h *hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.dispatch(msg)
		case <-h.quit:
			return
		}
	}
}

func (h *hub) dispatch(msg model.Msg) {
	if msg.Type == model.MsgAuth {
		h.handleAuth(msg)
		return
	}
	if h.user == "" {
		h.replyError("not authenticated")
		return
	}

	switch msg.Type {
	case model.MsgPage:
		var sel pageSelect
		if err := json.Unmarshal(msg.Content, &sel); err != nil {
			h.replyError("malformed page request")
			return
		}
		if _, err := h.srv.pages.Page(sel.Name); err != nil {
			h.replyError(err.Error())
			return
		}
		select {
		case h.page <- sel:
		case <-h.quit:
		}
	case model.MsgChart:
		var ctl chartCtl
		if err := json.Unmarshal(msg.Content, &ctl); err != nil || ctl.Capacity < 2 {
			h.replyError("malformed chart request")
			return
		}
		select {
		case h.chart <- ctl:
		case <-h.quit:
		}
	case model.MsgCommand:
		var req commandReq
		if err := json.Unmarshal(msg.Content, &req); err != nil || req.Name == "" {
			h.replyError("malformed command request")
			return
		}
		go h.runCommand(h.user, req)
	default:
		log.WithField("type", msg.Type).Warn("unknown client message type")
		h.replyError("unknown message type " + msg.Type)
	}
}

func (h *hub) handleAuth(msg model.Msg) {
	var req authReq
	if err := json.Unmarshal(msg.Content, &req); err != nil {
		h.reply(model.Msg{Type: model.MsgAuthError, Content: raw(map[string]string{
			"error": "malformed auth request",
		})})
		return
	}
	user, err := h.srv.verifier.Verify(req.Token)
	if err != nil {
		log.WithError(err).Warn("websocket auth failed")
		h.reply(model.Msg{Type: model.MsgAuthError, Content: raw(map[string]string{
			"error": "invalid token",
		})})
		return
	}
	h.user = user
	h.reply(model.Msg{Type: model.MsgAuthOK, Content: raw(map[string]interface{}{
		"user":  user,
		"pages": h.srv.pages.Names(),
	})})
}

// runCommand forwards one command to the controller, bounded by the command
// timeout, and reports the outcome to both the client and the audit log.
func (h *hub) runCommand(user string, req commandReq) {
	correlation := uuid.NewString()

	if state, ok := h.currentState(); ok && !pages.CommandEnabled(req.Name, state) {
		reason := "command not valid in state " + state.String()
		h.commandError(req.Name, correlation, reason)
		h.srv.audit.Record(user, correlation, req.Name, req.Params,
			errors.New(reason), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.srv.commandTimeout)
	defer cancel()

	started := time.Now()
	err := h.srv.remote.Command(ctx, req.Name, req.Params)
	latency := time.Since(started)
	h.srv.audit.Record(user, correlation, req.Name, req.Params, err, latency)

	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"command":     req.Name,
			"correlation": correlation,
		}).Warn("command failed")
		h.commandError(req.Name, correlation, err.Error())
		return
	}
	h.reply(model.Msg{Type: model.MsgCommandAck, Content: raw(map[string]interface{}{
		"name":        req.Name,
		"correlation": correlation,
		"latencyMs":   latency.Milliseconds(),
	})})
}

func (h *hub) currentState() (model.DetailedState, bool) {
	sample := h.srv.bus.Last(model.TopicDetailedState)
	if sample == nil {
		return 0, false
	}
	v, ok := sample.Float("detailedState")
	if !ok {
		return 0, false
	}
	return model.DetailedState(int(v)), true
}

func (h *hub) commandError(name, correlation, reason string) {
	h.reply(model.Msg{Type: model.MsgCommandError, Content: raw(map[string]string{
		"name":        name,
		"correlation": correlation,
		"error":       reason,
	})})
}

func (h *hub) replyError(reason string) {
	h.reply(model.Msg{Type: model.MsgError, Content: raw(map[string]string{
		"error": reason,
	})})
}

func (h *hub) reply(msg model.Msg) {
	select {
	case h.out <- msg:
	case <-h.quit:
	}
}

// handleResponse owns all writes to the connection. It pushes queued
// replies immediately and the current page snapshot plus incremental chart
// frames at the push interval.
func (h *hub) handleResponse() {
	defer close(h.done)
	ticker := time.NewTicker(h.srv.pushInterval)
	defer ticker.Stop()

	var current pages.Page
	since := make(map[string]float64)

	for {
		select {
		case reply := <-h.out:
			h.write(reply)
		case sel := <-h.page:
			page, err := h.srv.pages.Page(sel.Name)
			if err != nil {
				continue
			}
			current = page
			since = make(map[string]float64)
			h.pushPage(current, since, sel)
		case ctl := <-h.chart:
			if current == nil {
				continue
			}
			for _, c := range h.srv.pages.Charts(current.Name()) {
				if c.Name() == ctl.Name {
					c := c
					h.srv.bus.Sync(func() { c.Resize(ctl.Capacity) })
				}
			}
		case <-ticker.C:
			if current != nil {
				h.pushPage(current, since, pageSelect{})
			}
		case <-h.quit:
			return
		}
	}
}

// pushPage renders the page snapshot and pending chart rows on the dispatch
// loop and writes them out.
func (h *hub) pushPage(page pages.Page, since map[string]float64, sel pageSelect) {
	var snap *pages.Snapshot
	var frames []*pages.Frame

	h.srv.bus.Sync(func() {
		if ap, ok := page.(axisPage); ok {
			if sel.Axis != "" {
				if err := ap.SetAxis(sel.Axis); err != nil {
					log.WithError(err).Warn("axis selection rejected")
				}
			}
			if sel.Selected != 0 {
				if err := ap.SetSelected(sel.Selected); err != nil {
					log.WithError(err).Warn("actuator selection rejected")
				}
			}
		}
		snap = page.Snapshot()
		for _, c := range h.srv.pages.Charts(page.Name()) {
			frame := c.FrameSince(since[c.Name()])
			if len(frame.Rows) == 0 {
				continue
			}
			since[c.Name()] = math.Nextafter(frame.End, math.MaxFloat64)
			frames = append(frames, frame)
		}
	})

	if snap != nil {
		h.write(model.Msg{Type: model.MsgSnapshot, Topic: page.Name(), Content: raw(snap)})
	}
	for _, frame := range frames {
		h.write(model.Msg{Type: model.MsgChartFrame, Topic: page.Name(), Content: raw(frame)})
	}
}

func (h *hub) write(msg model.Msg) {
	if err := h.conn.WriteJSON(&msg); err != nil {
		log.WithError(err).Debug("websocket write failed")
	}
}

func raw(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("marshaling reply content")
		return json.RawMessage("{}")
	}
	return data
}
