// Package model holds types shared between the bus, the simulator, the page
// view models and the websocket server.
package model

import "encoding/json"

// Msg is the frame exchanged with EUI clients over the websocket.
type Msg struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// Client message types.
const (
	MsgAuth    = "auth"
	MsgPage    = "page"
	MsgChart   = "chart"
	MsgCommand = "command"
)

// Server message types.
const (
	MsgAuthOK       = "authOk"
	MsgAuthError    = "authError"
	MsgSnapshot     = "snapshot"
	MsgChartFrame   = "chartFrame"
	MsgCommandAck   = "commandAck"
	MsgCommandError = "commandError"
	MsgError        = "error"
)

// Sample is one telemetry or event publication. Missing fields are tolerated
// by consumers, which display a placeholder instead.
type Sample map[string]interface{}

// Float reads a scalar field, second value false when the field is missing
// or not numeric.
func (s Sample) Float(field string) (float64, bool) {
	v, ok := s[field]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Bool reads a flag field, second value false when the field is missing or
// not a bool.
func (s Sample) Bool(field string) (bool, bool) {
	v, ok := s[field]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Floats reads an array field.
func (s Sample) Floats(field string) ([]float64, bool) {
	v, ok := s[field]
	if !ok {
		return nil, false
	}
	a, ok := v.([]float64)
	return a, ok
}

// Bools reads a flag array field.
func (s Sample) Bools(field string) ([]bool, bool) {
	v, ok := s[field]
	if !ok {
		return nil, false
	}
	a, ok := v.([]bool)
	return a, ok
}
