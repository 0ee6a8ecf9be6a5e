package pages

import (
	"mseui/bus"
	"mseui/model"
	"mseui/timecache"
)

// Chart accumulates selected fields of one topic into a time cache and
// renders frames for the chart push. Appends happen on the dispatch loop;
// frame rendering must run there as well.
type Chart struct {
	name   string
	topic  string
	fields []string
	cache  *timecache.TimeCache
}

// Frame is one chart update pushed to a client.
type Frame struct {
	Name    string      `json:"name"`
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
	Start   float64     `json:"start"`
	End     float64     `json:"end"`
}

func newChart(name, topic string, fields []string, capacity int, b *bus.Bus) (*Chart, error) {
	columns := append([]string{"timestamp"}, fields...)
	cache, err := timecache.New(capacity, columns)
	if err != nil {
		return nil, err
	}
	c := &Chart{name: name, topic: topic, fields: fields, cache: cache}
	b.Subscribe(topic, c.append)
	return c, nil
}

func (c *Chart) Name() string { return c.name }

// append stores one sample row. Samples without a timestamp or with any
// chart field missing are skipped; charts only plot complete rows.
func (c *Chart) append(data model.Sample) {
	row := make([]float64, 0, len(c.fields)+1)
	ts, ok := data.Float("timestamp")
	if !ok {
		return
	}
	row = append(row, ts)
	for _, f := range c.fields {
		v, ok := data.Float(f)
		if !ok {
			return
		}
		row = append(row, v)
	}
	// row width matches the cache columns, Append cannot fail
	_ = c.cache.Append(row...)
}

// Resize changes the chart retention window, in samples.
func (c *Chart) Resize(capacity int) {
	c.cache.Resize(capacity)
}

// FrameSince renders retained rows with timestamp >= since; pass 0 for all.
func (c *Chart) FrameSince(since float64) *Frame {
	f := &Frame{Name: c.name, Columns: c.cache.Columns()}
	start, end, err := c.cache.TimeRange()
	if err != nil {
		return f
	}
	f.Start, f.End = start, end

	first := 0
	if since > 0 {
		idx, ok := c.cache.TimestampIndex(since)
		if !ok {
			return f
		}
		first = idx
	}
	for i := first; i < c.cache.Len(); i++ {
		f.Rows = append(f.Rows, c.cache.Row(i))
	}
	return f
}
