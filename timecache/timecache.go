// Package timecache provides a fixed-capacity rolling window of timestamped
// samples backing chart pushes. The cache is column oriented - rows are
// appended as one value per column, the first column is always the row
// timestamp. Oldest rows are evicted first. A cache is owned by the bus
// dispatch loop; it carries no locking of its own.
package timecache

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrEmpty is returned when a time range is requested from an empty cache.
var ErrEmpty = errors.New("time cache is empty")

type TimeCache struct {
	columns []string
	rows    [][]float64
	size    int
	// current is the row slot the next Append writes to. Once the cache
	// rolled over, filled is true and all size slots hold valid rows, the
	// oldest one at current.
	current int
	filled  bool
}

// New creates a cache retaining size most recent rows. The first column must
// be "timestamp".
func New(size int, columns []string) (*TimeCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid time cache size %d", size)
	}
	if len(columns) == 0 || columns[0] != "timestamp" {
		return nil, fmt.Errorf("first column must be timestamp, got %v", columns)
	}
	c := &TimeCache{
		columns: append([]string(nil), columns...),
		size:    size,
	}
	c.rows = make([][]float64, size)
	return c, nil
}

// Clear drops all retained rows.
func (c *TimeCache) Clear() {
	c.current = 0
	c.filled = false
}

// Len returns the number of retained rows.
func (c *TimeCache) Len() int {
	if c.filled {
		return c.size
	}
	return c.current
}

// Capacity returns the retention limit.
func (c *TimeCache) Capacity() int {
	return c.size
}

// Columns returns the column names given to New.
func (c *TimeCache) Columns() []string {
	return c.columns
}

// Append adds a row, evicting the oldest retained row when the cache is at
// capacity. The first value is the row timestamp.
func (c *TimeCache) Append(row ...float64) error {
	if len(row) != len(c.columns) {
		return fmt.Errorf("row has %d values, cache has %d columns", len(row), len(c.columns))
	}
	if c.current >= c.size {
		c.current = 0
		c.filled = true
	}
	c.rows[c.current] = append([]float64(nil), row...)
	c.current++
	return nil
}

// Resize changes the retention limit. Existing rows are preserved - all of
// them when growing, the most recent size rows when shrinking.
func (c *TimeCache) Resize(size int) {
	if size <= 0 || size == c.size {
		return
	}
	length := c.Len()
	keep := length
	if keep > size {
		keep = size
	}
	rows := make([][]float64, size)
	for i := 0; i < keep; i++ {
		rows[keep-1-i] = c.Row(length - 1 - i)
	}
	c.rows = rows
	c.filled = keep == size && length > 0
	c.current = keep
	c.size = size
}

// Row returns the i-th retained row, 0 being the oldest.
func (c *TimeCache) Row(i int) []float64 {
	return c.rows[c.mapIndex(i)]
}

// mapIndex translates an insertion-order index to a slot in the backing
// array.
func (c *TimeCache) mapIndex(i int) int {
	if c.filled {
		if i < c.size-c.current {
			return i + c.current
		}
		return i - c.size + c.current
	}
	return i
}

// Column returns all retained values of the named column in insertion order.
func (c *TimeCache) Column(name string) ([]float64, error) {
	col := -1
	for i, n := range c.columns {
		if n == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]float64, c.Len())
	for i := range out {
		out[i] = c.Row(i)[col]
	}
	return out, nil
}

// StartTime returns the timestamp of the oldest retained row.
func (c *TimeCache) StartTime() (float64, error) {
	if c.Len() == 0 {
		return 0, ErrEmpty
	}
	return c.Row(0)[0], nil
}

// EndTime returns the timestamp of the most recent row.
func (c *TimeCache) EndTime() (float64, error) {
	if c.Len() == 0 {
		return 0, ErrEmpty
	}
	return c.Row(c.Len() - 1)[0], nil
}

// TimeRange returns the timestamps of the oldest and most recent rows.
func (c *TimeCache) TimeRange() (float64, float64, error) {
	start, err := c.StartTime()
	if err != nil {
		return 0, 0, err
	}
	end, _ := c.EndTime()
	return start, end, nil
}

// TimestampIndex returns the insertion-order index of the first row with
// timestamp >= ts. The second value is false when every retained row is
// older than ts. Rows are assumed appended with non-decreasing timestamps.
func (c *TimeCache) TimestampIndex(ts float64) (int, bool) {
	length := c.Len()
	if length == 0 {
		return 0, false
	}
	if c.Row(length-1)[0] < ts {
		return 0, false
	}
	left, right := 0, length-1
	for left < right {
		middle := (left + right) / 2
		if c.Row(middle)[0] < ts {
			left = middle + 1
		} else {
			right = middle
		}
	}
	return left, true
}

// WriteCSV writes retained rows, oldest first, with a column header.
func (c *TimeCache) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(c.columns); err != nil {
		return err
	}
	record := make([]string, len(c.columns))
	for i := 0; i < c.Len(); i++ {
		row := c.Row(i)
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
