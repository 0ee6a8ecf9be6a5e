package timecache

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0, []string{"timestamp"})
	assert.Error(t, err)

	_, err = New(5, []string{"value"})
	assert.Error(t, err)

	c, err := New(5, []string{"timestamp", "value"})
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp", "value"}, c.Columns())
	assert.Equal(t, 5, c.Capacity())
}

func TestClear(t *testing.T) {
	c, err := New(5, []string{"timestamp", "df", "di"})
	require.NoError(t, err)

	assert.Equal(t, 0, c.Len())
	_, err = c.StartTime()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = c.EndTime()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, c.Append(1, 0.5, 2))
	assert.Equal(t, 1, c.Len())

	start, end, err := c.TimeRange()
	require.NoError(t, err)
	assert.Equal(t, 1.0, start)
	assert.Equal(t, 1.0, end)

	df, err := c.Column("df")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, df)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, _, err = c.TimeRange()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAppendRollsOver(t *testing.T) {
	c, err := New(5, []string{"timestamp", "data1", "data2"})
	require.NoError(t, err)

	for i := 0; i < 103; i++ {
		f := float64(i)
		require.NoError(t, c.Append(f, f*2, f*f))
	}

	require.Equal(t, 5, c.Len())
	for i := 0; i < 5; i++ {
		v := float64(i + 98)
		row := c.Row(i)
		assert.Equal(t, v, row[0])
		assert.Equal(t, v*2, row[1])
		assert.Equal(t, v*v, row[2])
	}
}

func TestAppendWrongWidth(t *testing.T) {
	c, err := New(5, []string{"timestamp", "value"})
	require.NoError(t, err)
	assert.Error(t, c.Append(1))
	assert.Error(t, c.Append(1, 2, 3))
}

func TestResize(t *testing.T) {
	c, err := New(5, []string{"timestamp", "data1", "data2"})
	require.NoError(t, err)

	for i := 0; i < 1025; i++ {
		f := float64(i)
		require.NoError(t, c.Append(f*f, f*2, f*3))
	}
	require.Equal(t, 5, c.Len())

	c.Resize(1000)

	// growing keeps all rows and appends continue without eviction
	for i := 0; i < 995; i++ {
		assert.Equal(t, 5+i, c.Len())
		f := float64(i)
		require.NoError(t, c.Append(f*4, f*f, f*5))
	}
	require.Equal(t, 1000, c.Len())

	for i := 0; i < 5; i++ {
		v := float64(i + 1020)
		assert.Equal(t, v*v, c.Row(i)[0])
		assert.Equal(t, v*2, c.Row(i)[1])
	}
	for i := 5; i < 1000; i++ {
		v := float64(i - 5)
		assert.Equal(t, v*4, c.Row(i)[0])
		assert.Equal(t, v*v, c.Row(i)[1])
	}

	// shrinking keeps the most recent rows
	c.Resize(25)
	require.Equal(t, 25, c.Len())
	for i := 0; i < 25; i++ {
		v := float64(i - 25 + 995)
		assert.Equal(t, v*4, c.Row(i)[0])
	}

	// cache must keep rolling after a shrink
	for i := 0; i < 100; i++ {
		require.NoError(t, c.Append(float64(i), 0, 0))
		assert.Equal(t, 25, c.Len())
	}
	for i := 0; i < 25; i++ {
		assert.Equal(t, float64(i+75), c.Row(i)[0])
	}
}

func TestTimestampIndex(t *testing.T) {
	c, err := New(10, []string{"timestamp", "value"})
	require.NoError(t, err)

	ts := 10.0
	addValues := func(n int) {
		for i := 0; i < n; i++ {
			require.NoError(t, c.Append(ts, ts*2))
			ts += 1
		}
	}

	addValues(10)
	require.Equal(t, 10, c.Len())

	idx, ok := c.TimestampIndex(9)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	for i := 0; i < 10; i++ {
		idx, ok = c.TimestampIndex(10 + float64(i))
		assert.True(t, ok)
		assert.Equal(t, i, idx)

		idx, ok = c.TimestampIndex(9.5 + float64(i))
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok = c.TimestampIndex(19.5)
	assert.False(t, ok)

	// once rolled over, indices shift with the evicted row
	addValues(1)
	require.Equal(t, 10, c.Len())

	idx, ok = c.TimestampIndex(11)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = c.TimestampIndex(20)
	assert.True(t, ok)
	assert.Equal(t, 9, idx)

	_, ok = c.TimestampIndex(20.5)
	assert.False(t, ok)
}

func TestColumnUnknown(t *testing.T) {
	c, err := New(5, []string{"timestamp", "value"})
	require.NoError(t, err)
	_, err = c.Column("nope")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	c, err := New(3, []string{"timestamp", "value"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Append(float64(i), float64(i)*0.5))
	}

	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "timestamp,value", lines[0])
	assert.Equal(t, "2,1", lines[1])
	assert.Equal(t, "4,2", lines[3])
}
