// Package fatable holds the static force actuator topology of the mirror
// cell: per-actuator position, controller addressing, which value axes the
// actuator reports on and its neighborhood on the mirror surface. The table
// is built once at load time and never mutated.
package fatable

import (
	"errors"
	"fmt"
	"sort"
)

// NoIndex marks an axis the actuator has no load cell on.
const NoIndex = -1

// ActuatorType distinguishes single and dual axis actuators.
type ActuatorType int

const (
	SAA ActuatorType = iota // single axis, Z only
	DAA                     // dual axis, Z plus lateral
)

func (t ActuatorType) String() string {
	switch t {
	case SAA:
		return "SAA"
	case DAA:
		return "DAA"
	}
	return fmt.Sprintf("ActuatorType(%d)", int(t))
}

// Axis selects one of the per-axis value arrays published on the bus.
type Axis int

const (
	X Axis = iota
	Y
	Z
	Secondary
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case Secondary:
		return "secondary"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Record is one row of the actuator topology table.
type Record struct {
	Index       int
	ID          int
	XPosition   float64
	YPosition   float64
	ZPosition   float64
	Type        ActuatorType
	Subnet      int
	Address     int
	Orientation string
	XIndex      int
	YIndex      int
	ZIndex      int
	SIndex      int
	NearIDs     []int
}

// ErrNotFound is returned by FindID for an ID not present in the table.
var ErrNotFound = errors.New("actuator not found")

var (
	idToIndex map[int]int
	// farIDs[i] holds IDs within two rings of Table[i]: its near neighbors
	// plus their near neighbors, never the actuator itself.
	farIDs [][]int
)

func init() {
	idToIndex = make(map[int]int, len(Table))
	for i := range Table {
		idToIndex[Table[i].ID] = i
	}

	farIDs = make([][]int, len(Table))
	for i := range Table {
		seen := map[int]bool{Table[i].ID: true}
		var far []int
		add := func(id int) {
			if !seen[id] {
				seen[id] = true
				far = append(far, id)
			}
		}
		for _, nid := range Table[i].NearIDs {
			add(nid)
			for _, fid := range Table[idToIndex[nid]].NearIDs {
				add(fid)
			}
		}
		sort.Ints(far)
		farIDs[i] = far
	}
}

// FindID returns the record of the actuator with the given ID.
func FindID(id int) (*Record, error) {
	i, ok := idToIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return &Table[i], nil
}

// ValueIndex returns the record's index into the given axis value array, or
// NoIndex when the actuator does not report on that axis.
func (r *Record) ValueIndex(axis Axis) int {
	switch axis {
	case X:
		return r.XIndex
	case Y:
		return r.YIndex
	case Z:
		return r.ZIndex
	case Secondary:
		return r.SIndex
	}
	return NoIndex
}

// HasAxis reports whether the actuator reports a value on the given axis.
func (r *Record) HasAxis(axis Axis) bool {
	return r.ValueIndex(axis) != NoIndex
}

// FarIDs returns IDs of actuators within two rings of r. The returned slice
// is shared and must not be modified.
func (r *Record) FarIDs() []int {
	return farIDs[r.Index]
}

// NearNeighbors returns records of r's ring neighbors reporting on the given
// axis. Actuators without a value on the axis are left out.
func (r *Record) NearNeighbors(axis Axis) []*Record {
	return filterByAxis(r.NearIDs, axis)
}

// OnlyFarNeighbors returns records of second-ring neighbors - far neighbors
// that are not also near neighbors - reporting on the given axis.
func (r *Record) OnlyFarNeighbors(axis Axis) []*Record {
	near := make(map[int]bool, len(r.NearIDs))
	for _, id := range r.NearIDs {
		near[id] = true
	}
	var ids []int
	for _, id := range farIDs[r.Index] {
		if !near[id] {
			ids = append(ids, id)
		}
	}
	return filterByAxis(ids, axis)
}

// NearNeighborIndices returns value-array indices of r's near neighbors on
// the given axis, for averaging over a telemetry array.
func (r *Record) NearNeighborIndices(axis Axis) []int {
	return valueIndices(r.NearNeighbors(axis), axis)
}

// OnlyFarNeighborIndices returns value-array indices of r's far-but-not-near
// neighbors on the given axis.
func (r *Record) OnlyFarNeighborIndices(axis Axis) []int {
	return valueIndices(r.OnlyFarNeighbors(axis), axis)
}

func filterByAxis(ids []int, axis Axis) []*Record {
	var out []*Record
	for _, id := range ids {
		rec := &Table[idToIndex[id]]
		if rec.HasAxis(axis) {
			out = append(out, rec)
		}
	}
	return out
}

func valueIndices(recs []*Record, axis Axis) []int {
	out := make([]int, len(recs))
	for i, rec := range recs {
		out[i] = rec.ValueIndex(axis)
	}
	return out
}

// Count returns the number of actuators reporting on the given axis, which
// is the length of the corresponding telemetry value array.
func Count(axis Axis) int {
	n := 0
	for i := range Table {
		if Table[i].HasAxis(axis) {
			n++
		}
	}
	return n
}
