// Package mirror builds the force actuator grid render model sent to EUI
// clients: one dot per actuator at its mirror position, colored by the
// selected value axis, with min/max scale and per-actuator warning flags,
// plus the detail block for a selected actuator with near and far neighbor
// averages.
package mirror

import (
	"fmt"

	"mseui/fatable"
)

// Placeholder is displayed for values that cannot be computed - missing
// telemetry, or no neighbor reporting on the selected axis.
const Placeholder = "---"

// Item is one actuator dot of the mirror display.
type Item struct {
	ID      int     `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Value   float64 `json:"value"`
	OK      bool    `json:"ok"`
	Warning bool    `json:"warning"`
	Color   string  `json:"color"`
}

// View is the render model of the whole mirror for one value axis.
type View struct {
	Axis  string  `json:"axis"`
	Items []Item  `json:"items"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Build maps an axis value array onto actuator positions. values must have
// fatable.Count(axis) entries; actuators without a value on the axis are
// rendered without a value (OK false). warnings, indexed like the table, may
// be nil.
func Build(axis fatable.Axis, values []float64, warnings []bool) (*View, error) {
	if want := fatable.Count(axis); len(values) != want {
		return nil, fmt.Errorf("axis %s expects %d values, got %d", axis, want, len(values))
	}

	v := &View{Axis: axis.String(), Items: make([]Item, len(fatable.Table))}
	first := true
	for i := range fatable.Table {
		rec := &fatable.Table[i]
		it := Item{ID: rec.ID, X: rec.XPosition, Y: rec.YPosition}
		if warnings != nil && i < len(warnings) {
			it.Warning = warnings[i]
		}
		if idx := rec.ValueIndex(axis); idx != fatable.NoIndex {
			it.Value = values[idx]
			it.OK = true
			if first || it.Value < v.Min {
				v.Min = it.Value
			}
			if first || it.Value > v.Max {
				v.Max = it.Value
			}
			first = false
		}
		v.Items[i] = it
	}

	scale := Scale{Min: v.Min, Max: v.Max}
	for i := range v.Items {
		if v.Items[i].OK {
			v.Items[i].Color = scale.Color(v.Items[i].Value)
		}
	}
	return v, nil
}

// Selected is the detail block for one picked actuator.
type Selected struct {
	ID          int    `json:"id"`
	Value       string `json:"value"`
	NearIDs     []int  `json:"nearIds"`
	NearAverage string `json:"nearAverage"`
	FarIDs      []int  `json:"farIds"`
	FarAverage  string `json:"farAverage"`
}

// Select computes the selected-actuator detail: its own value and the
// averages over near and far-but-not-near neighbors on the axis. Neighbors
// without a value on the axis do not enter the aggregation; when none
// remains, the average shows the placeholder.
func Select(axis fatable.Axis, values []float64, id int, format string) (*Selected, error) {
	if want := fatable.Count(axis); len(values) != want {
		return nil, fmt.Errorf("axis %s expects %d values, got %d", axis, want, len(values))
	}
	rec, err := fatable.FindID(id)
	if err != nil {
		return nil, err
	}

	sel := &Selected{ID: id, Value: Placeholder}
	if idx := rec.ValueIndex(axis); idx != fatable.NoIndex {
		sel.Value = fmt.Sprintf(format, values[idx])
	}

	near := rec.NearNeighbors(axis)
	sel.NearIDs = recordIDs(near)
	sel.NearAverage = average(values, rec.NearNeighborIndices(axis), format)

	far := rec.OnlyFarNeighbors(axis)
	sel.FarIDs = recordIDs(far)
	sel.FarAverage = average(values, rec.OnlyFarNeighborIndices(axis), format)

	return sel, nil
}

func recordIDs(recs []*fatable.Record) []int {
	ids := make([]int, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func average(values []float64, indices []int, format string) string {
	if len(indices) == 0 {
		return Placeholder
	}
	sum := 0.0
	for _, i := range indices {
		sum += values[i]
	}
	return fmt.Sprintf(format, sum/float64(len(indices)))
}
