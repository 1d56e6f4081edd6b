package palette

import (
	"encoding/json"
	"fmt"
	"math"
)

// RecordStatus classifies one entry of a palette source.
type RecordStatus int

const (
	RecordValid RecordStatus = iota
	RecordNotObject
	RecordBadName
	RecordBadChannel
)

func (s RecordStatus) String() string {
	switch s {
	case RecordValid:
		return "valid"
	case RecordNotObject:
		return "not an object"
	case RecordBadName:
		return "bad name"
	case RecordBadChannel:
		return "bad channel"
	default:
		return fmt.Sprintf("RecordStatus(%d)", int(s))
	}
}

// ReferenceColor is a named palette entry.
type ReferenceColor struct {
	Name string
	RGB
}

// Record is the classification of a single palette source entry.
// Color is only set when Status is RecordValid.
type Record struct {
	Index  int
	Status RecordStatus
	Color  ReferenceColor
	Reason string
}

// ClassifyRecord decodes the i-th entry of a palette source. A valid entry
// is an object with a non-empty string "name" and numeric "r", "g" and "b"
// fields that round to a value in [0, 255].
func ClassifyRecord(i int, raw json.RawMessage) Record {
	rec := Record{Index: i}

	var fields map[string]interface{}
	if e := json.Unmarshal(raw, &fields); e != nil || fields == nil {
		rec.Status = RecordNotObject
		rec.Reason = "entry is not a JSON object"
		return rec
	}

	name, ok := fields["name"].(string)
	if !ok || name == "" {
		rec.Status = RecordBadName
		rec.Reason = "missing or empty name"
		return rec
	}

	var ch [3]uint8
	for k, key := range []string{"r", "g", "b"} {
		v, ok := channel(fields[key])
		if !ok {
			rec.Status = RecordBadChannel
			rec.Reason = fmt.Sprintf("channel %q of %q is not a number in [0,255]", key, name)
			return rec
		}
		ch[k] = v
	}

	rec.Status = RecordValid
	rec.Color = ReferenceColor{Name: name, RGB: RGB{ch[0], ch[1], ch[2]}}
	return rec
}

// channel rounds half up, like JavaScript's Math.round.
func channel(v interface{}) (uint8, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	r := math.Floor(f + 0.5)
	if r < 0 || r > 255 {
		return 0, false
	}
	return uint8(r), true
}
