// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package editor turns user interaction with numeric input fields into
// clamped, in-place mutations of the active distribution variant. The
// editor never reports an error: illegal input is clamped or ignored.
package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/distviz/distribution"
)

// DragSpeed is the value change per drag step of a field.
const DragSpeed = 0.1

// Field is an editable numeric input bound to one variant parameter.
type Field struct {
	Name  string  // parameter key
	Label string  // prefixed label, e.g. "sigma: "
	Value float64 // current value
	Min   float64 // clamp range; may be -Inf
	Max   float64 // clamp range; may be +Inf
	Step  float64 // drag step
}

// HasMin reports whether the field has a finite lower limit.
func (f Field) HasMin() bool { return !math.IsInf(f.Min, 0) }

// HasMax reports whether the field has a finite upper limit.
func (f Field) HasMax() bool { return !math.IsInf(f.Max, 0) }

// Fields lists the input fields of v in display order.
func Fields(v distribution.Variant) []Field {
	params := v.Params()
	fields := make([]Field, 0, len(params))
	for _, p := range params {
		fields = append(fields, Field{
			Name:  p.Name,
			Label: p.Prefix,
			Value: p.Value,
			Min:   p.Min,
			Max:   p.Max,
			Step:  DragSpeed,
		})
	}
	return fields
}

// Apply parses raw and assigns it to the named parameter of v. Values
// out of range are clamped at the moment of entry. Unknown names,
// unparsable and non-finite input leave v unchanged. It returns whether
// the stored value changed.
func Apply(v distribution.Variant, name string, raw string) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false
	}
	return set(v, name, value)
}

// Drag moves the named parameter of v by delta, clamped into range.
func Drag(v distribution.Variant, name string, delta float64) bool {
	current, ok := valueOf(v, name)
	if !ok {
		return false
	}
	return set(v, name, current+delta)
}

func set(v distribution.Variant, name string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	before, ok := valueOf(v, name)
	if !ok {
		return false
	}
	after, _ := v.Set(name, value)
	return after != before
}

func valueOf(v distribution.Variant, name string) (float64, bool) {
	for _, p := range v.Params() {
		if p.Name == name {
			return p.Value, true
		}
	}
	return 0, false
}
