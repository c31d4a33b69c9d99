/*
** Copyright (c) 2026 Oracle and/or its affiliates.
**
** The Universal Permissive License (UPL), Version 1.0
**
** Subject to the condition set forth below, permission is hereby granted to any
** person obtaining a copy of this software, associated documentation and/or data
** (collectively the "Software"), free of charge and under any and all copyright
** rights in the Software, and any and all patent rights owned or freely
** licensable by each licensor hereunder covering either (i) the unmodified
** Software as contributed to or provided by such licensor, or (ii) the Larger
** Works (as defined below), to deal in both
**
** (a) the Software, and
** (b) any piece of software and/or hardware listed in the lrgrwrks.txt file if
** one is included with the Software (each a "Larger Work" to which the Software
** is contributed by such licensors),
**
** without restriction, including without limitation the rights to copy, create
** derivative works of, display, perform, and distribute the Software and make,
** use, sell, offer for sale, import, export, have made, and have sold the
** Software and the Larger Work(s), and to sublicense the foregoing rights on
** either these or other terms.
**
** This license is subject to the following condition:
** The above copyright notice and either this complete permission notice or at
** a minimum a reference to the UPL must be included in all copies or
** substantial portions of the Software.
**
** THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
** IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
** FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
** AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
** LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
** OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
** SOFTWARE.
 */

package dashboard

import (
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
)

// OverrideTarget selects the series a PanelOverride applies to. Exactly one of
// QueryRef and FieldName must be set.
//
// QueryRef is either the stable id of a query given through WithQueryID or a
// literal reference letter ("A", "B", ...).
type OverrideTarget struct {
	QueryRef  string
	FieldName string
}

// OverrideValue is one (id, value) field config directive.
type OverrideValue struct {
	ID    string
	Value interface{}
}

// PanelOverride applies an ordered list of directives to the series selected by its target.
type PanelOverride struct {
	target OverrideTarget
	values []OverrideValue
}

func NewPanelOverride(target OverrideTarget, values ...OverrideValue) (PanelOverride, error) {
	if (target.QueryRef == "") == (target.FieldName == "") {
		return PanelOverride{}, NewConfigurationError(ErrorOverrideTarget)
	}
	return PanelOverride{target: target, values: append([]OverrideValue(nil), values...)}, nil
}

// ByQuery is shorthand for an override selecting a query by id or reference letter.
func ByQuery(ref string, values ...OverrideValue) (PanelOverride, error) {
	return NewPanelOverride(OverrideTarget{QueryRef: ref}, values...)
}

// ByName is shorthand for an override selecting a field by display name.
func ByName(name string, values ...OverrideValue) (PanelOverride, error) {
	return NewPanelOverride(OverrideTarget{FieldName: name}, values...)
}

func (o PanelOverride) Target() OverrideTarget { return o.target }

func (o PanelOverride) Values() []OverrideValue {
	return append([]OverrideValue(nil), o.values...)
}

func (o PanelOverride) properties() []sdk.DynamicConfigValue {
	props := make([]sdk.DynamicConfigValue, 0, len(o.values))
	for _, v := range o.values {
		props = append(props, sdk.DynamicConfigValue{Id: v.ID, Value: v.Value})
	}
	return props
}

// AxisOverride moves the selected series to its own axis with the given unit and label.
func AxisOverride(placement, unit, label string) []OverrideValue {
	return []OverrideValue{
		{ID: OverrideIDAxisPlacement, Value: placement},
		{ID: OverrideIDUnit, Value: unit},
		{ID: OverrideIDAxisLabel, Value: label},
	}
}

// FixedColorOverride paints the selected series with a single color.
func FixedColorOverride(color string) []OverrideValue {
	return []OverrideValue{
		{ID: OverrideIDColor, Value: map[string]interface{}{"mode": "fixed", "fixedColor": color}},
	}
}
