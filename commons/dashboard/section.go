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
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
)

// Rendered is a materialised component: exactly one of Row and Panel is set.
type Rendered struct {
	Row   cog.Builder[sdk.RowPanel]
	Panel cog.Builder[sdk.Panel]
}

func (r Rendered) IsRow() bool { return r.Row != nil }

// Component is anything a Section can hold.
type Component interface {
	Render() (Rendered, error)
}

// Row is a labelled grouping marker.
type Row struct {
	title string
}

func NewRow(title string) *Row {
	return &Row{title: title}
}

func (r *Row) Title() string { return r.title }

func (r *Row) Render() (Rendered, error) {
	return Rendered{Row: sdk.NewRowBuilder(r.title)}, nil
}

// Section is a named, ordered collection of components. Insertion order is render order.
type Section struct {
	name       string
	components []Component
}

func NewSection(name string, components ...Component) *Section {
	return &Section{name: name, components: append([]Component(nil), components...)}
}

func (s *Section) Name() string { return s.name }

// Add appends c and returns the section for chaining.
func (s *Section) Add(c Component) *Section {
	s.components = append(s.components, c)
	return s
}

func (s *Section) Components() []Component {
	return append([]Component(nil), s.components...)
}

// Panels returns the panels of the section in order, skipping rows.
func (s *Section) Panels() []*Panel {
	var panels []*Panel
	for _, c := range s.components {
		if p, ok := c.(*Panel); ok {
			panels = append(panels, p)
		}
	}
	return panels
}

func (s *Section) Render() ([]Rendered, error) {
	out := make([]Rendered, 0, len(s.components))
	for _, c := range s.components {
		r, err := c.Render()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
