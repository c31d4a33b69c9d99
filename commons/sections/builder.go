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

package sections

import (
	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// sectionBuilder appends panels to a section and keeps the first error so a
// catalog section can be written as a flat list.
type sectionBuilder struct {
	section *dashboard.Section
	err     error
}

func newSection(name string) *sectionBuilder {
	return &sectionBuilder{section: dashboard.NewSection(name, dashboard.NewRow(name))}
}

func (b *sectionBuilder) panel(title string, kind dashboard.PanelKind, ds dashboard.DataSourceRef, queries []dashboard.Query, opts ...dashboard.PanelOption) {
	if b.err != nil {
		return
	}
	p, err := dashboard.NewPanel(title, kind, ds, queries, opts...)
	if err != nil {
		b.err = err
		return
	}
	b.section.Add(p)
}

func (b *sectionBuilder) override(o dashboard.PanelOverride, err error) dashboard.PanelOverride {
	if err != nil && b.err == nil {
		b.err = err
	}
	return o
}

func (b *sectionBuilder) done() (*dashboard.Section, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.section, nil
}

func metrics(ds dashboard.DataSourceRef, expr string, opts ...dashboard.QueryOption) dashboard.Query {
	return dashboard.NewQuery(dashboard.MetricsQuery, expr, ds, opts...)
}

func queries(q ...dashboard.Query) []dashboard.Query {
	return q
}
