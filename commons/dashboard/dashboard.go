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
	"context"

	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/pkg/errors"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

// Dashboard owns the sections and variables of one Grafana dashboard, checks
// their cross references and renders them into a document.
type Dashboard struct {
	title    string
	uid      string
	tags     []string
	refresh  string
	from     string
	to       string
	timezone string

	sections  []*Section
	variables variableSet

	built *sdk.Dashboard
}

// DashboardOption customises a Dashboard at construction time.
type DashboardOption func(*Dashboard)

func WithTags(tags ...string) DashboardOption {
	return func(d *Dashboard) { d.tags = append(d.tags, tags...) }
}

func WithRefresh(refresh string) DashboardOption {
	return func(d *Dashboard) { d.refresh = refresh }
}

// WithTimeRange sets the default time range, e.g. "now-6h", "now".
func WithTimeRange(from, to string) DashboardOption {
	return func(d *Dashboard) { d.from, d.to = from, to }
}

func WithTimezone(tz string) DashboardOption {
	return func(d *Dashboard) { d.timezone = tz }
}

func WithSections(sections ...*Section) DashboardOption {
	return func(d *Dashboard) { d.sections = append(d.sections, sections...) }
}

// NewDashboard creates a dashboard whose uid is derived from service and env.
func NewDashboard(title, service, env string, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		title:    title,
		uid:      Slug(service, env),
		refresh:  DefaultRefresh,
		from:     DefaultTimeFrom,
		to:       DefaultTimeTo,
		timezone: DefaultTimezone,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) Title() string { return d.title }

func (d *Dashboard) UID() string { return d.uid }

func (d *Dashboard) Tags() []string { return append([]string(nil), d.tags...) }

func (d *Dashboard) Sections() []*Section { return append([]*Section(nil), d.sections...) }

func (d *Dashboard) AddSection(s *Section) *Dashboard {
	d.sections = append(d.sections, s)
	d.built = nil
	return d
}

// AddVariable declares v on the dashboard. A variable registered again under
// the same name replaces the earlier one and keeps its position.
func (d *Dashboard) AddVariable(v Variable) error {
	if v.Name == "" {
		return NewConfigurationError(ErrorVariableNoName)
	}
	d.variables.put(v)
	d.built = nil
	return nil
}

// Variables returns the declared variables in registration order.
func (d *Dashboard) Variables() []Variable { return d.variables.list() }

func (d *Dashboard) VariableNames() []string { return d.variables.names() }

// Build validates the dashboard and renders it. A validation failure aborts the
// build. The document is cached for Publish; calling Build again re-renders it
// from the same inputs.
func (d *Dashboard) Build() (*sdk.Dashboard, error) {
	if d.title == "" {
		return nil, NewConfigurationError(ErrorEmptyTitle)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := sdk.NewDashboardBuilder(d.title).
		Uid(d.uid).
		Tags(append([]string{}, d.tags...)).
		Refresh(d.refresh).
		Time(d.from, d.to).
		Timezone(d.timezone)

	for _, v := range d.variables.list() {
		b.WithVariable(v.builder())
	}

	for _, s := range d.sections {
		rendered, err := s.Render()
		if err != nil {
			return nil, errors.Wrapf(err, ErrorBuildFailed, d.title)
		}
		for _, r := range rendered {
			if r.IsRow() {
				b.WithRow(r.Row)
			} else {
				b.WithPanel(r.Panel)
			}
		}
	}

	doc, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(err, ErrorBuildFailed, d.title)
	}
	d.built = &doc
	return d.built, nil
}

// Built returns the cached document of the last successful Build, or nil.
func (d *Dashboard) Built() *sdk.Dashboard { return d.built }

// Publish hands the document to pub, wrapped with the target folder and the
// overwrite flag. A publisher implementing Preflighter is checked before
// anything is built, so a missing credential is reported ahead of validation
// errors. The dashboard is built first when nothing is cached.
func (d *Dashboard) Publish(ctx context.Context, pub Publisher, folderID int64) error {
	if pub == nil {
		return NewConfigurationError(ErrorNoPublisher, d.title)
	}
	if pf, ok := pub.(Preflighter); ok {
		if err := pf.Preflight(ctx); err != nil {
			return errors.Wrapf(err, ErrorPublishFailed, d.title)
		}
	}
	log := logf.FromContext(ctx).WithValues("dashboard", d.title, "uid", d.uid)

	doc := d.built
	if doc == nil {
		var err error
		if doc, err = d.Build(); err != nil {
			return err
		}
		log.V(1).Info(LogDashboardBuilt)
	} else {
		log.V(1).Info(LogDashboardCached)
	}

	if err := pub.Publish(ctx, NewEnvelope(*doc, folderID)); err != nil {
		return errors.Wrapf(err, ErrorPublishFailed, d.title)
	}
	log.Info(LogDashboardPublished, "folderId", folderID)
	return nil
}
