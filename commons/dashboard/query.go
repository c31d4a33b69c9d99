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
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/cog/variants"
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/loki"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/tempo"
)

// QueryKind selects the data source query flavour a Query renders to.
type QueryKind int

const (
	// MetricsQuery is a PromQL query against a Prometheus compatible store.
	MetricsQuery QueryKind = iota
	// LogsQuery is a LogQL query against Loki.
	LogsQuery
	// TracesQuery is a TraceQL query against Tempo.
	TracesQuery
)

func (k QueryKind) String() string {
	switch k {
	case MetricsQuery:
		return "metrics"
	case LogsQuery:
		return "logs"
	case TracesQuery:
		return "traces"
	}
	return "unknown"
}

// DataSourceRef points at a Grafana data source.
type DataSourceRef struct {
	Type string `json:"type,omitempty"`
	UID  string `json:"uid,omitempty"`
}

func (r DataSourceRef) sdk() sdk.DataSourceRef {
	ref := sdk.DataSourceRef{}
	if r.Type != "" {
		ref.Type = cog.ToPtr(r.Type)
	}
	if r.UID != "" {
		ref.Uid = cog.ToPtr(r.UID)
	}
	return ref
}

// Query is one data request of a panel. It is immutable once constructed.
type Query struct {
	kind         QueryKind
	expr         string
	datasource   DataSourceRef
	legend       string
	legendFormat string
	id           string
}

// QueryOption customises a Query at construction time.
type QueryOption func(*Query)

// WithLegend sets the series legend template, e.g. "{{host_name}}".
func WithLegend(legend string) QueryOption {
	return func(q *Query) { q.legend = legend }
}

// WithLegendFormat sets the result format: timeseries, table or heatmap.
func WithLegendFormat(format string) QueryOption {
	return func(q *Query) { q.legendFormat = format }
}

// WithQueryID gives the query a stable identifier that panel overrides can target
// regardless of the query's position in the panel.
func WithQueryID(id string) QueryOption {
	return func(q *Query) { q.id = id }
}

func NewQuery(kind QueryKind, expr string, ds DataSourceRef, opts ...QueryOption) Query {
	q := Query{
		kind:         kind,
		expr:         expr,
		datasource:   ds,
		legend:       DefaultLegend,
		legendFormat: DefaultLegendFormat,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Kind returns the query flavour.
func (q Query) Kind() QueryKind { return q.kind }

// Expr returns the expression exactly as given.
func (q Query) Expr() string { return q.expr }

func (q Query) Datasource() DataSourceRef { return q.datasource }

func (q Query) Legend() string { return q.legend }

func (q Query) LegendFormat() string { return q.legendFormat }

func (q Query) ID() string { return q.id }

// TrimmedExpr returns the expression without surrounding whitespace.
func (q Query) TrimmedExpr() string { return strings.TrimSpace(q.expr) }

// render materialises the query as a renderer target carrying refID.
func (q Query) render(refID string) (cog.Builder[variants.Dataquery], error) {
	switch q.kind {
	case MetricsQuery:
		return prometheus.NewDataqueryBuilder().
			Expr(q.TrimmedExpr()).
			LegendFormat(q.legend).
			Format(promFormat(q.legendFormat)).
			Datasource(q.datasource.sdk()).
			RefId(refID), nil
	case LogsQuery:
		return loki.NewDataqueryBuilder().
			Expr(q.TrimmedExpr()).
			Datasource(q.datasource.sdk()).
			RefId(refID), nil
	case TracesQuery:
		return tempo.NewDataqueryBuilder().
			Query(q.TrimmedExpr()).
			Datasource(q.datasource.sdk()).
			RefId(refID), nil
	}
	return nil, NewConfigurationError(ErrorQueryUnknownKind, int(q.kind))
}

func promFormat(format string) prometheus.PromQueryFormat {
	switch format {
	case LegendFormatTable:
		return prometheus.PromQueryFormatTable
	case LegendFormatHeatmap:
		return prometheus.PromQueryFormatHeatmap
	}
	return prometheus.PromQueryFormatTimeSeries
}
