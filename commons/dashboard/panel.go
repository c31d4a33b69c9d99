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
	"github.com/grafana/grafana-foundation-sdk/go/barchart"
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/cog/variants"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/heatmap"
	"github.com/grafana/grafana-foundation-sdk/go/histogram"
	"github.com/grafana/grafana-foundation-sdk/go/table"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
	"github.com/pkg/errors"
)

// PanelKind selects the visualization a Panel renders to.
type PanelKind int

const (
	TimeSeriesPanel PanelKind = iota
	BarChartPanel
	BarGaugePanel
	TablePanel
	HeatmapPanel
	HistogramPanel
)

func (k PanelKind) String() string {
	switch k {
	case TimeSeriesPanel:
		return "timeseries"
	case BarChartPanel:
		return "barchart"
	case BarGaugePanel:
		return "bargauge"
	case TablePanel:
		return "table"
	case HeatmapPanel:
		return "heatmap"
	case HistogramPanel:
		return "histogram"
	}
	return "unknown"
}

func (k PanelKind) valid() bool {
	return k >= TimeSeriesPanel && k <= HistogramPanel
}

// ScaleDistribution configures the value axis of a time series panel.
type ScaleDistribution struct {
	Type common.ScaleDistribution
	Log  float64
}

// LinearScale is the default axis scale.
func LinearScale() ScaleDistribution {
	return ScaleDistribution{Type: common.ScaleDistributionLinear}
}

// LogScale is a logarithmic axis scale with the given base.
func LogScale(base float64) ScaleDistribution {
	return ScaleDistribution{Type: common.ScaleDistributionLog, Log: base}
}

func (s ScaleDistribution) builder() *common.ScaleDistributionConfigBuilder {
	b := common.NewScaleDistributionConfigBuilder().Type(s.Type)
	if s.Type == common.ScaleDistributionLog && s.Log > 0 {
		b.Log(s.Log)
	}
	return b
}

// ReduceOptions controls how a bar gauge reduces each series to a single value.
type ReduceOptions struct {
	Values bool
	Calcs  []string
	Fields string
}

func (r ReduceOptions) builder() *common.ReduceDataOptionsBuilder {
	b := common.NewReduceDataOptionsBuilder().Values(r.Values).Calcs(r.Calcs)
	if r.Fields != "" {
		b.Fields(r.Fields)
	}
	return b
}

// LegendOptions controls the legend of bar chart and time series panels.
type LegendOptions struct {
	Show        bool
	Placement   common.LegendPlacement
	DisplayMode common.LegendDisplayMode
}

func (l LegendOptions) builder() *common.VizLegendOptionsBuilder {
	b := common.NewVizLegendOptionsBuilder().ShowLegend(l.Show)
	if l.Placement != "" {
		b.Placement(l.Placement)
	}
	if l.DisplayMode != "" {
		b.DisplayMode(l.DisplayMode)
	}
	return b
}

type hint string

const (
	hintStacking          hint = "stacking"
	hintOrientation       hint = "orientation"
	hintDisplayMode       hint = "display mode"
	hintScaleDistribution hint = "scale distribution"
	hintReduceOptions     hint = "reduce options"
	hintLegend            hint = "legend"
)

// hints that only some panel kinds understand; unit, transformations and
// overrides apply to every kind
var hintKinds = map[hint][]PanelKind{
	hintStacking:          {BarChartPanel},
	hintOrientation:       {BarGaugePanel},
	hintDisplayMode:       {BarGaugePanel},
	hintScaleDistribution: {TimeSeriesPanel},
	hintReduceOptions:     {BarGaugePanel},
	hintLegend:            {BarChartPanel, TimeSeriesPanel},
}

// Panel is one visualization with its ordered queries and rendering hints.
type Panel struct {
	title      string
	kind       PanelKind
	datasource DataSourceRef
	queries    []Query
	unit       string

	stacking        common.StackingMode
	orientation     common.VizOrientation
	displayMode     common.BarGaugeDisplayMode
	scale           ScaleDistribution
	reduce          *ReduceOptions
	legend          *LegendOptions
	transformations []sdk.DataTransformerConfig
	overrides       []PanelOverride

	set map[hint]bool
}

// PanelOption customises a Panel at construction time.
type PanelOption func(*Panel)

func WithUnit(unit string) PanelOption {
	return func(p *Panel) { p.unit = unit }
}

// WithStacking sets the bar chart stacking mode.
func WithStacking(mode common.StackingMode) PanelOption {
	return func(p *Panel) { p.stacking = mode; p.set[hintStacking] = true }
}

// WithOrientation sets the bar gauge orientation.
func WithOrientation(o common.VizOrientation) PanelOption {
	return func(p *Panel) { p.orientation = o; p.set[hintOrientation] = true }
}

// WithDisplayMode sets the bar gauge display mode.
func WithDisplayMode(mode common.BarGaugeDisplayMode) PanelOption {
	return func(p *Panel) { p.displayMode = mode; p.set[hintDisplayMode] = true }
}

// WithScaleDistribution sets the time series axis scale.
func WithScaleDistribution(s ScaleDistribution) PanelOption {
	return func(p *Panel) { p.scale = s; p.set[hintScaleDistribution] = true }
}

// WithReduceOptions sets how a bar gauge reduces series.
func WithReduceOptions(r ReduceOptions) PanelOption {
	return func(p *Panel) { p.reduce = &r; p.set[hintReduceOptions] = true }
}

func WithLegendOptions(l LegendOptions) PanelOption {
	return func(p *Panel) { p.legend = &l; p.set[hintLegend] = true }
}

// WithTransformations appends data transformations, applied in the given order.
func WithTransformations(t ...sdk.DataTransformerConfig) PanelOption {
	return func(p *Panel) { p.transformations = append(p.transformations, t...) }
}

func WithOverrides(o ...PanelOverride) PanelOption {
	return func(p *Panel) { p.overrides = append(p.overrides, o...) }
}

// NewPanel checks that every hint is legal for kind, that the queries fit in
// the reference alphabet and that every override resolves to a query.
// A panel without queries is accepted here and rejected by Dashboard.Validate.
func NewPanel(title string, kind PanelKind, ds DataSourceRef, queries []Query, opts ...PanelOption) (*Panel, error) {
	if !kind.valid() {
		return nil, NewConfigurationError(ErrorPanelUnknownKind, title, int(kind))
	}
	if len(queries) > MaxQueriesPerPanel {
		return nil, NewConfigurationError(ErrorPanelTooManyQueries, title, len(queries), MaxQueriesPerPanel)
	}

	p := &Panel{
		title:       title,
		kind:        kind,
		datasource:  ds,
		queries:     append([]Query(nil), queries...),
		unit:        DefaultUnit,
		stacking:    common.StackingModeNone,
		orientation: common.VizOrientationAuto,
		displayMode: common.BarGaugeDisplayModeBasic,
		scale:       LinearScale(),
		set:         map[hint]bool{},
	}
	for _, opt := range opts {
		opt(p)
	}

	for h := range p.set {
		if !kindAllows(h, kind) {
			return nil, NewConfigurationError(ErrorPanelHintNotAllowed, title, kind, h)
		}
	}
	for _, o := range p.overrides {
		if ref := o.target.QueryRef; ref != "" {
			if _, ok := p.resolveRef(ref); !ok {
				return nil, NewConfigurationError(ErrorPanelOverrideUnresolved, title, ref)
			}
		}
	}
	return p, nil
}

func kindAllows(h hint, kind PanelKind) bool {
	for _, k := range hintKinds[h] {
		if k == kind {
			return true
		}
	}
	return false
}

func (p *Panel) Title() string { return p.title }

func (p *Panel) Kind() PanelKind { return p.kind }

func (p *Panel) Queries() []Query { return append([]Query(nil), p.queries...) }

func (p *Panel) Overrides() []PanelOverride { return append([]PanelOverride(nil), p.overrides...) }

// RefID returns the reference letter of the i-th query.
func RefID(i int) string {
	return string(rune('A' + i))
}

// resolveRef maps a stable query id or a literal reference letter to the
// letter the query receives at render time.
func (p *Panel) resolveRef(ref string) (string, bool) {
	for i, q := range p.queries {
		if q.id != "" && q.id == ref {
			return RefID(i), true
		}
	}
	if len(ref) == 1 && ref[0] >= 'A' && ref[0] <= 'Z' && int(ref[0]-'A') < len(p.queries) {
		return ref, true
	}
	return "", false
}

// Render materialises the panel and its queries. Queries receive reference
// letters A, B, C... in order.
func (p *Panel) Render() (Rendered, error) {
	var (
		b   cog.Builder[sdk.Panel]
		err error
	)
	switch p.kind {
	case TimeSeriesPanel:
		ts := timeseries.NewPanelBuilder()
		decorate(ts, p)
		ts.ScaleDistribution(p.scale.builder())
		if p.legend != nil {
			ts.Legend(p.legend.builder())
		}
		b, err = ts, withTargets(ts, p)
	case BarChartPanel:
		bc := barchart.NewPanelBuilder()
		decorate(bc, p)
		bc.Stacking(p.stacking)
		legend := LegendOptions{}
		if p.legend != nil {
			legend = *p.legend
		}
		bc.Legend(legend.builder())
		b, err = bc, withTargets(bc, p)
	case BarGaugePanel:
		bg := bargauge.NewPanelBuilder()
		decorate(bg, p)
		if p.reduce != nil {
			bg.ReduceOptions(p.reduce.builder())
		}
		bg.Orientation(p.orientation).DisplayMode(p.displayMode)
		b, err = bg, withTargets(bg, p)
	case TablePanel:
		tb := table.NewPanelBuilder()
		decorate(tb, p)
		b, err = tb, withTargets(tb, p)
	case HeatmapPanel:
		hm := heatmap.NewPanelBuilder()
		decorate(hm, p)
		b, err = hm, withTargets(hm, p)
	case HistogramPanel:
		hg := histogram.NewPanelBuilder()
		decorate(hg, p)
		b, err = hg, withTargets(hg, p)
	default:
		return Rendered{}, NewConfigurationError(ErrorPanelUnknownKind, p.title, int(p.kind))
	}
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{Panel: b}, nil
}

// panelBuilder is the option surface every renderer panel builder shares.
type panelBuilder[T any] interface {
	cog.Builder[sdk.Panel]
	Title(title string) T
	Unit(unit string) T
	Datasource(datasource sdk.DataSourceRef) T
	WithTransformation(transformation sdk.DataTransformerConfig) T
	OverrideByQuery(queryRefId string, properties []sdk.DynamicConfigValue) T
	OverrideByName(name string, properties []sdk.DynamicConfigValue) T
	WithTarget(target cog.Builder[variants.Dataquery]) T
}

func decorate[T panelBuilder[T]](b T, p *Panel) {
	b.Title(p.title)
	b.Unit(p.unit)
	b.Datasource(p.datasource.sdk())
	for _, t := range p.transformations {
		b.WithTransformation(t)
	}
	for _, o := range p.overrides {
		if o.target.FieldName != "" {
			b.OverrideByName(o.target.FieldName, o.properties())
			continue
		}
		// resolved at construction time
		ref, _ := p.resolveRef(o.target.QueryRef)
		b.OverrideByQuery(ref, o.properties())
	}
}

func withTargets[T panelBuilder[T]](b T, p *Panel) error {
	for i, q := range p.queries {
		target, err := q.render(RefID(i))
		if err != nil {
			return errors.Wrapf(err, ErrorRenderPanelQuery, RefID(i), p.title)
		}
		b.WithTarget(target)
	}
	return nil
}
