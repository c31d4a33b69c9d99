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

	"github.com/grafana/grafana-foundation-sdk/go/common"
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
)

var _ = Describe("Query", func() {
	It("defaults legend and legend format", func() {
		q := NewQuery(MetricsQuery, "up", mimir)
		Expect(q.Legend()).To(Equal(DefaultLegend))
		Expect(q.LegendFormat()).To(Equal(LegendFormatTimeSeries))
		Expect(q.ID()).To(Equal(""))
	})

	It("applies options", func() {
		q := NewQuery(MetricsQuery, "  up  ", mimir,
			WithLegend("{{host_name}}"), WithLegendFormat(LegendFormatTable), WithQueryID("load"))
		Expect(q.Legend()).To(Equal("{{host_name}}"))
		Expect(q.LegendFormat()).To(Equal(LegendFormatTable))
		Expect(q.ID()).To(Equal("load"))
		Expect(q.Expr()).To(Equal("  up  "))
		Expect(q.TrimmedExpr()).To(Equal("up"))
	})
})

var _ = Describe("PanelOverride", func() {
	It("accepts exactly one target", func() {
		o, err := ByQuery("A", AxisOverride("left", "percent", "CPU")...)
		Expect(err).NotTo(HaveOccurred())
		Expect(o.Target().QueryRef).To(Equal("A"))
		Expect(o.Values()).To(HaveLen(3))

		o, err = ByName("Error", FixedColorOverride("red")...)
		Expect(err).NotTo(HaveOccurred())
		Expect(o.Target().FieldName).To(Equal("Error"))
	})

	It("rejects both targets", func() {
		_, err := NewPanelOverride(OverrideTarget{QueryRef: "A", FieldName: "Error"})
		Expect(err).To(HaveOccurred())
		Expect(IsConfigurationError(err)).To(BeTrue())
	})

	It("rejects no target", func() {
		_, err := NewPanelOverride(OverrideTarget{}, OverrideValue{ID: "unit", Value: "s"})
		Expect(err).To(HaveOccurred())
		Expect(IsConfigurationError(err)).To(BeTrue())
	})
})

var _ = Describe("Panel", func() {
	It("assigns reference letters in query order", func() {
		p := mustPanel("Latency", TimeSeriesPanel, mimir, []Query{
			NewQuery(MetricsQuery, "p50", mimir),
			NewQuery(MetricsQuery, "p90", mimir),
			NewQuery(MetricsQuery, "p99", mimir),
		})
		targets := targetsOf(renderPanel(p))
		Expect(targets).To(HaveLen(3))
		for i, want := range []string{"A", "B", "C"} {
			Expect(targets[i]["refId"]).To(Equal(want))
		}
		Expect(targets[1]["expr"]).To(Equal("p90"))
	})

	It("trims expressions and sets legends only on metrics queries", func() {
		p := mustPanel("Mixed", TablePanel, DataSourceRef{Type: "datasource", UID: "-- Mixed --"}, []Query{
			NewQuery(MetricsQuery, "\n   sum(up)\n  ", mimir, WithLegend("{{job}}")),
			NewQuery(LogsQuery, "  {service_name=\"a\"}  ", lokiDS),
			NewQuery(TracesQuery, "  {resource.service.name=\"a\"}  ", tempoDS),
		})
		targets := targetsOf(renderPanel(p))
		Expect(targets).To(HaveLen(3))
		Expect(targets[0]["expr"]).To(Equal("sum(up)"))
		Expect(targets[0]["legendFormat"]).To(Equal("{{job}}"))
		Expect(targets[0]["format"]).To(Equal("time_series"))
		Expect(targets[1]["expr"]).To(Equal(`{service_name="a"}`))
		Expect(targets[1]).NotTo(HaveKey("format"))
		Expect(targets[2]["query"]).To(Equal(`{resource.service.name="a"}`))
		Expect(targets[2]["refId"]).To(Equal("C"))
		Expect(targets[2]["datasource"]).To(Equal(map[string]interface{}{"type": "tempo", "uid": "tempo"}))
	})

	It("passes the query datasource to each target", func() {
		p := mustPanel("Logs", TablePanel, lokiDS, []Query{NewQuery(LogsQuery, "{a=\"b\"}", lokiDS)})
		ds := targetsOf(renderPanel(p))[0]["datasource"].(map[string]interface{})
		Expect(ds["uid"]).To(Equal("loki"))
		Expect(ds["type"]).To(Equal("loki"))
	})

	It("maps legend formats onto the prometheus result format", func() {
		p := mustPanel("Heat", HeatmapPanel, mimir, []Query{
			NewQuery(MetricsQuery, "x", mimir, WithLegendFormat(LegendFormatHeatmap)),
			NewQuery(MetricsQuery, "y", mimir, WithLegendFormat(LegendFormatTable)),
		})
		targets := targetsOf(renderPanel(p))
		Expect(targets[0]["format"]).To(Equal("heatmap"))
		Expect(targets[1]["format"]).To(Equal("table"))
	})

	It("sets title, unit and datasource", func() {
		p := mustPanel("Requests", TimeSeriesPanel, mimir, []Query{NewQuery(MetricsQuery, "up", mimir)},
			WithUnit("percent"))
		tree := renderPanel(p)
		Expect(tree["title"]).To(Equal("Requests"))
		Expect(tree["type"]).To(Equal("timeseries"))
		defaults := tree["fieldConfig"].(map[string]interface{})["defaults"].(map[string]interface{})
		Expect(defaults["unit"]).To(Equal("percent"))
	})

	It("defaults the unit to none", func() {
		p := mustPanel("Requests", TablePanel, mimir, []Query{NewQuery(MetricsQuery, "up", mimir)})
		defaults := renderPanel(p)["fieldConfig"].(map[string]interface{})["defaults"].(map[string]interface{})
		Expect(defaults["unit"]).To(Equal(DefaultUnit))
	})

	It("resolves overrides by stable query id", func() {
		util, err := ByQuery("utilization", AxisOverride("left", "percent", "CPU Utilization")...)
		Expect(err).NotTo(HaveOccurred())
		load, err := ByQuery("load", AxisOverride("right", "percent", "CPU Load %")...)
		Expect(err).NotTo(HaveOccurred())

		p := mustPanel("CPU", TimeSeriesPanel, mimir, []Query{
			NewQuery(MetricsQuery, "util", mimir, WithQueryID("utilization")),
			NewQuery(MetricsQuery, "load", mimir, WithQueryID("load")),
		}, WithOverrides(util, load))

		overrides := renderPanel(p)["fieldConfig"].(map[string]interface{})["overrides"].([]interface{})
		Expect(overrides).To(HaveLen(2))
		first := overrides[0].(map[string]interface{})
		second := overrides[1].(map[string]interface{})
		Expect(first["matcher"].(map[string]interface{})["options"]).To(Equal("A"))
		Expect(second["matcher"].(map[string]interface{})["options"]).To(Equal("B"))
		props := second["properties"].([]interface{})
		Expect(props).To(HaveLen(3))
		Expect(props[0].(map[string]interface{})["id"]).To(Equal(OverrideIDAxisPlacement))
		Expect(props[0].(map[string]interface{})["value"]).To(Equal("right"))
	})

	It("applies field name overrides", func() {
		o, err := ByName("Error", FixedColorOverride("red")...)
		Expect(err).NotTo(HaveOccurred())
		p := mustPanel("Exit", BarGaugePanel, mimir, []Query{NewQuery(MetricsQuery, "x", mimir)}, WithOverrides(o))
		overrides := renderPanel(p)["fieldConfig"].(map[string]interface{})["overrides"].([]interface{})
		matcher := overrides[0].(map[string]interface{})["matcher"].(map[string]interface{})
		Expect(matcher["options"]).To(Equal("Error"))
	})

	It("applies transformations in order", func() {
		p := mustPanel("Routes", BarGaugePanel, mimir, []Query{NewQuery(MetricsQuery, "x", mimir)},
			WithTransformations(
				sdk.DataTransformerConfig{Id: "groupBy", Options: map[string]interface{}{}},
				sdk.DataTransformerConfig{Id: "sortBy", Options: map[string]interface{}{}},
			))
		transformations := renderPanel(p)["transformations"].([]interface{})
		Expect(transformations).To(HaveLen(2))
		Expect(transformations[0].(map[string]interface{})["id"]).To(Equal("groupBy"))
		Expect(transformations[1].(map[string]interface{})["id"]).To(Equal("sortBy"))
	})

	It("applies bar gauge hints", func() {
		p := mustPanel("Routes", BarGaugePanel, mimir, []Query{NewQuery(MetricsQuery, "x", mimir)},
			WithOrientation(common.VizOrientationHorizontal),
			WithDisplayMode(common.BarGaugeDisplayModeLcd),
			WithReduceOptions(ReduceOptions{Values: true, Calcs: []string{"sum"}, Fields: `/^Value \(sum\)$/`}))
		options := renderPanel(p)["options"].(map[string]interface{})
		Expect(options["orientation"]).To(Equal("horizontal"))
		Expect(options["displayMode"]).To(Equal("lcd"))
		reduce := options["reduceOptions"].(map[string]interface{})
		Expect(reduce["values"]).To(Equal(true))
		Expect(reduce["fields"]).To(Equal(`/^Value \(sum\)$/`))
	})

	It("defaults bar chart stacking to none", func() {
		p := mustPanel("Errors", BarChartPanel, mimir, []Query{NewQuery(MetricsQuery, "x", mimir)})
		options := renderPanel(p)["options"].(map[string]interface{})
		Expect(options["stacking"]).To(Equal("none"))
	})

	It("rejects hints the panel kind does not support", func() {
		q := []Query{NewQuery(MetricsQuery, "x", mimir)}

		_, err := NewPanel("T", TimeSeriesPanel, mimir, q, WithStacking(common.StackingModePercent))
		Expect(IsConfigurationError(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("stacking"))

		_, err = NewPanel("T", BarChartPanel, mimir, q, WithScaleDistribution(LogScale(2)))
		Expect(IsConfigurationError(err)).To(BeTrue())

		_, err = NewPanel("T", TablePanel, mimir, q, WithOrientation(common.VizOrientationHorizontal))
		Expect(IsConfigurationError(err)).To(BeTrue())

		_, err = NewPanel("T", HeatmapPanel, mimir, q, WithLegendOptions(LegendOptions{Show: true}))
		Expect(IsConfigurationError(err)).To(BeTrue())
	})

	It("rejects more queries than reference letters", func() {
		queries := make([]Query, MaxQueriesPerPanel+1)
		for i := range queries {
			queries[i] = NewQuery(MetricsQuery, strings.Repeat("x", i+1), mimir)
		}
		_, err := NewPanel("Crowded", TimeSeriesPanel, mimir, queries)
		Expect(IsConfigurationError(err)).To(BeTrue())

		p := mustPanel("Full", TimeSeriesPanel, mimir, queries[:MaxQueriesPerPanel])
		targets := targetsOf(renderPanel(p))
		Expect(targets[MaxQueriesPerPanel-1]["refId"]).To(Equal("Z"))
	})

	It("rejects overrides that match no query", func() {
		o, err := ByQuery("C")
		Expect(err).NotTo(HaveOccurred())
		_, err = NewPanel("CPU", TimeSeriesPanel, mimir, []Query{NewQuery(MetricsQuery, "x", mimir)}, WithOverrides(o))
		Expect(IsConfigurationError(err)).To(BeTrue())

		o, err = ByQuery("missing-id")
		Expect(err).NotTo(HaveOccurred())
		_, err = NewPanel("CPU", TimeSeriesPanel, mimir, []Query{NewQuery(MetricsQuery, "x", mimir)}, WithOverrides(o))
		Expect(IsConfigurationError(err)).To(BeTrue())
	})
})

var _ = Describe("Section", func() {
	It("renders components in insertion order", func() {
		p := mustPanel("Requests", TimeSeriesPanel, mimir, []Query{NewQuery(MetricsQuery, "up", mimir)})
		s := NewSection("Summary", NewRow("Summary")).Add(p)

		Expect(s.Name()).To(Equal("Summary"))
		Expect(s.Components()).To(HaveLen(2))
		Expect(s.Panels()).To(HaveLen(1))

		rendered, err := s.Render()
		Expect(err).NotTo(HaveOccurred())
		Expect(rendered).To(HaveLen(2))
		Expect(rendered[0].IsRow()).To(BeTrue())
		Expect(rendered[1].IsRow()).To(BeFalse())
	})
})
