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
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// Golden path section names
const (
	ServiceSummaryName = "Service Summary"
	EndpointsName      = "Endpoints"
	HostMetricsName    = "Host Metrics"
	RuntimeMetricsName = "Runtime Metrics"
	TracesName         = "Traces"
	LogsName           = "Logs"
)

var latencyQuantiles = []struct {
	quantile string
	label    string
}{
	{"0.75", "P75"},
	{"0.95", "P95"},
	{"0.50", "P50"},
	{"0.90", "P90"},
}

// ServiceSummary shows request volume, error rates, outbound time and latency
// percentiles of one service.
func ServiceSummary(ds DataSources, service string, env Environment) (*dashboard.Section, error) {
	b := newSection(ServiceSummaryName)
	selector := fmt.Sprintf(`%s, service_name="%s"`, env.Matcher, service)

	b.panel("Requests", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(`sum(increase(http_server_request_duration_count{%s}[5m]))`, selector)),
	))

	b.panel("Error Rate | 401's", dashboard.BarChartPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(
			`sum by(http_response_status_code) (increase(http_server_request_duration_count{%s, http_response_status_code=~"401"}[5m]))`,
			selector)),
	))

	outbound := fmt.Sprintf(
		`rate(http_client_request_duration_sum{%s, server_address!~"127.0.0.1|localhost|169\\.[0-9]+\\.[0-9]+\\.[0-9]+", service_name="%s"}[5m])`,
		env.Matcher, service)
	b.panel("Time Spent", dashboard.BarChartPanel, ds.Mimir, queries(
		metrics(ds.Mimir,
			fmt.Sprintf(`sum by (server_address)(%s) / scalar(sum by ()(%s))`, outbound, outbound),
			dashboard.WithLegend("{{server_address}}")),
	),
		dashboard.WithUnit(unitPercentUnit),
		dashboard.WithStacking(common.StackingModePercent),
		dashboard.WithLegendOptions(dashboard.LegendOptions{Show: true, Placement: common.LegendPlacementBottom}),
	)

	b.panel("Error Rate | 4xx, 5xx | Excluding 401's", dashboard.BarGaugePanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(
			`sum by(http_response_status_code) (increase(http_server_request_duration_count{%s, http_response_status_code!~"2..|3..|1..|401"}[5m]))`,
			selector)),
	),
		dashboard.WithOrientation(common.VizOrientationHorizontal),
		dashboard.WithDisplayMode(common.BarGaugeDisplayModeLcd),
	)

	latency := make([]dashboard.Query, 0, len(latencyQuantiles))
	for _, q := range latencyQuantiles {
		latency = append(latency, metrics(ds.Mimir,
			fmt.Sprintf(`histogram_quantile(%s, sum(increase(http_server_request_duration_bucket{%s, service_name='%s'}[5m])) by (le, service_name))`,
				q.quantile, env.Matcher, service),
			dashboard.WithLegend("{{service_name}} - "+q.label)))
	}
	b.panel("Pxx Latency", dashboard.TimeSeriesPanel, ds.Mimir, latency,
		dashboard.WithUnit(unitSeconds),
		dashboard.WithScaleDistribution(dashboard.LogScale(2)),
	)

	return b.done()
}

// routeTotals groups route series and sorts the sums descending.
func routeTotals() []sdk.DataTransformerConfig {
	return []sdk.DataTransformerConfig{
		{
			Id: "groupBy",
			Options: map[string]interface{}{
				"fields": map[string]interface{}{
					"Value":      map[string]interface{}{"aggregations": []string{"sum"}, "operation": "aggregate"},
					"http_route": map[string]interface{}{"aggregations": []string{"sum"}, "operation": "groupby"},
				},
			},
		},
		{
			Id: "sortBy",
			Options: map[string]interface{}{
				"fields": map[string]interface{}{},
				"sort":   []map[string]interface{}{{"desc": true, "field": "Value (sum)"}},
			},
		},
	}
}

// Endpoints breaks traffic and latency of a service down by route.
func Endpoints(ds DataSources, service string, env Environment) (*dashboard.Section, error) {
	b := newSection(EndpointsName)
	selector := fmt.Sprintf(`service_name='%s', %s, http_route!=""`, service, env.Matcher)

	b.panel("Requests", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(`sum by (http_route)(increase(http_server_request_duration_count{%s}[5m]))`, selector)),
	))

	b.panel("P95 Latency", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(
			`histogram_quantile(0.95, sum by(http_route,le)(increase(http_server_request_duration_bucket{%s}[5m])))`, selector)),
	),
		dashboard.WithUnit(unitSeconds),
		dashboard.WithScaleDistribution(dashboard.LogScale(2)),
	)

	byRoute := []dashboard.PanelOption{
		dashboard.WithOrientation(common.VizOrientationHorizontal),
		dashboard.WithDisplayMode(common.BarGaugeDisplayModeLcd),
		dashboard.WithReduceOptions(dashboard.ReduceOptions{Values: true, Calcs: []string{"sum"}, Fields: `/^Value \(sum\)$/`}),
		dashboard.WithTransformations(routeTotals()...),
	}

	b.panel("Requests Count By Route", dashboard.BarGaugePanel, ds.Mimir, queries(
		metrics(ds.Mimir,
			fmt.Sprintf(`sum by (http_route)(increase(http_server_request_duration_count{%s}[5m]))`, selector),
			dashboard.WithLegendFormat(dashboard.LegendFormatTable)),
	), byRoute...)

	b.panel("Requests Time Spent By Route", dashboard.BarGaugePanel, ds.Mimir, queries(
		metrics(ds.Mimir,
			fmt.Sprintf(`sum by (http_route)(increase(http_server_request_duration_sum{%s}[5m]))`, selector),
			dashboard.WithLegendFormat(dashboard.LegendFormatTable)),
	), append(byRoute, dashboard.WithUnit(unitMillis))...)

	return b.done()
}

// InfrastructureMetrics shows host level resource usage of the hosts selected
// by the Hostname variable.
func InfrastructureMetrics(ds DataSources, name string) (*dashboard.Section, error) {
	b := newSection(name)
	host := "$" + HostnameVariable

	b.panel("Memory Utilization", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(`system_memory_utilization{host_name=~'%s', state!="free"} * 100`, host),
			dashboard.WithLegend("{{host_name}}")),
	), dashboard.WithUnit(unitPercent))

	b.panel("CPU Utilization And Load", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir,
			fmt.Sprintf(`100 * sum by(host_name)(system_cpu_utilization{host_name=~"%s", state!="idle"}) / ignoring(state) sum by(host_name)(system_cpu_utilization{host_name=~"%s"})`, host, host),
			dashboard.WithLegend("{{host_name}} - Utilization"), dashboard.WithQueryID("utilization")),
		metrics(ds.Mimir,
			fmt.Sprintf(`100 * sum(system_cpu_load_average_1m{host_name=~"%s"}) by (host_name) / count(count by (host_name, cpu)(system_cpu_utilization{host_name=~"%s"})) by (host_name)`, host, host),
			dashboard.WithLegend("{{host_name}} - Load"), dashboard.WithQueryID("load")),
	),
		dashboard.WithUnit(unitPercent),
		dashboard.WithOverrides(
			b.override(dashboard.ByQuery("utilization", dashboard.AxisOverride("left", unitPercent, "CPU Utilization")...)),
			b.override(dashboard.ByQuery("load", dashboard.AxisOverride("right", unitPercent, "CPU Load %")...)),
		),
	)

	for _, dir := range []struct{ title, direction string }{
		{"Network Bytes In", "receive"},
		{"Network Bytes Out", "transmit"},
	} {
		b.panel(dir.title, dashboard.TimeSeriesPanel, ds.Mimir, queries(
			metrics(ds.Mimir, fmt.Sprintf(
				`rate(system_network_io{host_name=~'%s', direction="%s", device!="%s"}[5m]) / 1024 / 1024`,
				host, dir.direction, loopbackInterface)),
		), dashboard.WithUnit(unitMBs), dashboard.WithScaleDistribution(dashboard.LogScale(2)))
	}

	for _, dir := range []struct{ title, direction string }{
		{"Disk I/O Read", "read"},
		{"Disk I/O Write", "write"},
	} {
		b.panel(dir.title, dashboard.TimeSeriesPanel, ds.Mimir, queries(
			metrics(ds.Mimir, fmt.Sprintf(
				`avg by (host_name, device)(rate(system_disk_io{host_name=~"%s", direction="%s"}[5m])) / 1024 / 1024`,
				host, dir.direction),
				dashboard.WithLegend("{{device}} - {{host_name}}")),
		), dashboard.WithUnit(unitMBs), dashboard.WithScaleDistribution(dashboard.LogScale(2)))
	}

	b.panel("Disk I/O Time", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(`rate(system_disk_operation_time{host_name=~'%s'}[5m])`, host)),
	), dashboard.WithUnit(unitSeconds), dashboard.WithScaleDistribution(dashboard.LogScale(2)))

	return b.done()
}

// RuntimeMetrics covers the .NET thread pool of a service.
func RuntimeMetrics(ds DataSources, service string, env Environment) (*dashboard.Section, error) {
	b := newSection(RuntimeMetricsName)
	selector := fmt.Sprintf(`service_name="%s", %s`, service, env.Matcher)

	b.panel("Thread Count", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(`sum by(host_name)(process_runtime_dotnet_thread_pool_threads_count{%s})`, selector)),
	))
	b.panel("Thread Contention", dashboard.TimeSeriesPanel, ds.Mimir, queries(
		metrics(ds.Mimir, fmt.Sprintf(`sum by (host_name)(increase(process_runtime_dotnet_monitor_lock_contention_count{%s}[5m]))`, selector)),
	))

	return b.done()
}

func Traces(ds DataSources, service string, env Environment) (*dashboard.Section, error) {
	b := newSection(TracesName)
	b.panel(TracesName, dashboard.TablePanel, ds.Tempo, queries(
		dashboard.NewQuery(dashboard.TracesQuery,
			fmt.Sprintf(`{resource.service.name="%s" && resource.%s}`, service, env.TraceMatcher), ds.Tempo),
	))
	return b.done()
}

func Logs(ds DataSources, service string, env Environment) (*dashboard.Section, error) {
	b := newSection(LogsName)
	b.panel(LogsName, dashboard.TablePanel, ds.Loki, queries(
		dashboard.NewQuery(dashboard.LogsQuery, fmt.Sprintf(`{%s, service_name="%s"}`, env.Matcher, service), ds.Loki),
	))
	return b.done()
}
