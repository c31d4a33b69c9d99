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

// Dashboard defaults
const (
	DefaultTimeFrom  = "now-1h"
	DefaultTimeTo    = "now"
	DefaultRefresh   = "10s"
	DefaultTimezone  = "browser"
	DefaultUIDSuffix = "dashboard"
)

// Query defaults
const (
	DefaultLegend       = "__auto"
	DefaultLegendFormat = LegendFormatTimeSeries

	LegendFormatTimeSeries = "timeseries"
	LegendFormatTable      = "table"
	LegendFormatHeatmap    = "heatmap"
)

// Panel defaults
const (
	DefaultUnit = "none"

	// MaxQueriesPerPanel is the number of reference letters available to a panel.
	MaxQueriesPerPanel = 26
)

// Override directive ids
const (
	OverrideIDAxisPlacement = "custom.axisPlacement"
	OverrideIDAxisLabel     = "custom.axisLabel"
	OverrideIDUnit          = "unit"
	OverrideIDColor         = "color"
)

// Grafana built-in variables start with this prefix and are never declared on a dashboard
const BuiltinVariablePrefix = "__"

// Error messages
const (
	ErrorOverrideTarget          = "a panel override requires exactly one target to be set: query reference or field name"
	ErrorPanelNoQueries          = "panel %q has no queries defined"
	ErrorPanelTooManyQueries     = "panel %q has %d queries, at most %d are supported"
	ErrorPanelHintNotAllowed     = "panel %q of kind %s does not support the %s option"
	ErrorPanelOverrideUnresolved = "panel %q has an override for query %q which matches no query of the panel"
	ErrorPanelUnknownKind        = "panel %q has an unknown kind %d"
	ErrorQueryUnknownKind        = "query has an unknown kind %d"
	ErrorUndeclaredVariable      = "query references dashboard variable that is not defined, panel will return no data.\n" +
		"Ensure the variable name is spelled correctly (case-sensitive) and has been added to the dashboard.\n" +
		"Panel: %s\n" +
		"Query: %s\n" +
		"Referenced variable: %s\n" +
		"Defined dashboard variables: %v"
	ErrorEmptyTitle       = "dashboard title must not be empty"
	ErrorVariableNoName   = "dashboard variable must have a name"
	ErrorBuildFailed      = "failed to build dashboard %q"
	ErrorEncodeFailed     = "failed to encode dashboard %q"
	ErrorPublishFailed    = "failed to publish dashboard %q"
	ErrorNoPublisher      = "no publisher configured for dashboard %q"
	ErrorRenderPanelQuery = "failed to render query %s of panel %q"
)

// Log Infos
const (
	LogDashboardBuilt     = "Built dashboard"
	LogDashboardPublished = "Published dashboard"
	LogDashboardCached    = "Publishing cached dashboard document"
)
