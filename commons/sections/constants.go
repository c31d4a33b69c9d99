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

// Datasource types and default uids of the observability stack
const (
	PrometheusType = "prometheus"
	LokiType       = "loki"
	TempoType      = "tempo"
	CloudWatchType = "cloudwatch"
	MixedType      = "datasource"

	DefaultMimirUID      = "eeou8qj3gbvgge"
	DefaultLokiUID       = "eeou8ipbcojcwc"
	DefaultTempoUID      = "aeou8l7tjqk8wd"
	DefaultCloudWatchUID = "fepgcad6xa4u8b"
	MixedUID             = "-- Mixed --"
)

// Deployment environment matchers
const (
	prodMatcher       = `deployment_environment=~".*_PROD$|Prod"`
	nonProdMatcher    = `deployment_environment!~".*_PROD$|Prod"`
	tempoProdMatcher  = `deployment.environment=~".*_PROD$|Prod"`
	tempoNonProdMatch = `deployment.environment!~".*_PROD$|Prod"`
)

// Environment names
const (
	EnvProd    = "prod"
	EnvNonProd = "nonprod"
)

// HostnameVariable is the dashboard variable host scoped panels filter on.
const HostnameVariable = "Hostname"

// Field units
const (
	unitPercent     = "percent"
	unitPercentUnit = "percentunit"
	unitSeconds     = "s"
	unitMillis      = "ms"
	unitMBs         = "MBs"
	unitNumber      = "none"
)

// Folders
const (
	ServiceFolderID int64 = 129
	NetworkFolderID int64 = 34
	JamsFolderID    int64 = 32
)

// Dashboard tags and identities
const (
	TagDAC = "DAC"

	NetworkTitle   = "Canada Branch Network Monitoring"
	NetworkService = "snmp-monitoring"
	NetworkEnv     = "production"

	JamsTitleFormat   = "JAMS Service Dashboard - %s"
	JamsService       = "jams-lower"
	JamsEnv           = "production"
	ServiceTitleFmt   = "%s | %s | Service Dashboard"
	hostnameQueryFmt  = `label_values(http_server_request_duration_count{service_name="%s", %s}, host_name)`
	jamsHostQueryFmt  = `label_values(system_cpu_utilization{host_name=~"%s"}, host_name)`
	loopbackInterface = "Loopback Pseudo-Interface 1"
)

// Error messages
const (
	ErrorUnknownEnvironment = "unknown deployment environment %q, expected one of %v"
	ErrorEmptyService       = "service name must not be empty"
	ErrorEmptyJamsFolder    = "JAMS folder name and host pattern must not be empty"
)
