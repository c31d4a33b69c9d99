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

// DataSources holds the datasource references the catalog panels query.
type DataSources struct {
	Mimir      dashboard.DataSourceRef
	Loki       dashboard.DataSourceRef
	Tempo      dashboard.DataSourceRef
	CloudWatch dashboard.DataSourceRef
	Mixed      dashboard.DataSourceRef
}

func DefaultDataSources() DataSources {
	return DataSources{
		Mimir:      dashboard.DataSourceRef{Type: PrometheusType, UID: DefaultMimirUID},
		Loki:       dashboard.DataSourceRef{Type: LokiType, UID: DefaultLokiUID},
		Tempo:      dashboard.DataSourceRef{Type: TempoType, UID: DefaultTempoUID},
		CloudWatch: dashboard.DataSourceRef{Type: CloudWatchType, UID: DefaultCloudWatchUID},
		Mixed:      dashboard.DataSourceRef{Type: MixedType, UID: MixedUID},
	}
}

// Environment selects the series of one deployment environment. Metrics and
// logs use the underscore label, traces the dotted resource attribute.
type Environment struct {
	Name         string
	Matcher      string
	TraceMatcher string
}

var (
	Prod    = Environment{Name: EnvProd, Matcher: prodMatcher, TraceMatcher: tempoProdMatcher}
	NonProd = Environment{Name: EnvNonProd, Matcher: nonProdMatcher, TraceMatcher: tempoNonProdMatch}
)

// Environments lists the known environments in catalog order.
func Environments() []Environment {
	return []Environment{Prod, NonProd}
}

// EnvironmentFor looks an environment up by name.
func EnvironmentFor(name string) (Environment, error) {
	for _, e := range Environments() {
		if e.Name == name {
			return e, nil
		}
	}
	return Environment{}, dashboard.NewConfigurationError(ErrorUnknownEnvironment, name, []string{EnvProd, EnvNonProd})
}
