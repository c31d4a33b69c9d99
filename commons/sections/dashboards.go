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

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

type sectionFunc func() (*dashboard.Section, error)

func addSections(d *dashboard.Dashboard, fns ...sectionFunc) error {
	for _, fn := range fns {
		s, err := fn()
		if err != nil {
			return err
		}
		d.AddSection(s)
	}
	return nil
}

// ServiceDashboard assembles the golden path dashboard of one service in one
// deployment environment.
func ServiceDashboard(ds DataSources, service string, env Environment) (*dashboard.Dashboard, error) {
	if service == "" {
		return nil, dashboard.NewConfigurationError(ErrorEmptyService)
	}
	d := dashboard.NewDashboard(fmt.Sprintf(ServiceTitleFmt, service, env.Name), service, env.Name,
		dashboard.WithTags(service, env.Name, TagDAC))

	err := d.AddVariable(dashboard.Variable{
		Name:       HostnameVariable,
		Query:      fmt.Sprintf(hostnameQueryFmt, service, env.Matcher),
		Datasource: ds.Mimir,
		Multi:      true,
		IncludeAll: true,
	})
	if err != nil {
		return nil, err
	}

	err = addSections(d,
		func() (*dashboard.Section, error) { return ServiceSummary(ds, service, env) },
		func() (*dashboard.Section, error) { return Endpoints(ds, service, env) },
		func() (*dashboard.Section, error) { return InfrastructureMetrics(ds, HostMetricsName) },
		func() (*dashboard.Section, error) { return RuntimeMetrics(ds, service, env) },
		func() (*dashboard.Section, error) { return Traces(ds, service, env) },
		func() (*dashboard.Section, error) { return Logs(ds, service, env) },
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// NetworkDashboard assembles the branch network monitoring dashboard.
func NetworkDashboard(ds DataSources) (*dashboard.Dashboard, error) {
	d := dashboard.NewDashboard(NetworkTitle, NetworkService, NetworkEnv,
		dashboard.WithTags("snmp", "canada", TagDAC))

	err := addSections(d,
		func() (*dashboard.Section, error) { return NetworkHeatmaps(ds) },
		func() (*dashboard.Section, error) { return NetworkHistograms(ds) },
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// JamsDashboard assembles the dashboard of one JAMS folder. hostPattern is a
// regular expression selecting the hosts running the folder's jobs.
//
// Every JAMS dashboard shares the service and environment, so their uids
// collide unless the folder is folded into the service.
func JamsDashboard(ds DataSources, folder, hostPattern string) (*dashboard.Dashboard, error) {
	if folder == "" || hostPattern == "" {
		return nil, dashboard.NewConfigurationError(ErrorEmptyJamsFolder)
	}
	d := dashboard.NewDashboard(fmt.Sprintf(JamsTitleFormat, folder), JamsService+"-"+folder, JamsEnv,
		dashboard.WithTags("jams", TagDAC, "lower"))

	err := d.AddVariable(dashboard.Variable{
		Name:       HostnameVariable,
		Query:      fmt.Sprintf(jamsHostQueryFmt, hostPattern),
		Datasource: ds.Mimir,
		Multi:      true,
		IncludeAll: true,
	})
	if err != nil {
		return nil, err
	}

	err = addSections(d,
		func() (*dashboard.Section, error) { return InfrastructureMetrics(ds, JamsInfrastructureName) },
		func() (*dashboard.Section, error) { return JamsMetrics(ds, folder) },
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
