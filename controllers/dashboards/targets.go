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

package controllers

import (
	"path"

	"github.com/pkg/errors"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	apiv1 "github.com/oracle/observability-dashboards/apis/dashboards/v1alpha1"
	"github.com/oracle/observability-dashboards/commons/dashboard"
	"github.com/oracle/observability-dashboards/commons/sections"
)

// Target is one dashboard of the catalog and the folder it is published to.
type Target struct {
	Name      string
	Dashboard *dashboard.Dashboard
	FolderID  int64
}

// Targets expands the catalog into its dashboards: every service in every
// environment, then the network dashboard, then one dashboard per JAMS folder.
// Entries that cannot be assembled are skipped and reported in the returned
// aggregate; the rest are still returned.
func Targets(catalog *apiv1.DashboardCatalog) ([]Target, error) {
	ds := catalog.DataSourceRefs()

	var (
		targets []Target
		errs    []error
	)
	add := func(name string, folderID int64, d *dashboard.Dashboard, err error) {
		if err != nil {
			errs = append(errs, errors.Wrapf(err, ErrorTargetFailed, name))
			return
		}
		targets = append(targets, Target{Name: name, Dashboard: d, FolderID: folderID})
	}

	for _, service := range catalog.Spec.Services.Names {
		for _, envName := range catalog.Spec.Services.Environments {
			name := path.Join(TargetService, service, envName)
			env, err := sections.EnvironmentFor(envName)
			if err != nil {
				add(name, 0, nil, err)
				continue
			}
			d, err := sections.ServiceDashboard(ds, service, env)
			add(name, catalog.ServiceFolderID(), d, err)
		}
	}

	if catalog.NetworkEnabled() {
		d, err := sections.NetworkDashboard(ds)
		add(TargetNetwork, catalog.NetworkFolderID(), d, err)
	}

	if catalog.JamsEnabled() {
		for _, f := range catalog.Spec.Jams.Folders {
			d, err := sections.JamsDashboard(ds, f.Name, f.HostPattern)
			add(path.Join(TargetJams, f.Name), catalog.JamsFolderID(), d, err)
		}
	}

	return targets, utilerrors.NewAggregate(errs)
}
