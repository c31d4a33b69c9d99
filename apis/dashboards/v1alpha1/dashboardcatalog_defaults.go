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

package v1alpha1

import (
	"os"

	"github.com/pkg/errors"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/oracle/observability-dashboards/commons/grafana"
	"github.com/oracle/observability-dashboards/commons/sections"
)

const (
	CatalogKind = "DashboardCatalog"

	ErrorReadCatalog  = "failed to read dashboard catalog %s"
	ErrorParseCatalog = "failed to parse dashboard catalog %s"
)

// DefaultServices are the services with a golden path dashboard when the
// catalog names none.
var DefaultServices = []string{
	"creo", "webanalytics", "SummitApi", "affiliateleads", "Cashmoney",
	"lenddirect", "hotelcardifornia", "tiger-authentication", "voltaire",
}

// DefaultJamsFolders are the JAMS folders monitored when the catalog names none.
var DefaultJamsFolders = []JamsFolderSpec{
	{Name: "CASHMONEY", HostPattern: "awsuse2pcb[0-9]*"},
	{Name: "LENDDIRECT", HostPattern: "awsuse2pldb[0-9]*"},
	{Name: "BUSAPPS", HostPattern: "awsuse2pbsap[0-9]*"},
}

// NewDefaultCatalog returns the built-in catalog.
func NewDefaultCatalog() *DashboardCatalog {
	c := &DashboardCatalog{}
	c.Default()
	return c
}

// Default fills every unset field of the catalog.
func (r *DashboardCatalog) Default() {
	if r.APIVersion == "" {
		r.APIVersion = GroupVersion.String()
	}
	if r.Kind == "" {
		r.Kind = CatalogKind
	}

	spec := &r.Spec
	if spec.GrafanaURL == "" {
		spec.GrafanaURL = grafana.DefaultURL
	}

	ds := &spec.DataSources
	if ds.Mimir == "" {
		ds.Mimir = sections.DefaultMimirUID
	}
	if ds.Loki == "" {
		ds.Loki = sections.DefaultLokiUID
	}
	if ds.Tempo == "" {
		ds.Tempo = sections.DefaultTempoUID
	}
	if ds.CloudWatch == "" {
		ds.CloudWatch = sections.DefaultCloudWatchUID
	}

	if spec.Services.Names == nil {
		spec.Services.Names = append([]string(nil), DefaultServices...)
	}
	if spec.Services.Environments == nil {
		spec.Services.Environments = []string{sections.EnvProd, sections.EnvNonProd}
	}
	if spec.Services.FolderID == nil {
		spec.Services.FolderID = ptr.To(sections.ServiceFolderID)
	}

	if spec.Network.Enabled == nil {
		spec.Network.Enabled = ptr.To(true)
	}
	if spec.Network.FolderID == nil {
		spec.Network.FolderID = ptr.To(sections.NetworkFolderID)
	}

	if spec.Jams.Enabled == nil {
		spec.Jams.Enabled = ptr.To(true)
	}
	if spec.Jams.FolderID == nil {
		spec.Jams.FolderID = ptr.To(sections.JamsFolderID)
	}
	if spec.Jams.Folders == nil {
		spec.Jams.Folders = append([]JamsFolderSpec(nil), DefaultJamsFolders...)
	}
}

// DataSourceRefs returns the datasource references the catalog selects.
func (r *DashboardCatalog) DataSourceRefs() sections.DataSources {
	ds := sections.DefaultDataSources()
	spec := r.Spec.DataSources
	if spec.Mimir != "" {
		ds.Mimir.UID = spec.Mimir
	}
	if spec.Loki != "" {
		ds.Loki.UID = spec.Loki
	}
	if spec.Tempo != "" {
		ds.Tempo.UID = spec.Tempo
	}
	if spec.CloudWatch != "" {
		ds.CloudWatch.UID = spec.CloudWatch
	}
	return ds
}

func (r *DashboardCatalog) NetworkEnabled() bool {
	return ptr.Deref(r.Spec.Network.Enabled, true)
}

func (r *DashboardCatalog) JamsEnabled() bool {
	return ptr.Deref(r.Spec.Jams.Enabled, true)
}

func (r *DashboardCatalog) ServiceFolderID() int64 {
	return ptr.Deref(r.Spec.Services.FolderID, sections.ServiceFolderID)
}

func (r *DashboardCatalog) NetworkFolderID() int64 {
	return ptr.Deref(r.Spec.Network.FolderID, sections.NetworkFolderID)
}

func (r *DashboardCatalog) JamsFolderID() int64 {
	return ptr.Deref(r.Spec.Jams.FolderID, sections.JamsFolderID)
}

// LoadCatalog reads a YAML or JSON catalog from path, applies defaults and validates it.
func LoadCatalog(path string) (*DashboardCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, ErrorReadCatalog, path)
	}
	return ParseCatalog(raw, path)
}

// ParseCatalog decodes a catalog document. Unknown fields are rejected.
func ParseCatalog(raw []byte, source string) (*DashboardCatalog, error) {
	c := &DashboardCatalog{}
	if err := yaml.UnmarshalStrict(raw, c); err != nil {
		return nil, errors.Wrapf(err, ErrorParseCatalog, source)
	}
	c.Default()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
