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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// DataSourcesSpec names the datasource uids panels query. Empty uids fall
// back to the defaults of the observability stack.
type DataSourcesSpec struct {
	// +kubebuilder:validation:Optional
	Mimir string `json:"mimir,omitempty"`
	// +kubebuilder:validation:Optional
	Loki string `json:"loki,omitempty"`
	// +kubebuilder:validation:Optional
	Tempo string `json:"tempo,omitempty"`
	// +kubebuilder:validation:Optional
	CloudWatch string `json:"cloudWatch,omitempty"`
}

// ServicesSpec lists the services that get a golden path dashboard per environment.
type ServicesSpec struct {
	Names []string `json:"names,omitempty"`
	// +kubebuilder:validation:Enum=prod;nonprod
	Environments []string `json:"environments,omitempty"`
	FolderID     *int64   `json:"folderId,omitempty"`
}

type NetworkSpec struct {
	Enabled  *bool  `json:"enabled,omitempty"`
	FolderID *int64 `json:"folderId,omitempty"`
}

// JamsFolderSpec is one JAMS job folder and the hosts running it.
type JamsFolderSpec struct {
	Name        string `json:"name"`
	HostPattern string `json:"hostPattern"`
}

type JamsSpec struct {
	Enabled  *bool            `json:"enabled,omitempty"`
	FolderID *int64           `json:"folderId,omitempty"`
	Folders  []JamsFolderSpec `json:"folders,omitempty"`
}

// DashboardCatalogSpec defines the dashboards to generate and where they go.
type DashboardCatalogSpec struct {
	// +kubebuilder:validation:Optional
	GrafanaURL string `json:"grafanaUrl,omitempty"`
	// +kubebuilder:validation:Optional
	DataSources DataSourcesSpec `json:"dataSources,omitempty"`
	// +kubebuilder:validation:Optional
	Services ServicesSpec `json:"services,omitempty"`
	// +kubebuilder:validation:Optional
	Network NetworkSpec `json:"network,omitempty"`
	// +kubebuilder:validation:Optional
	Jams JamsSpec `json:"jams,omitempty"`
}

//+kubebuilder:object:root=true

// DashboardCatalog is the Schema for the dashboard catalog configuration
type DashboardCatalog struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec DashboardCatalogSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// DashboardCatalogList contains a list of DashboardCatalog
type DashboardCatalogList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DashboardCatalog `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DashboardCatalog{}, &DashboardCatalogList{})
}

// DeepCopyInto copies the receiver into out.
func (in *DashboardCatalog) DeepCopyInto(out *DashboardCatalog) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

func (in *DashboardCatalog) DeepCopy() *DashboardCatalog {
	if in == nil {
		return nil
	}
	out := new(DashboardCatalog)
	in.DeepCopyInto(out)
	return out
}

func (in *DashboardCatalog) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

func (in *DashboardCatalogList) DeepCopyInto(out *DashboardCatalogList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]DashboardCatalog, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *DashboardCatalogList) DeepCopy() *DashboardCatalogList {
	if in == nil {
		return nil
	}
	out := new(DashboardCatalogList)
	in.DeepCopyInto(out)
	return out
}

func (in *DashboardCatalogList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

func (in *DashboardCatalogSpec) DeepCopyInto(out *DashboardCatalogSpec) {
	*out = *in
	out.Services.Names = append([]string(nil), in.Services.Names...)
	out.Services.Environments = append([]string(nil), in.Services.Environments...)
	out.Services.FolderID = copyInt64(in.Services.FolderID)
	out.Network.Enabled = copyBool(in.Network.Enabled)
	out.Network.FolderID = copyInt64(in.Network.FolderID)
	out.Jams.Enabled = copyBool(in.Jams.Enabled)
	out.Jams.FolderID = copyInt64(in.Jams.FolderID)
	out.Jams.Folders = append([]JamsFolderSpec(nil), in.Jams.Folders...)
}

func copyInt64(in *int64) *int64 {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func copyBool(in *bool) *bool {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
