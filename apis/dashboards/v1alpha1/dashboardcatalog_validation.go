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
	"net/url"
	"regexp"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/oracle/observability-dashboards/commons/sections"
)

// Validate checks a defaulted catalog and reports every problem at once.
func (r *DashboardCatalog) Validate() error {
	var allErrs field.ErrorList

	r.validateHeader(&allErrs)
	r.validateServices(&allErrs)
	r.validateNetwork(&allErrs)
	r.validateJams(&allErrs)

	if len(allErrs) == 0 {
		return nil
	}
	return apierrors.NewInvalid(
		schema.GroupKind{Group: GroupVersion.Group, Kind: CatalogKind},
		r.Name, allErrs)
}

func (r *DashboardCatalog) validateHeader(allErrs *field.ErrorList) {
	if r.Kind != "" && r.Kind != CatalogKind {
		*allErrs = append(*allErrs, field.Invalid(field.NewPath("kind"), r.Kind, "expected "+CatalogKind))
	}
	if r.APIVersion != "" && r.APIVersion != GroupVersion.String() {
		*allErrs = append(*allErrs, field.Invalid(field.NewPath("apiVersion"), r.APIVersion, "expected "+GroupVersion.String()))
	}

	urlPath := field.NewPath("spec").Child("grafanaUrl")
	u, err := url.Parse(r.Spec.GrafanaURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		*allErrs = append(*allErrs, field.Invalid(urlPath, r.Spec.GrafanaURL, "must be an absolute http(s) url"))
	}
}

func (r *DashboardCatalog) validateServices(allErrs *field.ErrorList) {
	path := field.NewPath("spec").Child("services")

	seen := sets.New[string]()
	for i, name := range r.Spec.Services.Names {
		if name == "" {
			*allErrs = append(*allErrs, field.Required(path.Child("names").Index(i), "service name must not be empty"))
			continue
		}
		if seen.Has(name) {
			*allErrs = append(*allErrs, field.Duplicate(path.Child("names").Index(i), name))
		}
		seen.Insert(name)
	}

	for i, env := range r.Spec.Services.Environments {
		if _, err := sections.EnvironmentFor(env); err != nil {
			*allErrs = append(*allErrs, field.NotSupported(path.Child("environments").Index(i), env,
				[]string{sections.EnvProd, sections.EnvNonProd}))
		}
	}

	if r.ServiceFolderID() < 0 {
		*allErrs = append(*allErrs, field.Invalid(path.Child("folderId"), r.ServiceFolderID(), "must not be negative"))
	}
}

func (r *DashboardCatalog) validateNetwork(allErrs *field.ErrorList) {
	if r.NetworkFolderID() < 0 {
		*allErrs = append(*allErrs, field.Invalid(field.NewPath("spec").Child("network", "folderId"),
			r.NetworkFolderID(), "must not be negative"))
	}
}

func (r *DashboardCatalog) validateJams(allErrs *field.ErrorList) {
	path := field.NewPath("spec").Child("jams")
	if r.JamsFolderID() < 0 {
		*allErrs = append(*allErrs, field.Invalid(path.Child("folderId"), r.JamsFolderID(), "must not be negative"))
	}

	seen := sets.New[string]()
	for i, f := range r.Spec.Jams.Folders {
		fp := path.Child("folders").Index(i)
		if f.Name == "" {
			*allErrs = append(*allErrs, field.Required(fp.Child("name"), "folder name must not be empty"))
		} else if seen.Has(f.Name) {
			*allErrs = append(*allErrs, field.Duplicate(fp.Child("name"), f.Name))
		}
		seen.Insert(f.Name)

		if f.HostPattern == "" {
			*allErrs = append(*allErrs, field.Required(fp.Child("hostPattern"), "host pattern must not be empty"))
		} else if _, err := regexp.Compile(f.HostPattern); err != nil {
			*allErrs = append(*allErrs, field.Invalid(fp.Child("hostPattern"), f.HostPattern, err.Error()))
		}
	}
}
