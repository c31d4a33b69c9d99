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
	"context"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/yaml"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// DashboardDeployer builds and publishes catalog targets. Each target is
// handled independently: a failing dashboard is logged and reported, the
// remaining ones are still published.
type DashboardDeployer struct {
	Publisher dashboard.Publisher
	Log       logr.Logger
}

// Deploy publishes every target and returns an aggregate of the failures.
func (r *DashboardDeployer) Deploy(ctx context.Context, targets []Target) error {
	if r.Publisher == nil {
		return dashboard.NewConfigurationError(ErrorNoPublisher)
	}
	r.Log.Info(LogDeployStart, "count", len(targets))

	var errs []error
	for _, t := range targets {
		log := r.Log.WithValues("target", t.Name, "uid", t.Dashboard.UID())
		if err := t.Dashboard.Publish(logf.IntoContext(ctx, log), r.Publisher, t.FolderID); err != nil {
			log.Error(err, "Failed to deploy dashboard")
			errs = append(errs, errors.Wrapf(err, ErrorTargetFailed, t.Name))
			continue
		}
		log.Info(LogDeployed, "folderId", t.FolderID)
	}

	r.Log.Info(LogDeployFinished, "succeeded", len(targets)-len(errs), "failed", len(errs))
	return utilerrors.NewAggregate(errs)
}

// Validate builds every target without publishing it.
func (r *DashboardDeployer) Validate(targets []Target) error {
	var errs []error
	for _, t := range targets {
		if _, err := t.Dashboard.Build(); err != nil {
			r.Log.Error(err, "Dashboard failed validation", "target", t.Name)
			errs = append(errs, errors.Wrapf(err, ErrorTargetFailed, t.Name))
			continue
		}
		r.Log.V(1).Info(LogValidated, "target", t.Name)
	}
	return utilerrors.NewAggregate(errs)
}

// Render writes each target as <uid>.<format> into dir instead of publishing it.
func (r *DashboardDeployer) Render(targets []Target, dir, format string) error {
	if format != FormatJSON && format != FormatYAML {
		return dashboard.NewConfigurationError(ErrorUnknownFormat, format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, ErrorCreateOutDir, dir)
	}

	var errs []error
	for _, t := range targets {
		file, err := r.render(t, dir, format)
		if err != nil {
			r.Log.Error(err, "Failed to render dashboard", "target", t.Name)
			errs = append(errs, errors.Wrapf(err, ErrorTargetFailed, t.Name))
			continue
		}
		r.Log.Info(LogRendered, "target", t.Name, "file", file)
	}
	return utilerrors.NewAggregate(errs)
}

func (r *DashboardDeployer) render(t Target, dir, format string) (string, error) {
	doc, err := t.Dashboard.Build()
	if err != nil {
		return "", err
	}
	out, err := dashboard.EncodeDocument(*doc)
	if err != nil {
		return "", err
	}
	if format == FormatYAML {
		if out, err = yaml.JSONToYAML(out); err != nil {
			return "", errors.Wrapf(err, ErrorConvertToYAML, t.Name)
		}
	}

	file := filepath.Join(dir, t.Dashboard.UID()+"."+format)
	if err := os.WriteFile(file, out, 0o644); err != nil {
		return "", errors.Wrapf(err, ErrorWriteDocument, file)
	}
	return file, nil
}
