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

package k8s

import (
	"context"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// ConfigMapPublisher writes dashboards into ConfigMaps picked up by the
// Grafana provisioning sidecar.
type ConfigMapPublisher struct {
	KubeClient client.Client
	Namespace  string
	Labels     map[string]string
	Log        logr.Logger
}

// DashboardConfigMapName returns the name of the ConfigMap holding uid.
func DashboardConfigMapName(uid string) string {
	return DashboardConfigMapPrefix + uid
}

func (p *ConfigMapPublisher) namespace() string {
	if p.Namespace == "" {
		return DefaultNamespace
	}
	return p.Namespace
}

// Publish creates or updates the dashboard ConfigMap.
func (p *ConfigMapPublisher) Publish(ctx context.Context, env dashboard.Envelope) error {
	uid := env.UID()
	if uid == "" {
		return dashboard.NewConfigurationError(ErrorMissingUID, env.Title())
	}
	doc, err := dashboard.EncodeDocument(env.Dashboard)
	if err != nil {
		return err
	}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: p.namespace(),
			Name:      DashboardConfigMapName(uid),
		},
	}

	op, err := controllerutil.CreateOrUpdate(ctx, p.KubeClient, cm, func() error {
		if cm.Labels == nil {
			cm.Labels = map[string]string{}
		}
		for k, v := range p.Labels {
			cm.Labels[k] = v
		}
		cm.Labels[DashboardLabelKey] = DashboardLabelValue
		cm.Labels[ManagedByLabelKey] = ManagedByLabelValue

		if cm.Annotations == nil {
			cm.Annotations = map[string]string{}
		}
		cm.Annotations[FolderIDAnnotation] = strconv.FormatInt(env.FolderID, 10)
		cm.Annotations[TitleAnnotation] = env.Title()

		cm.Data = map[string]string{uid + ".json": string(doc)}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, ErrorWriteConfigMap, cm.Namespace, cm.Name)
	}

	log := p.Log.WithValues("namespace", cm.Namespace, "name", cm.Name)
	switch op {
	case controllerutil.OperationResultCreated:
		log.Info(LogConfigMapCreated)
	case controllerutil.OperationResultUpdated:
		log.Info(LogConfigMapUpdated)
	default:
		log.V(1).Info(LogConfigMapUnchanged)
	}
	return nil
}

// ListDashboardConfigMaps returns the dashboard ConfigMaps managed by this tool in namespace.
func ListDashboardConfigMaps(ctx context.Context, kubeClient client.Client, namespace string) ([]corev1.ConfigMap, error) {
	list := &corev1.ConfigMapList{}
	if err := kubeClient.List(ctx, list,
		client.InNamespace(namespace),
		client.MatchingLabels{DashboardLabelKey: DashboardLabelValue, ManagedByLabelKey: ManagedByLabelValue},
	); err != nil {
		return nil, err
	}
	return list.Items, nil
}
