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

package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1 "github.com/oracle/observability-dashboards/apis/dashboards/v1alpha1"
	"github.com/oracle/observability-dashboards/commons/grafana"
	"github.com/oracle/observability-dashboards/commons/k8s"
	"github.com/oracle/observability-dashboards/commons/oci"
	"github.com/oracle/observability-dashboards/commons/publish"
)

// Publish sinks
const (
	SinkGrafana       = "grafana"
	SinkConfigMap     = "configmap"
	SinkObjectStorage = "objectstorage"
)

// sinkFactory creates the publishers named by --sink. The kubernetes client is
// created once and shared between the sinks needing it.
type sinkFactory struct {
	v       *viper.Viper
	catalog *apiv1.DashboardCatalog

	kubeClient    client.Client
	kubeNamespace string
}

func (f *sinkFactory) kube() (client.Client, string, error) {
	if f.kubeClient != nil {
		return f.kubeClient, f.kubeNamespace, nil
	}
	c, namespace, err := k8s.NewClient(kubernetesConfigFlags)
	if err != nil {
		return nil, "", err
	}
	f.kubeClient, f.kubeNamespace = c, namespace
	return c, namespace, nil
}

func (f *sinkFactory) grafana() (publish.Sink, error) {
	url := f.v.GetString("grafana-url")
	if url == "" {
		url = f.catalog.Spec.GrafanaURL
	}
	c := grafana.NewClient(url,
		grafana.WithTimeout(f.v.GetDuration("timeout")),
		grafana.WithLogger(ctrl.Log.WithName("grafana")))
	return publish.Sink{Name: SinkGrafana, Publisher: c}, nil
}

func (f *sinkFactory) configMap() (publish.Sink, error) {
	c, namespace, err := f.kube()
	if err != nil {
		return publish.Sink{}, err
	}
	return publish.Sink{Name: SinkConfigMap, Publisher: &k8s.ConfigMapPublisher{
		KubeClient: c,
		Namespace:  namespace,
		Log:        ctrl.Log.WithName("configmap"),
	}}, nil
}

func (f *sinkFactory) objectStorage(ctx context.Context) (publish.Sink, error) {
	auth := oci.AuthConfig{
		ConfigMapName:     f.v.GetString("oci-configmap"),
		SecretName:        f.v.GetString("oci-secret"),
		ConfigFile:        f.v.GetString("oci-config-file"),
		Profile:           f.v.GetString("oci-profile"),
		InstancePrincipal: f.v.GetBool("oci-instance-principal"),
	}

	var kubeClient client.Client
	if auth.ConfigMapName != "" || auth.SecretName != "" {
		c, namespace, err := f.kube()
		if err != nil {
			return publish.Sink{}, err
		}
		kubeClient, auth.Namespace = c, namespace
	}

	provider, err := oci.GetOCIProvider(ctx, kubeClient, auth)
	if err != nil {
		return publish.Sink{}, err
	}
	osClient, err := oci.NewObjectStorageClient(provider)
	if err != nil {
		return publish.Sink{}, err
	}
	return publish.Sink{Name: SinkObjectStorage, Publisher: &oci.ObjectStoragePublisher{
		Client:    osClient,
		Namespace: f.v.GetString("oci-namespace"),
		Bucket:    f.v.GetString("oci-bucket"),
		Prefix:    f.v.GetString("oci-prefix"),
		Log:       ctrl.Log.WithName("objectstorage"),
	}}, nil
}

// publisher combines the requested sinks in the order given.
func (f *sinkFactory) publisher(ctx context.Context, names []string) (*publish.Multi, error) {
	if len(names) == 0 {
		return nil, errors.New("at least one sink is required")
	}

	sinks := make([]publish.Sink, 0, len(names))
	for _, name := range names {
		var (
			s   publish.Sink
			err error
		)
		switch name {
		case SinkGrafana:
			s, err = f.grafana()
		case SinkConfigMap:
			s, err = f.configMap()
		case SinkObjectStorage:
			s, err = f.objectStorage(ctx)
		default:
			return nil, errors.Errorf("unknown sink %q, supported values: %s, %s, %s", name, SinkGrafana, SinkConfigMap, SinkObjectStorage)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create %s sink", name)
		}
		sinks = append(sinks, s)
	}
	return publish.NewMulti(ctrl.Log.WithName("publish"), sinks...), nil
}
