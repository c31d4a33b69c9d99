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

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

func envelopeFor(title, service string, folder int64) dashboard.Envelope {
	doc, err := dashboard.NewDashboard(title, service, "prod").Build()
	Expect(err).NotTo(HaveOccurred())
	return dashboard.NewEnvelope(*doc, folder)
}

var _ = Describe("ConfigMapPublisher", func() {
	var (
		ctx        context.Context
		kubeClient client.Client
		publisher  *ConfigMapPublisher
	)

	BeforeEach(func() {
		ctx = context.Background()
		kubeClient = fake.NewClientBuilder().WithScheme(Scheme()).Build()
		publisher = &ConfigMapPublisher{
			KubeClient: kubeClient,
			Namespace:  "monitoring",
			Labels:     map[string]string{"team": "sre"},
			Log:        logf.Log.WithName("test"),
		}
	})

	It("creates a labelled configmap holding the dashboard document", func() {
		env := envelopeFor("creo | prod | Service Dashboard", "creo", 129)
		Expect(publisher.Publish(ctx, env)).To(Succeed())

		cm, err := FetchConfigMap(ctx, kubeClient, "monitoring", "grafana-dashboard-creo-prod-dashboard")
		Expect(err).NotTo(HaveOccurred())
		Expect(cm.Labels).To(HaveKeyWithValue(DashboardLabelKey, DashboardLabelValue))
		Expect(cm.Labels).To(HaveKeyWithValue("team", "sre"))
		Expect(cm.Annotations).To(HaveKeyWithValue(FolderIDAnnotation, "129"))
		Expect(cm.Annotations).To(HaveKeyWithValue(TitleAnnotation, "creo | prod | Service Dashboard"))
		Expect(cm.Data).To(HaveKey("creo-prod-dashboard.json"))
		Expect(cm.Data["creo-prod-dashboard.json"]).To(ContainSubstring(`"uid": "creo-prod-dashboard"`))
	})

	It("updates an existing configmap in place", func() {
		Expect(publisher.Publish(ctx, envelopeFor("old title", "creo", 129))).To(Succeed())
		Expect(publisher.Publish(ctx, envelopeFor("new title", "creo", 130))).To(Succeed())

		cm, err := FetchConfigMap(ctx, kubeClient, "monitoring", DashboardConfigMapName("creo-prod-dashboard"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cm.Annotations).To(HaveKeyWithValue(FolderIDAnnotation, "130"))
		Expect(cm.Data["creo-prod-dashboard.json"]).To(ContainSubstring("new title"))

		items, err := ListDashboardConfigMaps(ctx, kubeClient, "monitoring")
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))
	})

	It("defaults to the default namespace", func() {
		publisher.Namespace = ""
		Expect(publisher.Publish(ctx, envelopeFor("t", "voltaire", 1))).To(Succeed())
		_, err := FetchConfigMap(ctx, kubeClient, DefaultNamespace, DashboardConfigMapName("voltaire-prod-dashboard"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects documents without uid", func() {
		err := publisher.Publish(ctx, dashboard.Envelope{})
		Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
	})

	It("only lists configmaps it manages", func() {
		foreign := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{
			Namespace: "monitoring",
			Name:      "grafana-dashboard-handmade",
			Labels:    map[string]string{DashboardLabelKey: DashboardLabelValue},
		}}
		Expect(kubeClient.Create(ctx, foreign)).To(Succeed())
		Expect(publisher.Publish(ctx, envelopeFor("t", "creo", 1))).To(Succeed())

		items, err := ListDashboardConfigMaps(ctx, kubeClient, "monitoring")
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))
		Expect(items[0].Name).To(Equal("grafana-dashboard-creo-prod-dashboard"))
	})
})

var _ = Describe("GetSecretValue", func() {
	It("returns a key of a secret and fails on a missing key", func() {
		ctx := context.Background()
		secret := &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "oci-privatekey"},
			Data:       map[string][]byte{"privatekey": []byte("PEM")},
		}
		kubeClient := fake.NewClientBuilder().WithScheme(Scheme()).WithObjects(secret).Build()

		val, err := GetSecretValue(ctx, kubeClient, "default", "oci-privatekey", "privatekey")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("PEM"))

		_, err = GetSecretValue(ctx, kubeClient, "default", "oci-privatekey", "passphrase")
		Expect(err).To(HaveOccurred())
	})
})
