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

package oci

import (
	"context"
	"io"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
	"github.com/pkg/errors"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// fakeObjectStorage keeps uploaded objects in memory.
type fakeObjectStorage struct {
	namespace      string
	namespaceCalls int
	objects        map[string][]byte
	putErr         error
}

func (f *fakeObjectStorage) GetNamespace(_ context.Context, _ objectstorage.GetNamespaceRequest) (objectstorage.GetNamespaceResponse, error) {
	f.namespaceCalls++
	return objectstorage.GetNamespaceResponse{Value: common.String(f.namespace)}, nil
}

func (f *fakeObjectStorage) PutObject(_ context.Context, req objectstorage.PutObjectRequest) (objectstorage.PutObjectResponse, error) {
	if f.putErr != nil {
		return objectstorage.PutObjectResponse{}, f.putErr
	}
	body, err := io.ReadAll(req.PutObjectBody)
	if err != nil {
		return objectstorage.PutObjectResponse{}, err
	}
	key := *req.NamespaceName + "/" + *req.BucketName + "/" + *req.ObjectName
	f.objects[key] = body
	return objectstorage.PutObjectResponse{}, nil
}

func networkEnvelope() dashboard.Envelope {
	doc, err := dashboard.NewDashboard("Canada Branch Network Monitoring", "snmp-monitoring", "production").Build()
	Expect(err).NotTo(HaveOccurred())
	return dashboard.NewEnvelope(*doc, 34)
}

var _ = Describe("ObjectStoragePublisher", func() {
	var (
		ctx       context.Context
		store     *fakeObjectStorage
		publisher *ObjectStoragePublisher
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = &fakeObjectStorage{namespace: "tenancyns", objects: map[string][]byte{}}
		publisher = &ObjectStoragePublisher{
			Client: store,
			Bucket: "dashboards",
			Prefix: "archive",
			Log:    logf.Log.WithName("test"),
		}
	})

	It("uploads the envelope under folder and uid", func() {
		env := networkEnvelope()
		Expect(publisher.Publish(ctx, env)).To(Succeed())

		body, ok := store.objects["tenancyns/dashboards/archive/34/snmp-monitoring-production-dashboard.json"]
		Expect(ok).To(BeTrue())
		want, err := dashboard.EncodeEnvelope(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(MatchJSON(want))
	})

	It("looks the namespace up once", func() {
		Expect(publisher.Publish(ctx, networkEnvelope())).To(Succeed())
		Expect(publisher.Publish(ctx, networkEnvelope())).To(Succeed())
		Expect(store.namespaceCalls).To(Equal(1))
		Expect(publisher.Namespace).To(Equal("tenancyns"))
	})

	It("uses a configured namespace as is", func() {
		publisher.Namespace = "explicit"
		Expect(publisher.Publish(ctx, networkEnvelope())).To(Succeed())
		Expect(store.namespaceCalls).To(Equal(0))
		Expect(store.objects).To(HaveKey("explicit/dashboards/archive/34/snmp-monitoring-production-dashboard.json"))
	})

	It("requires a bucket", func() {
		publisher.Bucket = ""
		Expect(dashboard.IsConfigurationError(publisher.Publish(ctx, networkEnvelope()))).To(BeTrue())
	})

	It("wraps upload failures", func() {
		store.putErr = errors.New("service unavailable")
		err := publisher.Publish(ctx, networkEnvelope())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("archive/34/snmp-monitoring-production-dashboard.json"))
	})
})
