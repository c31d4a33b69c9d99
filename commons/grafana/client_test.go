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

package grafana

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

func testEnvelope() dashboard.Envelope {
	doc, err := dashboard.NewDashboard("Canada Branch Network Monitoring", "snmp-monitoring", "production").Build()
	Expect(err).NotTo(HaveOccurred())
	return dashboard.NewEnvelope(*doc, 34)
}

// unsetAPIKey clears GRAFANA_API_KEY for the current spec.
func unsetAPIKey() {
	if old, ok := os.LookupEnv(EnvVarAPIKey); ok {
		ginkgo.DeferCleanup(os.Setenv, EnvVarAPIKey, old)
	}
	Expect(os.Unsetenv(EnvVarAPIKey)).To(Succeed())
}

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		hits     int32
		status   int
		lastReq  *http.Request
		lastBody []byte
	)

	BeforeEach(func() {
		hits = 0
		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			lastReq = r
			lastBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(status)
			if status == http.StatusOK {
				_, _ = w.Write([]byte(`{"id":1,"uid":"snmp-monitoring-production-dashboard","status":"success","version":3}`))
				return
			}
			_, _ = w.Write([]byte(`{"message":"The dashboard has been changed by someone else"}`))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("fails with a configuration error and no request when the credential is missing", func() {
		unsetAPIKey()
		c := NewClient(server.URL)

		err := c.Publish(context.Background(), testEnvelope())
		Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(EnvVarAPIKey))
		Expect(atomic.LoadInt32(&hits)).To(Equal(int32(0)))
	})

	It("fails a dashboard publish with a configuration error when the credential is missing", func() {
		unsetAPIKey()
		d := dashboard.NewDashboard("t", "svc", "prod")

		err := d.Publish(context.Background(), NewClient(server.URL), 129)
		Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
		Expect(atomic.LoadInt32(&hits)).To(Equal(int32(0)))
	})

	It("reports the missing credential before validating the dashboard", func() {
		unsetAPIKey()
		d := dashboard.NewDashboard("t", "svc", "prod")
		p, err := dashboard.NewPanel("Hosts", dashboard.TimeSeriesPanel, dashboard.DataSourceRef{}, []dashboard.Query{
			dashboard.NewQuery(dashboard.MetricsQuery, `up{host_name=~"$Hostname"}`, dashboard.DataSourceRef{}),
		})
		Expect(err).NotTo(HaveOccurred())
		d.AddSection(dashboard.NewSection("s", p))

		err = d.Publish(context.Background(), NewClient(server.URL), 129)
		Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(EnvVarAPIKey))
		Expect(err.Error()).NotTo(ContainSubstring("Hostname"))
		Expect(d.Built()).To(BeNil())
		Expect(atomic.LoadInt32(&hits)).To(Equal(int32(0)))
	})

	It("passes the preflight with a credential and a valid url", func() {
		Expect(NewClient(server.URL, WithAPIKey("secret")).Preflight(context.Background())).To(Succeed())
		err := NewClient("grafana.local", WithAPIKey("secret")).Preflight(context.Background())
		Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
	})

	It("reads the credential from the environment at publish time", func() {
		unsetAPIKey()
		c := NewClient(server.URL)
		ginkgo.DeferCleanup(os.Unsetenv, EnvVarAPIKey)
		Expect(os.Setenv(EnvVarAPIKey, "from-env")).To(Succeed())

		Expect(c.Publish(context.Background(), testEnvelope())).To(Succeed())
		Expect(lastReq.Header.Get("Authorization")).To(Equal("Bearer from-env"))
	})

	It("posts the sorted envelope with bearer and json headers", func() {
		env := testEnvelope()
		c := NewClient(server.URL+"/", WithAPIKey("secret"))

		Expect(c.Publish(context.Background(), env)).To(Succeed())
		Expect(atomic.LoadInt32(&hits)).To(Equal(int32(1)))
		Expect(lastReq.Method).To(Equal(http.MethodPost))
		Expect(lastReq.URL.Path).To(Equal(DashboardImportPath))
		Expect(lastReq.Header.Get("Authorization")).To(Equal("Bearer secret"))
		Expect(lastReq.Header.Get("Content-Type")).To(Equal("application/json"))

		want, err := dashboard.EncodeEnvelope(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(lastBody)).To(Equal(string(want)))
		Expect(lastBody).To(MatchJSON(`{"dashboard":` + mustDoc(env) + `,"folderId":34,"overwrite":true}`))
	})

	It("maps non-success answers to a transport error without retrying", func() {
		status = http.StatusPreconditionFailed
		c := NewClient(server.URL, WithAPIKey("secret"))

		err := c.Publish(context.Background(), testEnvelope())
		Expect(dashboard.IsTransportError(err)).To(BeTrue())
		te := err.(*dashboard.TransportError)
		Expect(te.StatusCode).To(Equal(http.StatusPreconditionFailed))
		Expect(te.Detail).To(ContainSubstring("changed by someone else"))
		Expect(atomic.LoadInt32(&hits)).To(Equal(int32(1)))
	})

	It("reports unreachable endpoints as transport errors", func() {
		server.Close()
		c := NewClient(server.URL, WithAPIKey("secret"), WithTimeout(time.Second))
		err := c.Publish(context.Background(), testEnvelope())
		Expect(dashboard.IsTransportError(err)).To(BeTrue())
	})

	It("rejects a malformed base url before any request", func() {
		c := NewClient("grafana.local", WithAPIKey("secret"))
		err := c.Publish(context.Background(), testEnvelope())
		Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
	})

	It("uses a custom http client", func() {
		custom := &http.Client{Timeout: 2 * time.Second}
		c := NewClient(server.URL, WithHTTPClient(custom), WithAPIKey("secret"))
		Expect(c.httpClient).To(Equal(custom))
		Expect(c.Publish(context.Background(), testEnvelope())).To(Succeed())
	})
})

func mustDoc(env dashboard.Envelope) string {
	out, err := dashboard.EncodeDocument(env.Dashboard)
	Expect(err).NotTo(HaveOccurred())
	return string(out)
}
