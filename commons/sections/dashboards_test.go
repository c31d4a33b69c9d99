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

package sections

import (
	"strings"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

var _ = Describe("Catalog dashboards", func() {
	ds := DefaultDataSources()

	Context("service dashboards", func() {
		It("build for every environment", func() {
			for _, env := range Environments() {
				d, err := ServiceDashboard(ds, "SummitApi", env)
				Expect(err).NotTo(HaveOccurred())
				doc, err := d.Build()
				Expect(err).NotTo(HaveOccurred())

				tree := asTree(doc)
				Expect(tree["uid"]).To(Equal("summitapi-" + env.Name + "-dashboard"))
				Expect(tree["title"]).To(Equal("SummitApi | " + env.Name + " | Service Dashboard"))
				Expect(d.Tags()).To(Equal([]string{"SummitApi", env.Name, TagDAC}))
				Expect(d.VariableNames()).To(Equal([]string{HostnameVariable}))
			}
		})

		It("lays out the golden path sections in order", func() {
			d, err := ServiceDashboard(ds, "creo", Prod)
			Expect(err).NotTo(HaveOccurred())

			var names []string
			for _, s := range d.Sections() {
				names = append(names, s.Name())
			}
			Expect(names).To(Equal([]string{
				ServiceSummaryName, EndpointsName, HostMetricsName, RuntimeMetricsName, TracesName, LogsName,
			}))

			doc, err := d.Build()
			Expect(err).NotTo(HaveOccurred())
			titles := panelTitles(asTree(doc))
			Expect(titles[0]).To(Equal(ServiceSummaryName))
			Expect(titles).To(ContainElement("CPU Utilization And Load"))
			Expect(titles).To(ContainElement("Requests Time Spent By Route"))
		})

		It("scopes every metrics query to the environment", func() {
			d, err := ServiceDashboard(ds, "voltaire", NonProd)
			Expect(err).NotTo(HaveOccurred())
			summary := d.Sections()[0]
			for _, p := range summary.Panels() {
				for _, q := range p.Queries() {
					Expect(q.Expr()).To(ContainSubstring(nonProdMatcher))
				}
			}
		})

		It("uses the tempo attribute for traces", func() {
			s, err := Traces(ds, "creo", Prod)
			Expect(err).NotTo(HaveOccurred())
			q := s.Panels()[0].Queries()[0]
			Expect(q.Kind()).To(Equal(dashboard.TracesQuery))
			Expect(q.Expr()).To(Equal(`{resource.service.name="creo" && resource.deployment.environment=~".*_PROD$|Prod"}`))
			Expect(q.Datasource()).To(Equal(ds.Tempo))
		})

		It("rejects an empty service", func() {
			_, err := ServiceDashboard(ds, "", Prod)
			Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
		})
	})

	Context("CPU panel", func() {
		It("puts utilization and load on separate axes", func() {
			s, err := InfrastructureMetrics(ds, HostMetricsName)
			Expect(err).NotTo(HaveOccurred())

			var cpu *dashboard.Panel
			for _, p := range s.Panels() {
				if p.Title() == "CPU Utilization And Load" {
					cpu = p
				}
			}
			Expect(cpu).NotTo(Equal((*dashboard.Panel)(nil)))
			overrides := cpu.Overrides()
			Expect(overrides).To(HaveLen(2))
			Expect(overrides[0].Target().QueryRef).To(Equal("utilization"))
			Expect(overrides[1].Values()[0].Value).To(Equal("right"))

			r, err := cpu.Render()
			Expect(err).NotTo(HaveOccurred())
			built, err := r.Panel.Build()
			Expect(err).NotTo(HaveOccurred())
			fieldConfig := asTree(built)["fieldConfig"].(map[string]interface{})
			rendered := fieldConfig["overrides"].([]interface{})
			matcher := rendered[1].(map[string]interface{})["matcher"].(map[string]interface{})
			Expect(matcher["options"]).To(Equal("B"))
		})
	})

	Context("network dashboard", func() {
		It("builds heatmaps and histograms per device", func() {
			d, err := NetworkDashboard(ds)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.UID()).To(Equal("snmp-monitoring-production-dashboard"))

			heatmaps := d.Sections()[0].Panels()
			Expect(heatmaps).To(HaveLen(2))
			Expect(heatmaps[0].Kind()).To(Equal(dashboard.HeatmapPanel))
			Expect(heatmaps[1].Queries()[0].Expr()).To(ContainSubstring(`device_name="vedge"`))
			Expect(heatmaps[0].Queries()[0].LegendFormat()).To(Equal(dashboard.LegendFormatHeatmap))

			histograms := d.Sections()[1].Panels()
			Expect(histograms[0].Kind()).To(Equal(dashboard.HistogramPanel))

			_, err = d.Build()
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("JAMS dashboards", func() {
		It("builds one dashboard per folder with distinct uids", func() {
			a, err := JamsDashboard(ds, "CASHMONEY", "awsuse2pcb[0-9]*")
			Expect(err).NotTo(HaveOccurred())
			b, err := JamsDashboard(ds, "LENDDIRECT", "awsuse2pldb[0-9]*")
			Expect(err).NotTo(HaveOccurred())

			Expect(a.UID()).NotTo(Equal(b.UID()))
			Expect(a.Title()).To(Equal("JAMS Service Dashboard - CASHMONEY"))
			Expect(a.Variables()[0].Query).To(Equal(`label_values(system_cpu_utilization{host_name=~"awsuse2pcb[0-9]*"}, host_name)`))

			_, err = a.Build()
			Expect(err).NotTo(HaveOccurred())
		})

		It("colours every exit severity", func() {
			s, err := JamsMetrics(ds, "BUSAPPS")
			Expect(err).NotTo(HaveOccurred())
			p := s.Panels()[0]
			Expect(p.Queries()[0].Expr()).To(ContainSubstring(`folder="BUSAPPS"`))

			var names []string
			for _, o := range p.Overrides() {
				names = append(names, o.Target().FieldName)
			}
			Expect(names).To(Equal([]string{"Error", "Warning", "Success", "Unknown"}))
		})

		It("rejects a folder without a host pattern", func() {
			_, err := JamsDashboard(ds, "BUSAPPS", "")
			Expect(dashboard.IsConfigurationError(err)).To(BeTrue())
		})
	})

	It("resolves environments by name", func() {
		env, err := EnvironmentFor("nonprod")
		Expect(err).NotTo(HaveOccurred())
		Expect(env).To(Equal(NonProd))

		_, err = EnvironmentFor("staging")
		Expect(err).To(HaveOccurred())
		Expect(strings.Contains(err.Error(), "staging")).To(BeTrue())
	})
})
