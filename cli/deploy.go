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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/oracle/observability-dashboards/commons/grafana"
	"github.com/oracle/observability-dashboards/commons/oci"
	controllers "github.com/oracle/observability-dashboards/controllers/dashboards"
)

func DeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build and publish the dashboards of the catalog",
		Long: `Builds every dashboard of the catalog and publishes it to each sink.
A dashboard that fails does not stop the others; all failures are reported at the end.

The Grafana sink reads its credential from GRAFANA_API_KEY.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			catalog, targets, err := loadTargets(v)
			if err != nil {
				return err
			}

			factory := &sinkFactory{v: v, catalog: catalog}
			pub, err := factory.publisher(cmd.Context(), v.GetStringSlice("sink"))
			if err != nil {
				return err
			}

			deployer := &controllers.DashboardDeployer{
				Publisher: pub,
				Log:       ctrl.Log.WithName("deploy"),
			}
			return deployer.Deploy(cmd.Context(), targets)
		},
	}

	cmd.Flags().StringSlice("sink", []string{SinkGrafana}, "where dashboards are published. supported values: grafana, configmap, objectstorage")
	cmd.Flags().String("grafana-url", "", "Grafana base url; overrides the catalog")
	cmd.Flags().Duration("timeout", grafana.DefaultTimeout, "timeout of each Grafana request")

	cmd.Flags().String("oci-bucket", "", "object storage bucket dashboards are archived to")
	cmd.Flags().String("oci-namespace", "", "object storage namespace; looked up when unset")
	cmd.Flags().String("oci-prefix", "dashboards", "object name prefix inside the bucket")
	cmd.Flags().String("oci-config-file", "", "OCI config file")
	cmd.Flags().String("oci-profile", oci.DefaultProfile, "profile of the OCI config file")
	cmd.Flags().Bool("oci-instance-principal", false, "authorize with the instance principal")
	cmd.Flags().String("oci-configmap", "", "ConfigMap holding the OCI API signing key settings")
	cmd.Flags().String("oci-secret", "", "Secret holding the OCI API signing private key")

	return cmd
}
