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

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/oracle/observability-dashboards/commons/k8s"
)

const (
	regionKey      = "region"
	fingerprintKey = "fingerprint"
	userKey        = "user"
	tenancyKey     = "tenancy"
	passphraseKey  = "passphrase"
	privatekeyKey  = "privatekey"
)

// AuthConfig selects how to authenticate against OCI. At most one of the
// kubernetes stored API key (ConfigMapName + SecretName), a config file profile
// and instance principal may be used. With nothing set the default
// ~/.oci/config profile is used.
type AuthConfig struct {
	ConfigMapName     string
	SecretName        string
	Namespace         string
	ConfigFile        string
	Profile           string
	InstancePrincipal bool
}

// GetOCIProvider resolves the configuration provider described by authData.
// kubeClient is only needed for the kubernetes stored API key.
func GetOCIProvider(ctx context.Context, kubeClient client.Client, authData AuthConfig) (common.ConfigurationProvider, error) {
	fromKube := authData.ConfigMapName != "" || authData.SecretName != ""

	switch {
	case fromKube && (authData.ConfigMapName == "" || authData.SecretName == ""):
		return nil, errors.New(ErrorIncompleteAPIKey)
	case fromKube && (authData.InstancePrincipal || authData.ConfigFile != ""):
		return nil, errors.New(ErrorConflictingAuth)
	case authData.InstancePrincipal && authData.ConfigFile != "":
		return nil, errors.New(ErrorConflictingAuth)
	case fromKube:
		if kubeClient == nil {
			return nil, errors.New(ErrorNoKubeClient)
		}
		return getProviderWithAPIKey(ctx, kubeClient, authData)
	case authData.InstancePrincipal:
		return auth.InstancePrincipalConfigurationProvider()
	case authData.ConfigFile != "":
		profile := authData.Profile
		if profile == "" {
			profile = DefaultProfile
		}
		return common.CustomProfileConfigProvider(authData.ConfigFile, profile), nil
	}
	return common.DefaultConfigProvider(), nil
}

func getProviderWithAPIKey(ctx context.Context, kubeClient client.Client, authData AuthConfig) (common.ConfigurationProvider, error) {
	var region, fingerprint, user, tenancy, passphrase string

	ociConfigMap, err := k8s.FetchConfigMap(ctx, kubeClient, authData.Namespace, authData.ConfigMapName)
	if err != nil {
		return nil, errors.Wrap(err, ErrorReadAPIKey)
	}

	for key, val := range ociConfigMap.Data {
		switch key {
		case regionKey:
			region = val
		case fingerprintKey:
			fingerprint = val
		case userKey:
			user = val
		case tenancyKey:
			tenancy = val
		case passphraseKey:
			passphrase = val
		default:
			return nil, errors.Errorf(ErrorUnknownConfigKey, key)
		}
	}

	privatekey, err := k8s.GetSecretValue(ctx, kubeClient, authData.Namespace, authData.SecretName, privatekeyKey)
	if err != nil {
		return nil, errors.Wrap(err, ErrorReadAPIKey)
	}

	return common.NewRawConfigurationProvider(tenancy, user, region, fingerprint, privatekey, &passphrase), nil
}
