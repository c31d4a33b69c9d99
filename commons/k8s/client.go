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

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
}

// Scheme returns the scheme the kubernetes clients of this package use.
func Scheme() *runtime.Scheme {
	return scheme
}

// NewClient builds a controller-runtime client from kubectl style flags and
// returns it together with the namespace those flags select.
func NewClient(getter genericclioptions.RESTClientGetter) (client.Client, string, error) {
	cfg, err := getter.ToRESTConfig()
	if err != nil {
		return nil, "", errors.Wrap(err, ErrorKubeConfig)
	}

	namespace, _, err := getter.ToRawKubeConfigLoader().Namespace()
	if err != nil || namespace == "" {
		namespace = DefaultNamespace
	}

	c, err := client.New(cfg, client.Options{Scheme: scheme})
	if err != nil {
		return nil, "", errors.Wrap(err, ErrorKubeClient)
	}
	return c, namespace, nil
}

func FetchConfigMap(ctx context.Context, kubeClient client.Client, namespace string, name string) (*corev1.ConfigMap, error) {
	configMap := &corev1.ConfigMap{}
	if err := kubeClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, configMap); err != nil {
		return nil, err
	}
	return configMap, nil
}

func FetchSecret(ctx context.Context, kubeClient client.Client, namespace string, name string) (*corev1.Secret, error) {
	secret := &corev1.Secret{}
	if err := kubeClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// GetSecretValue returns one key of a secret.
func GetSecretValue(ctx context.Context, kubeClient client.Client, namespace string, name string, key string) (string, error) {
	secret, err := FetchSecret(ctx, kubeClient, namespace, name)
	if err != nil {
		return "", err
	}

	val, ok := secret.Data[key]
	if !ok {
		return "", errors.Errorf(ErrorSecretKeyMissing, namespace, name, key)
	}
	return string(val), nil
}
