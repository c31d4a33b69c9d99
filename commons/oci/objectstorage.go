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
	"bytes"
	"context"
	"io"
	"path"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
	"github.com/pkg/errors"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// ObjectStorageAPI is the part of the object storage client the archive publisher uses.
type ObjectStorageAPI interface {
	GetNamespace(ctx context.Context, request objectstorage.GetNamespaceRequest) (objectstorage.GetNamespaceResponse, error)
	PutObject(ctx context.Context, request objectstorage.PutObjectRequest) (objectstorage.PutObjectResponse, error)
}

// NewObjectStorageClient creates an object storage client for provider.
func NewObjectStorageClient(provider common.ConfigurationProvider) (ObjectStorageAPI, error) {
	c, err := objectstorage.NewObjectStorageClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, errors.Wrap(err, ErrorObjectStorage)
	}
	return c, nil
}

// ObjectStoragePublisher archives every published dashboard as
// <prefix>/<folderId>/<uid>.json in an object storage bucket.
type ObjectStoragePublisher struct {
	Client    ObjectStorageAPI
	Namespace string
	Bucket    string
	Prefix    string
	Log       logr.Logger
}

// ObjectName returns the object an envelope is archived under.
func (p *ObjectStoragePublisher) ObjectName(env dashboard.Envelope) string {
	return path.Join(p.Prefix, strconv.FormatInt(env.FolderID, 10), env.UID()+".json")
}

func (p *ObjectStoragePublisher) namespace(ctx context.Context) (string, error) {
	if p.Namespace != "" {
		return p.Namespace, nil
	}
	resp, err := p.Client.GetNamespace(ctx, objectstorage.GetNamespaceRequest{})
	if err != nil {
		return "", errors.Wrap(err, ErrorNamespaceLookup)
	}
	if resp.Value == nil {
		return "", errors.New(ErrorNamespaceLookup)
	}
	p.Namespace = *resp.Value
	p.Log.V(1).Info(LogNamespaceResolved, "namespace", p.Namespace)
	return p.Namespace, nil
}

func (p *ObjectStoragePublisher) Publish(ctx context.Context, env dashboard.Envelope) error {
	if p.Bucket == "" {
		return dashboard.NewConfigurationError(ErrorMissingBucket)
	}
	if env.UID() == "" {
		return dashboard.NewConfigurationError(ErrorMissingUID, env.Title())
	}

	body, err := dashboard.EncodeEnvelope(env)
	if err != nil {
		return err
	}

	namespace, err := p.namespace(ctx)
	if err != nil {
		return err
	}

	name := p.ObjectName(env)
	_, err = p.Client.PutObject(ctx, objectstorage.PutObjectRequest{
		NamespaceName: common.String(namespace),
		BucketName:    common.String(p.Bucket),
		ObjectName:    common.String(name),
		ContentLength: common.Int64(int64(len(body))),
		ContentType:   common.String(DefaultContentType),
		PutObjectBody: io.NopCloser(bytes.NewReader(body)),
	})
	if err != nil {
		return errors.Wrapf(err, ErrorPutObject, name, p.Bucket)
	}
	p.Log.Info(LogObjectUploaded, "bucket", p.Bucket, "object", name)
	return nil
}
