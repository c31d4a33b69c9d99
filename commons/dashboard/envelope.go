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

package dashboard

import (
	"bytes"
	"context"
	"encoding/json"

	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/pkg/errors"
)

// Publisher delivers a built dashboard somewhere: the Grafana API, a
// provisioning ConfigMap, an object storage archive.
type Publisher interface {
	Publish(ctx context.Context, env Envelope) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, env Envelope) error

func (f PublisherFunc) Publish(ctx context.Context, env Envelope) error {
	return f(ctx, env)
}

// Preflighter is implemented by publishers that can check their own
// configuration, such as credentials, without sending anything.
type Preflighter interface {
	Preflight(ctx context.Context) error
}

// Envelope is the body of a Grafana dashboard import request.
type Envelope struct {
	Dashboard sdk.Dashboard `json:"dashboard"`
	FolderID  int64         `json:"folderId"`
	Overwrite bool          `json:"overwrite"`
}

func NewEnvelope(doc sdk.Dashboard, folderID int64) Envelope {
	return Envelope{Dashboard: doc, FolderID: folderID, Overwrite: true}
}

// UID of the wrapped dashboard, empty when unset.
func (e Envelope) UID() string {
	if e.Dashboard.Uid == nil {
		return ""
	}
	return *e.Dashboard.Uid
}

func (e Envelope) Title() string {
	if e.Dashboard.Title == nil {
		return ""
	}
	return *e.Dashboard.Title
}

// EncodeEnvelope serialises the envelope with sorted keys and a two space indent.
func EncodeEnvelope(env Envelope) ([]byte, error) {
	out, err := encodeSorted(env)
	if err != nil {
		return nil, errors.Wrapf(err, ErrorEncodeFailed, env.Title())
	}
	return out, nil
}

// EncodeDocument serialises a dashboard document alone, the way file based
// provisioning expects it.
func EncodeDocument(doc sdk.Dashboard) ([]byte, error) {
	out, err := encodeSorted(doc)
	if err != nil {
		title := ""
		if doc.Title != nil {
			title = *doc.Title
		}
		return nil, errors.Wrapf(err, ErrorEncodeFailed, title)
	}
	return out, nil
}

// encodeSorted round-trips v through a generic tree so every object, including
// those backed by structs, is written with its keys in lexical order.
func encodeSorted(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, "", "  ")
}
