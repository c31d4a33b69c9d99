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

const (
	DefaultProfile     = "DEFAULT"
	DefaultContentType = "application/json"
)

// Error messages
const (
	ErrorIncompleteAPIKey = "both the OCI ConfigMap and the privateKey secret are required to authorize with API signing key; " +
		"leave them both empty to authorize with a config file or instance principal"
	ErrorConflictingAuth  = "only one of API signing key, config file and instance principal may be used"
	ErrorNoKubeClient     = "a kubernetes client is required to read the OCI API signing key"
	ErrorReadAPIKey       = "failed to read the OCI API signing key"
	ErrorUnknownConfigKey = "unable to identify the key: %s"
	ErrorMissingBucket    = "an object storage bucket is required"
	ErrorMissingUID       = "dashboard %q has no uid, cannot name its object"
	ErrorNamespaceLookup  = "failed to look up the object storage namespace"
	ErrorPutObject        = "failed to upload object %s to bucket %s"
	ErrorObjectStorage    = "failed to create object storage client"
)

// Log Infos
const (
	LogNamespaceResolved = "Resolved object storage namespace"
	LogObjectUploaded    = "Uploaded dashboard to object storage"
)
