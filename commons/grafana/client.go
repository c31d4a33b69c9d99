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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// Client publishes dashboards through the Grafana HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logr.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the bearer credential. When unset, GRAFANA_API_KEY is read
// at publish time.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithTimeout bounds every publish request.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(log logr.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the Grafana instance at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	httpClient := cleanhttp.DefaultClient()
	httpClient.Timeout = DefaultTimeout

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIKeyFromEnv returns the publish credential from the environment.
func APIKeyFromEnv() string {
	return os.Getenv(EnvVarAPIKey)
}

func (c *Client) credential() string {
	if c.apiKey != "" {
		return c.apiKey
	}
	return APIKeyFromEnv()
}

// Publish posts the envelope to the dashboard import endpoint. A missing
// credential fails before any network activity. Any non-2xx answer is a
// dashboard.TransportError carrying the status and response body. There is no retry.
func (c *Client) Publish(ctx context.Context, env dashboard.Envelope) error {
	if err := c.Preflight(ctx); err != nil {
		return err
	}
	apiKey := c.credential()

	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	body, err := dashboard.EncodeEnvelope(env)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, ErrorCreateRequest, env.Title())
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.V(1).Info(LogPublishing, "uid", env.UID(), "folderId", env.FolderID, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(&dashboard.TransportError{Detail: err.Error()}, ErrorRequestFailed, env.Title())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &dashboard.TransportError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}

	var status ImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err == nil {
		c.log.V(1).Info(LogPublished, "uid", status.UID, "version", status.Version, "url", status.URL)
	}
	return nil
}

// Preflight checks the credential and the base url without any network activity.
func (c *Client) Preflight(_ context.Context) error {
	if c.credential() == "" {
		return dashboard.NewConfigurationError(ErrorMissingAPIKey)
	}
	_, err := c.endpoint()
	return err
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", dashboard.NewConfigurationError(ErrorInvalidBaseURL, c.baseURL)
	}
	return c.baseURL + DashboardImportPath, nil
}

// ImportResponse is the body Grafana answers a successful import with.
type ImportResponse struct {
	ID      int64  `json:"id"`
	UID     string `json:"uid"`
	URL     string `json:"url"`
	Status  string `json:"status"`
	Version int64  `json:"version"`
	Slug    string `json:"slug"`
}
