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

package publish

import (
	"context"

	"github.com/go-logr/logr"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/oracle/observability-dashboards/commons/dashboard"
)

// Sink is a named publisher.
type Sink struct {
	Name      string
	Publisher dashboard.Publisher
}

// Multi delivers every envelope to all of its sinks in order. A failing sink
// does not stop the others; all failures are returned as one aggregate.
type Multi struct {
	Sinks []Sink
	Log   logr.Logger
}

func NewMulti(log logr.Logger, sinks ...Sink) *Multi {
	return &Multi{Sinks: sinks, Log: log}
}

func (m *Multi) Publish(ctx context.Context, env dashboard.Envelope) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.Publisher.Publish(ctx, env); err != nil {
			m.Log.Error(err, ErrorSinkFailed, "sink", s.Name, "uid", env.UID())
			errs = append(errs, &SinkError{Sink: s.Name, Err: err})
			continue
		}
		m.Log.V(1).Info(LogSinkSucceeded, "sink", s.Name, "uid", env.UID())
	}
	return utilerrors.NewAggregate(errs)
}

// Preflight checks every sink that supports it and aggregates the failures.
func (m *Multi) Preflight(ctx context.Context) error {
	var errs []error
	for _, s := range m.Sinks {
		pf, ok := s.Publisher.(dashboard.Preflighter)
		if !ok {
			continue
		}
		if err := pf.Preflight(ctx); err != nil {
			errs = append(errs, &SinkError{Sink: s.Name, Err: err})
		}
	}
	return utilerrors.NewAggregate(errs)
}

// SinkError attributes a publish failure to a sink.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string {
	return e.Sink + ": " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// Log and error messages
const (
	ErrorSinkFailed  = "sink failed to publish dashboard"
	LogSinkSucceeded = "sink published dashboard"
)
