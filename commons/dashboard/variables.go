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
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	sdk "github.com/grafana/grafana-foundation-sdk/go/dashboard"
)

// Variable is a dashboard scoped query variable. Custom values are never allowed.
type Variable struct {
	Name       string
	Query      string
	Datasource DataSourceRef
	Multi      bool
	IncludeAll bool
}

func (v Variable) builder() *sdk.QueryVariableBuilder {
	return sdk.NewQueryVariableBuilder(v.Name).
		Query(sdk.StringOrMap{String: cog.ToPtr(v.Query)}).
		Datasource(v.Datasource.sdk()).
		Multi(v.Multi).
		IncludeAll(v.IncludeAll).
		AllowCustomValue(false)
}

// variableSet keeps variables in first-registration order. Registering a name
// again replaces its value in place.
type variableSet struct {
	order []string
	byKey map[string]Variable
}

func (s *variableSet) put(v Variable) {
	if s.byKey == nil {
		s.byKey = map[string]Variable{}
	}
	if _, ok := s.byKey[v.Name]; !ok {
		s.order = append(s.order, v.Name)
	}
	s.byKey[v.Name] = v
}

func (s *variableSet) has(name string) bool {
	_, ok := s.byKey[name]
	return ok
}

func (s *variableSet) names() []string {
	return append([]string{}, s.order...)
}

func (s *variableSet) list() []Variable {
	out := make([]Variable, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.byKey[n])
	}
	return out
}
