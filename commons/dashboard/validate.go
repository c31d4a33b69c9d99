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
	"regexp"
	"strings"
)

// quotedVariableRef matches a $-prefixed token enclosed in a matching pair of
// single or double quotes, e.g. "$Hostname" or '$Env'. Unquoted references are
// not checked.
var quotedVariableRef = regexp.MustCompile(`"(\$[^'"]*)"|'(\$[^'"]*)'`)

// ReferencedVariables returns the names of the quoted variable references in
// expr, in order of appearance. "${Name}" and "${Name:format}" yield Name.
func ReferencedVariables(expr string) []string {
	var names []string
	for _, m := range quotedVariableRef.FindAllStringSubmatch(expr, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		names = append(names, variableName(token))
	}
	return names
}

func variableName(token string) string {
	name := strings.TrimPrefix(token, "$")
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
		if i := strings.IndexByte(name, ':'); i >= 0 {
			name = name[:i]
		}
	}
	return name
}

// Validate fails with a ConfigurationError when a panel has no queries or when
// a query references a quoted variable that is not declared on the dashboard.
// Grafana built-in variables ($__range, $__interval, ...) are always accepted,
// even when quoted, so a quoted "$__range" does not need a declaration.
func (d *Dashboard) Validate() error {
	for _, s := range d.sections {
		for _, p := range s.Panels() {
			if len(p.queries) == 0 {
				return NewConfigurationError(ErrorPanelNoQueries, p.title)
			}
			for _, q := range p.queries {
				for _, name := range ReferencedVariables(q.expr) {
					if strings.HasPrefix(name, BuiltinVariablePrefix) || d.variables.has(name) {
						continue
					}
					return NewConfigurationError(ErrorUndeclaredVariable,
						p.title, q.TrimmedExpr(), name, d.variables.names())
				}
			}
		}
	}
	return nil
}
