// /*
// Copyright 2025 The Upbound Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// */

// Package resource contains helpers shared by the per-kind record projections.
// Records never coerce missing upstream data to a zero value: absent fields
// are nil pointers and serialize as JSON null.
package resource

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
)

const errConvertSelector = "failed to convert label selector"

// AllNamespaces is the scope reported in logs for unscoped list calls.
const AllNamespaces = "all namespaces"

// Timestamp formats t as RFC 3339, or returns nil if t is unset.
func Timestamp(t metav1.Time) *string {
	if t.IsZero() {
		return nil
	}
	return ptr.To(t.UTC().Format(time.RFC3339))
}

// TimestampPtr is Timestamp for optional timestamps.
func TimestampPtr(t *metav1.Time) *string {
	if t == nil {
		return nil
	}
	return Timestamp(*t)
}

// Optional returns nil for the empty string.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.To(s)
}

// Scope describes the namespace a list call is scoped to.
func Scope(namespace string) string {
	if namespace == metav1.NamespaceAll {
		return AllNamespaces
	}
	return namespace
}

// ListOptions returns list options filtered by the supplied selectors. Either
// may be empty.
func ListOptions(labelSelector, fieldSelector string) metav1.ListOptions {
	return metav1.ListOptions{LabelSelector: labelSelector, FieldSelector: fieldSelector}
}

// Selector renders ls as a label selector string: comma separated key=value
// pairs (and any match expressions) in key order. A nil or empty selector
// renders as the empty string.
func Selector(ls *metav1.LabelSelector) (string, error) {
	if ls == nil || (len(ls.MatchLabels) == 0 && len(ls.MatchExpressions) == 0) {
		return "", nil
	}
	sel, err := metav1.LabelSelectorAsSelector(ls)
	if err != nil {
		return "", errors.Wrap(err, errConvertSelector)
	}
	return sel.String(), nil
}
