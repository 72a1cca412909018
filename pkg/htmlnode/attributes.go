// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package htmlnode

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attributes is an insertion ordered set of HTML element
// attributes. A nil *Attributes is a valid empty set.
type Attributes struct {
	m *linkedhashmap.Map
}

// NewAttributes creates Attributes from key, value pairs.
// A trailing key without value is ignored.
func NewAttributes(kv ...string) *Attributes {
	a := &Attributes{m: linkedhashmap.New()}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Set(kv[i], kv[i+1])
	}
	return a
}

// Set adds or replaces an attribute. Replacing keeps the
// original insertion position.
func (a *Attributes) Set(key, value string) *Attributes {
	if a.m == nil {
		a.m = linkedhashmap.New()
	}
	a.m.Put(key, value)
	return a
}

// Get returns the value for key
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil || a.m == nil {
		return "", false
	}
	v, ok := a.m.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of attributes
func (a *Attributes) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Size()
}

// Keys returns the attribute names in insertion order
func (a *Attributes) Keys() []string {
	if a.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, a.m.Size())
	for _, k := range a.m.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// String renders the attributes as they appear in an opening
// tag: a leading space and space separated key="value" pairs.
func (a *Attributes) String() string {
	if a.Len() == 0 {
		return ""
	}
	var b strings.Builder
	it := a.m.Iterator()
	for it.Next() {
		fmt.Fprintf(&b, ` %s="%s"`, it.Key(), it.Value())
	}
	return b.String()
}
