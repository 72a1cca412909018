// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package tests

import (
	"flag"
	"strconv"

	"k8s.io/klog/v2"
)

// SetKlogV sets the logging flags when unit tests are run
func SetKlogV(level int) {
	if flag.Lookup("v") == nil {
		klog.InitFlags(nil)
	}
	l := strconv.Itoa(level)
	if f := flag.Lookup("v"); f != nil {
		f.Value.Set(l)
	}
	if f := flag.Lookup("logtostderr"); f != nil {
		f.Value.Set("true")
	}
}
