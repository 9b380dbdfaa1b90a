// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"reflect"
	"strings"
	"testing"
)

func TestEntryPoints(t *testing.T) {
	f := new(Functions)
	eps := f.entryPoints()
	if got, exp := len(eps), reflect.TypeOf(*f).NumField(); got != exp {
		t.Fatalf("got %d entry points, expected one per field (%d)", got, exp)
	}
	seen := make(map[string]bool)
	for _, ep := range eps {
		if seen[ep.name] {
			t.Errorf("duplicate entry point %s", ep.name)
		}
		seen[ep.name] = true
		if !strings.HasPrefix(ep.name, "gl") {
			t.Errorf("entry point %s lacks the gl prefix", ep.name)
		}
		v := reflect.ValueOf(ep.fptr)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Func {
			t.Errorf("%s: got %T, expected a pointer to a func", ep.name, ep.fptr)
		}
		if ep.optional && ep.name != "glPointSize" {
			t.Errorf("unexpected optional entry point %s", ep.name)
		}
	}
}

func TestPointSizeMissing(t *testing.T) {
	// Must not panic without glPointSize.
	new(Functions).PointSize(2)
}
