package control_test

import (
	"testing"

	"github.com/momentics/vring/control"
)

func TestMetricsRegistry_Basic(t *testing.T) {
	reg := control.NewMetricsRegistry()
	if !reg.Updated().IsZero() {
		t.Error("fresh registry reports an update time")
	}
	reg.Set("foo.count", int64(42))
	reg.Set("bar.status", "ok")

	metrics := reg.GetSnapshot()
	if metrics["foo.count"] != int64(42) {
		t.Error("MetricsRegistry: value mismatch")
	}
	if metrics["bar.status"] != "ok" {
		t.Error("MetricsRegistry: string value mismatch")
	}
	if v, ok := reg.Get("foo.count"); !ok || v != int64(42) {
		t.Errorf("Get(foo.count) = %v, %v", v, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get reported a missing key")
	}
	keys := reg.Keys()
	if len(keys) != 2 || keys[0] != "bar.status" || keys[1] != "foo.count" {
		t.Errorf("Keys() = %v", keys)
	}
	if reg.Updated().IsZero() {
		t.Error("Set did not record an update time")
	}

	// Snapshot is a copy.
	metrics["foo.count"] = 0
	if v, _ := reg.Get("foo.count"); v != int64(42) {
		t.Error("snapshot mutation leaked into registry")
	}
}
