package common

import (
	"testing"
	"time"
)

func TestCacheService_GetInto(t *testing.T) {
	cs := NewCacheService(60, 600)

	type snapshot struct {
		Names []string
	}
	cs.Set("snap", snapshot{Names: []string{"a", "b"}}, time.Minute)

	var got snapshot
	if !cs.GetInto("snap", &got) {
		t.Fatal("Expected a hit for a stored key")
	}
	if len(got.Names) != 2 || got.Names[0] != "a" {
		t.Errorf("Expected stored value back, got %+v", got)
	}

	if cs.GetInto("missing", &got) {
		t.Error("Expected a miss for an unknown key")
	}

	var wrong int
	if cs.GetInto("snap", &wrong) {
		t.Error("Expected a miss when the target type does not match")
	}

	if cs.GetInto("snap", got) {
		t.Error("Expected a miss for a non-pointer target")
	}
}
