package store_test

import (
	"testing"

	"github.com/servicehall/hallkeeper/internal/hall/store"
)

func TestKeyFor(t *testing.T) {
	cases := []struct {
		id   uint64
		want string
	}{
		{0, "SI-0"},
		{7, "SI-7"},
		{42, "SI-42"},
		{18446744073709551615, "SI-18446744073709551615"},
	}

	for _, c := range cases {
		if got := store.KeyFor(c.id); got != c.want {
			t.Errorf("KeyFor(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestIsRecordKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"SI-1", true},
		{"SI-", true},
		{"SI-abc", true},
		{"record_id", false},
		{"si-1", false},
		{"", false},
	}

	for _, c := range cases {
		if got := store.IsRecordKey(c.key); got != c.want {
			t.Errorf("IsRecordKey(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}
