package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

func TestStringHelpers(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
		attr slog.Attr
	}{
		{"Path", KeyPath, "out/pelicanconf.py", Path("out/pelicanconf.py")},
		{"Format", KeyFormat, "pelican", Format("pelican")},
		{"Site", KeySite, "Code Void", Site("Code Void")},
		{"Field", KeyField, "timezone", Field("timezone")},
		{"Warning", KeyWarning, "unknown zone", Warning("unknown zone")},
		{"Event", KeyEvent, "WRITE", Event("WRITE")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.attr.Key != c.key {
				t.Fatalf("key = %q, want %q", c.attr.Key, c.key)
			}
			if c.attr.Value.String() != c.val {
				t.Fatalf("value = %q, want %q", c.attr.Value.String(), c.val)
			}
		})
	}
}

func TestIntHelpers(t *testing.T) {
	if a := IconCount(10); a.Key != KeyIconCount || a.Value.Int64() != 10 {
		t.Fatalf("IconCount attr = %v", a)
	}
	if a := ExtraPaths(2); a.Key != KeyExtraPaths || a.Value.Int64() != 2 {
		t.Fatalf("ExtraPaths attr = %v", a)
	}
	if a := Bytes(512); a.Key != KeyBytes || a.Value.Int64() != 512 {
		t.Fatalf("Bytes attr = %v", a)
	}
}

func TestError(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should be empty, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("Error attr = %v", a)
	}
}
