package bbgen_test

import (
	"testing"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

func TestResolvedDependency_Revision(t *testing.T) {
	tests := []struct {
		name    string
		lock    []any
		want    string
		wantErr bool
	}{
		{"git record", []any{"git", "ci@host:org/dep", "abc123", map[string]any{}}, "abc123", false},
		{"three elements", []any{"git", "ci@host:org/dep", "abc123"}, "abc123", false},
		{"too short", []any{"git", "ci@host:org/dep"}, "", true},
		{"non-string revision", []any{"git", "ci@host:org/dep", int64(7)}, "", true},
		{"empty revision", []any{"git", "ci@host:org/dep", ""}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := bbgen.ResolvedDependency{Name: "dep", Lock: tt.lock}
			got, err := dep.Revision()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Revision() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Revision() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLicenseFile_String(t *testing.T) {
	f := bbgen.LicenseFile{Path: "LICENSE", Algorithm: "md5", Digest: "d41d8cd98f00b204e9800998ecf8427e"}
	want := "file://LICENSE;md5=d41d8cd98f00b204e9800998ecf8427e"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
