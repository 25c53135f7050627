package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCaptureProvenanceEnvFallback(t *testing.T) {
	t.Setenv("ACADEME_SOURCE_COMMIT", "0123456789abcdef0123456789abcdef01234567")
	t.Setenv("ACADEME_SOURCE_COMMIT_DATE", "2026-01-02T03:04:05+00:00")
	t.Setenv("ACADEME_SOURCE_ORIGIN", "https://example.com/academic-domains.git")

	var digest [32]byte
	digest[0] = 0xab
	digest[31] = 0xcd

	p := CaptureProvenance(t.TempDir(), digest)
	if p.Commit != "0123456789abcdef0123456789abcdef01234567" {
		t.Errorf("Commit = %q, want env fallback", p.Commit)
	}
	if p.CommitDate != "2026-01-02T03:04:05+00:00" {
		t.Errorf("CommitDate = %q, want env fallback", p.CommitDate)
	}
	if p.Origin != "https://example.com/academic-domains.git" {
		t.Errorf("Origin = %q, want env fallback", p.Origin)
	}
	if !p.Incomplete {
		t.Error("Incomplete = false, want true when git queries fail")
	}
	if want := "ab" + strings.Repeat("00", 30) + "cd"; p.ArtifactDigest != want {
		t.Errorf("ArtifactDigest = %q, want %q", p.ArtifactDigest, want)
	}
	if _, err := time.Parse(time.RFC3339, p.BuiltAt); err != nil {
		t.Errorf("BuiltAt = %q is not RFC 3339: %v", p.BuiltAt, err)
	}
}

func TestCaptureProvenancePlaceholders(t *testing.T) {
	t.Setenv("ACADEME_SOURCE_COMMIT", "")
	t.Setenv("ACADEME_SOURCE_COMMIT_DATE", "")
	t.Setenv("ACADEME_SOURCE_ORIGIN", "")

	p := CaptureProvenance(t.TempDir(), [32]byte{})
	if p.Commit != "unknown" {
		t.Errorf("Commit = %q, want unknown", p.Commit)
	}
	if p.CommitDate != "unknown" {
		t.Errorf("CommitDate = %q, want unknown", p.CommitDate)
	}
	if p.Origin != DefaultOrigin {
		t.Errorf("Origin = %q, want %q", p.Origin, DefaultOrigin)
	}
	if !p.Incomplete {
		t.Error("Incomplete = false, want true when git queries fail")
	}
}

func TestProvenanceWriteGoFile(t *testing.T) {
	p := Provenance{
		Commit:         "0123456789abcdef0123456789abcdef01234567",
		CommitDate:     "2026-01-02T03:04:05+00:00",
		Origin:         "https://github.com/academe-go/academic-domains",
		BuiltAt:        "2026-01-02T03:05:06Z",
		ArtifactDigest: "00112233",
		Incomplete:     true,
	}

	cases := []struct {
		pkg  string
		want string
	}{
		{
			pkg: "dataset",
			want: `// Code generated by academe-dataset-builder. DO NOT EDIT.

package dataset

// BuiltProvenance records the source tree revision the dataset
// artifact was built from.
var BuiltProvenance = Provenance{
	Commit:         "0123456789abcdef0123456789abcdef01234567",
	CommitDate:     "2026-01-02T03:04:05+00:00",
	Origin:         "https://github.com/academe-go/academic-domains",
	BuiltAt:        "2026-01-02T03:05:06Z",
	ArtifactDigest: "00112233",
	Incomplete:     true,
}
`,
		},
		{
			pkg: "main",
			want: `// Code generated by academe-dataset-builder. DO NOT EDIT.

package main

import "github.com/academe-go/academe/dataset"

// BuiltProvenance records the source tree revision the dataset
// artifact was built from.
var BuiltProvenance = dataset.Provenance{
	Commit:         "0123456789abcdef0123456789abcdef01234567",
	CommitDate:     "2026-01-02T03:04:05+00:00",
	Origin:         "https://github.com/academe-go/academic-domains",
	BuiltAt:        "2026-01-02T03:05:06Z",
	ArtifactDigest: "00112233",
	Incomplete:     true,
}
`,
		},
	}

	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "provenance_gen.go")
		if err := p.WriteGoFile(path, c.pkg); err != nil {
			t.Fatalf("WriteGoFile(%q) failed: %v", c.pkg, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != c.want {
			t.Errorf("WriteGoFile(%q) wrote:\n%s\nwant:\n%s", c.pkg, got, c.want)
		}
	}
}
