package dataset

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"lukechampine.com/blake3"
)

func TestArtifactRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.Institutions["stanford.edu"] = []string{"Stanford University"}
	b.Institutions["ox.ac.uk"] = []string{"University of Oxford", "Oxford University"}
	b.Stoplist.Insert("alumni.stanford.edu")
	b.TLDs.Insert("edu")
	b.TLDs.Insert("ac.uk")

	path := filepath.Join(t.TempDir(), "academic.sbd.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = b.WriteGob(f); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	ds, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if names, ok := ds.Institutions.Lookup("cs.stanford.edu"); !ok || !slices.Equal(names, []string{"Stanford University"}) {
		t.Errorf("Institutions.Lookup(%q) = %v, %v, want [Stanford University], true", "cs.stanford.edu", names, ok)
	}
	if names, _ := ds.Institutions.Lookup("ox.ac.uk"); !slices.Equal(names, []string{"University of Oxford", "Oxford University"}) {
		t.Errorf("Institutions.Lookup(%q) = %v, want name order preserved", "ox.ac.uk", names)
	}
	if !ds.Stoplist.Match("alumni.stanford.edu") {
		t.Errorf("Stoplist.Match(%q) = false, want true", "alumni.stanford.edu")
	}
	if got, want := ds.TLDs.Suffixes(), []string{"ac.uk", "edu"}; !slices.Equal(got, want) {
		t.Errorf("TLDs = %v, want %v", got, want)
	}
}

func TestWriteGobDigest(t *testing.T) {
	b := NewBuilder()
	b.Institutions["mit.edu"] = []string{"Massachusetts Institute of Technology"}
	b.TLDs.Insert("edu")

	var buf bytes.Buffer
	digest, err := b.WriteGob(&buf)
	if err != nil {
		t.Fatal(err)
	}

	zr, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	payload, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if got := blake3.Sum256(payload); got != digest {
		t.Errorf("digest of uncompressed payload = %x, want %x", got, digest)
	}
}

func TestFromReaderCorrupt(t *testing.T) {
	if _, err := FromReader(strings.NewReader("not a gzip artifact")); err == nil {
		t.Error("FromReader with non-gzip input did not fail")
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("gzipped but not gob")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := FromReader(&buf); err == nil {
		t.Error("FromReader with non-gob payload did not fail")
	}
}

func TestConfigDataset(t *testing.T) {
	dir := t.TempDir()
	logger := zap.NewNop()

	b := NewBuilder()
	b.Institutions["stanford.edu"] = []string{"Stanford University"}
	path := filepath.Join(dir, "academic.sbd.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = b.WriteGob(f); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	ds := Config{Path: path}.Dataset(logger)
	if !ds.Institutions.Match("stanford.edu") {
		t.Errorf("Institutions.Match(%q) = false, want true", "stanford.edu")
	}

	// A missing or corrupt artifact degrades to the empty dataset.
	ds = Config{Path: filepath.Join(dir, "missing.sbd.gz")}.Dataset(logger)
	if len(ds.Institutions) != 0 || len(ds.Stoplist) != 0 || len(ds.TLDs) != 0 {
		t.Errorf("missing artifact loaded non-empty dataset: %d institutions, %d stoplisted, %d TLDs",
			len(ds.Institutions), len(ds.Stoplist), len(ds.TLDs))
	}

	corruptPath := filepath.Join(dir, "corrupt.sbd.gz")
	if err = os.WriteFile(corruptPath, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	ds = Config{Path: corruptPath}.Dataset(logger)
	if len(ds.Institutions) != 0 || len(ds.Stoplist) != 0 || len(ds.TLDs) != 0 {
		t.Errorf("corrupt artifact loaded non-empty dataset: %d institutions, %d stoplisted, %d TLDs",
			len(ds.Institutions), len(ds.Stoplist), len(ds.TLDs))
	}
}
