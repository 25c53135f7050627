package dataset

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/zap"
)

func writeTreeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuilderFromTree(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "stoplist.txt", "# stoplisted domains\nALUMNI.stanford.edu\n\nec.europa.eu\n")
	writeTreeFile(t, root, "tlds.txt", "edu\nac.uk\n")
	writeTreeFile(t, root, "abused.txt", "spam.edu\n")
	writeTreeFile(t, root, "edu/stanford.txt", "Stanford University\n")
	writeTreeFile(t, root, "edu/mit.txt", "# names\n\n  Massachusetts Institute of Technology  \n")
	writeTreeFile(t, root, "edu/empty.txt", "\n# nothing but comments\n")
	writeTreeFile(t, root, "uk/ac/ox.txt", "University of Oxford\nOxford University\n")
	writeTreeFile(t, root, "de/bücher.txt", "Bücher Hochschule\n")
	writeTreeFile(t, root, "de/xn--bcher-kva.txt", "Duplicate Entry\n")
	writeTreeFile(t, root, "de/köln.txt", "")
	writeTreeFile(t, root, "de/xn--kln-sna.txt", "Universität zu Köln\n")
	writeTreeFile(t, root, "notes.md", "not a line list\n")

	b, err := BuilderFromTree(root, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	// de/bücher.txt and de/xn--bcher-kva.txt derive the same key; the
	// lexically earlier bücher.txt wins. de/köln.txt is empty, so the
	// later xn--kln-sna.txt still claims the key.
	wantInstitutions := map[string][]string{
		"stanford.edu":     {"Stanford University"},
		"mit.edu":          {"Massachusetts Institute of Technology"},
		"ox.ac.uk":         {"University of Oxford", "Oxford University"},
		"xn--bcher-kva.de": {"Bücher Hochschule"},
		"xn--kln-sna.de":   {"Universität zu Köln"},
	}
	if !maps.EqualFunc(b.Institutions, wantInstitutions, slices.Equal) {
		t.Errorf("BuilderFromTree institutions = %v, want %v", b.Institutions, wantInstitutions)
	}

	if got, want := b.Stoplist.Suffixes(), []string{"alumni.stanford.edu", "ec.europa.eu"}; !slices.Equal(got, want) {
		t.Errorf("BuilderFromTree stoplist = %v, want %v", got, want)
	}

	if got, want := b.TLDs.Suffixes(), []string{"ac.uk", "edu"}; !slices.Equal(got, want) {
		t.Errorf("BuilderFromTree TLDs = %v, want %v", got, want)
	}
}

func TestBuilderFromTreeMissingControlFile(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "tlds.txt", "edu\n")
	if _, err := BuilderFromTree(root, zap.NewNop()); err == nil {
		t.Error("BuilderFromTree without stoplist.txt did not fail")
	}

	root = t.TempDir()
	writeTreeFile(t, root, "stoplist.txt", "foo.example\n")
	if _, err := BuilderFromTree(root, zap.NewNop()); err == nil {
		t.Error("BuilderFromTree without tlds.txt did not fail")
	}
}

func TestBuilderDataset(t *testing.T) {
	b := NewBuilder()
	b.Institutions["stanford.edu"] = []string{"Stanford University"}
	b.Stoplist.Insert("alumni.stanford.edu")
	b.TLDs.Insert("edu")

	ds := b.Dataset()
	if names, ok := ds.Institutions.Lookup("cs.stanford.edu"); !ok || !slices.Equal(names, []string{"Stanford University"}) {
		t.Errorf("Institutions.Lookup(%q) = %v, %v, want [Stanford University], true", "cs.stanford.edu", names, ok)
	}
	if !ds.Stoplist.Match("alumni.stanford.edu") {
		t.Errorf("Stoplist.Match(%q) = false, want true", "alumni.stanford.edu")
	}
	if !ds.TLDs.Match("anything.edu") {
		t.Errorf("TLDs.Match(%q) = false, want true", "anything.edu")
	}
}

func TestParseLineList(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"", nil},
		{"# header\n\n  \nfoo.example\n", []string{"foo.example"}},
		{"alpha\r\nbeta\r\n", []string{"alpha", "beta"}},
		{"b\na\nc", []string{"b", "a", "c"}},
		{"  padded  \n\t# indented comment\n", []string{"padded"}},
	}

	for _, c := range cases {
		if got := parseLineList(c.text); !slices.Equal(got, c.want) {
			t.Errorf("parseLineList(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
