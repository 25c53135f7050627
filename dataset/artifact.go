package dataset

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"strings"

	"github.com/academe-go/academe/mmap"
	"github.com/academe-go/academe/suffixset"
	"lukechampine.com/blake3"
)

// artifactGob is the artifact's gob serialization structure.
type artifactGob struct {
	Institutions map[string][]string
	Stoplist     []string
	TLDs         []string
}

// WriteGob writes the builder's dataset to w as a gzip-compressed gob
// artifact and returns the BLAKE3-256 digest of the uncompressed payload.
func (b *Builder) WriteGob(w io.Writer) (digest [32]byte, err error) {
	ag := artifactGob{
		Institutions: b.Institutions,
		Stoplist:     b.Stoplist.Suffixes(),
		TLDs:         b.TLDs.Suffixes(),
	}

	var buf bytes.Buffer
	if err = gob.NewEncoder(&buf).Encode(&ag); err != nil {
		return digest, fmt.Errorf("failed to encode dataset: %w", err)
	}
	digest = blake3.Sum256(buf.Bytes())

	zw := gzip.NewWriter(w)
	if _, err = zw.Write(buf.Bytes()); err != nil {
		return digest, fmt.Errorf("failed to compress dataset: %w", err)
	}
	if err = zw.Close(); err != nil {
		return digest, fmt.Errorf("failed to compress dataset: %w", err)
	}
	return digest, nil
}

// FromReader reads a gzip-compressed gob artifact from r.
func FromReader(r io.Reader) (*Dataset, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dataset: %w", err)
	}

	var ag artifactGob
	if err = gob.NewDecoder(zr).Decode(&ag); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if err = zr.Close(); err != nil {
		return nil, fmt.Errorf("failed to decompress dataset: %w", err)
	}

	return &Dataset{
		Institutions: suffixset.Map[[]string](ag.Institutions),
		Stoplist:     suffixset.SetFromSlice(ag.Stoplist),
		TLDs:         suffixset.SetFromSlice(ag.TLDs),
	}, nil
}

// ReadFile loads the dataset artifact at the named path.
func ReadFile(name string) (*Dataset, error) {
	data, err := mmap.ReadFile[string](name)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset artifact: %w", err)
	}
	defer mmap.Unmap(data)

	return FromReader(strings.NewReader(data))
}
