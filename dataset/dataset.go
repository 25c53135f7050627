// Package dataset builds, serializes, and loads the academic domain
// dataset: institution domains mapped to institution names, stoplisted
// domains, and academic TLDs.
package dataset

import (
	"github.com/academe-go/academe/suffixset"
	"go.uber.org/zap"
)

// Dataset is the in-memory classification dataset. All keys are lowercase
// ASCII domain suffixes. A Dataset is never mutated after construction.
type Dataset struct {
	Institutions suffixset.Map[[]string]
	Stoplist     suffixset.Set
	TLDs         suffixset.Set
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{
		Institutions: suffixset.NewMap[[]string](0),
		Stoplist:     suffixset.NewSet(0),
		TLDs:         suffixset.NewSet(0),
	}
}

// Config specifies where the serialized dataset artifact is loaded from.
type Config struct {
	Path string `json:"path"`
}

// Dataset loads the artifact at the configured path. A missing or corrupt
// artifact is not fatal: the error is logged and an empty dataset is
// returned, so every classification query degrades to a non-match.
func (c Config) Dataset(logger *zap.Logger) *Dataset {
	ds, err := ReadFile(c.Path)
	if err != nil {
		logger.Warn("Failed to load dataset artifact, serving empty dataset",
			zap.String("path", c.Path),
			zap.Error(err),
		)
		return New()
	}
	return ds
}
