package v1

import (
	"github.com/academe-go/academe/dataset"
	"github.com/gofiber/fiber/v2"
)

// DatasetInfo describes the loaded dataset.
type DatasetInfo struct {
	Institutions int                `json:"institutions"`
	Stoplist     int                `json:"stoplist"`
	TLDs         int                `json:"tlds"`
	Provenance   dataset.Provenance `json:"provenance"`
}

// GetDataset returns entry counts and provenance of the loaded dataset.
func (h *Handler) GetDataset(c *fiber.Ctx) error {
	return c.JSON(&DatasetInfo{
		Institutions: len(h.ds.Institutions),
		Stoplist:     len(h.ds.Stoplist),
		TLDs:         len(h.ds.TLDs),
		Provenance:   dataset.BuiltProvenance,
	})
}
