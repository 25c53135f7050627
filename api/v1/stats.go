package v1

import "github.com/gofiber/fiber/v2"

// GetStats returns classification query statistics.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	if c.QueryBool("clear", false) {
		return c.JSON(h.sc.SnapshotAndReset())
	}
	return c.JSON(h.sc.Snapshot())
}
