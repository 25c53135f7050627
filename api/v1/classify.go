package v1

import (
	"fmt"

	"github.com/academe-go/academe/classifier"
	"github.com/gofiber/fiber/v2"
)

// maxBatchSize bounds the number of inputs in one batch request.
const maxBatchSize = 1000

func (h *Handler) classify(input string) classifier.Result {
	r := h.cl.Classify(input)
	h.sc.CollectQuery(r.Academic, r.UnderTLD, r.Stoplisted, len(r.SchoolNames) > 0)
	return r
}

// GetClassify classifies the input query parameter.
func (h *Handler) GetClassify(c *fiber.Ctx) error {
	input := c.Query("input")
	if input == "" {
		return c.Status(fiber.StatusBadRequest).JSON(&StandardError{Message: "missing input query parameter"})
	}
	r := h.classify(input)
	return c.JSON(&r)
}

// BatchRequest contains the inputs of a batch classification request.
type BatchRequest struct {
	Inputs []string `json:"inputs"`
}

// BatchResponse contains the results of a batch classification request,
// in input order.
type BatchResponse struct {
	Results []classifier.Result `json:"results"`
}

// PostClassifyBatch classifies every input in the request body.
func (h *Handler) PostClassifyBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(&StandardError{Message: err.Error()})
	}
	if len(req.Inputs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(&StandardError{Message: "no inputs"})
	}
	if len(req.Inputs) > maxBatchSize {
		return c.Status(fiber.StatusBadRequest).JSON(&StandardError{
			Message: fmt.Sprintf("too many inputs: %d > %d", len(req.Inputs), maxBatchSize),
		})
	}

	resp := BatchResponse{Results: make([]classifier.Result, len(req.Inputs))}
	for i, input := range req.Inputs {
		resp.Results[i] = h.classify(input)
	}
	return c.JSON(&resp)
}
