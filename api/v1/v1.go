// Package v1 implements version 1 of the classification API.
package v1

import (
	"github.com/academe-go/academe"
	"github.com/academe-go/academe/classifier"
	"github.com/academe-go/academe/dataset"
	"github.com/academe-go/academe/stats"
	"github.com/gofiber/fiber/v2"
)

// StandardError is the standard error response body.
type StandardError struct {
	Message string `json:"error"`
}

// ServerInfo contains information about the API server.
type ServerInfo struct {
	Name       string `json:"server"`
	APIVersion string `json:"apiVersion"`
	Version    string `json:"version"`
}

var serverInfo = ServerInfo{
	Name:       "academed",
	APIVersion: "v1",
	Version:    academe.Version,
}

// GetServerInfo returns information about the API server.
func GetServerInfo(c *fiber.Ctx) error {
	return c.JSON(&serverInfo)
}

// Handler handles classification API requests.
type Handler struct {
	cl *classifier.Classifier
	ds *dataset.Dataset
	sc stats.Collector
}

// NewHandler returns a new handler answering queries against ds.
func NewHandler(cl *classifier.Classifier, ds *dataset.Dataset, sc stats.Collector) *Handler {
	return &Handler{
		cl: cl,
		ds: ds,
		sc: sc,
	}
}

// Routes sets up routes for the v1 API group.
func (h *Handler) Routes(v1 fiber.Router) {
	v1.Get("", GetServerInfo)
	v1.Get("/classify", h.GetClassify)
	v1.Post("/classify/batch", h.PostClassifyBatch)
	v1.Get("/dataset", h.GetDataset)
	v1.Get("/stats", h.GetStats)
}

// Routes sets up the v1 API group on the router.
func Routes(router fiber.Router, cl *classifier.Classifier, ds *dataset.Dataset, sc stats.Collector) *Handler {
	h := NewHandler(cl, ds, sc)
	h.Routes(router.Group("/v1"))
	return h
}
