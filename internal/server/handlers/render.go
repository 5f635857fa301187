// Package handlers implements the HTTP endpoints of the render service.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/errors"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/observability"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/prompt"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/server/middleware"
)

// RenderRequest is the POST /render payload. Exactly one of Template or
// TemplateSlug selects the template text; Data is the review bundle.
type RenderRequest struct {
	Template     string        `json:"template,omitempty"`
	TemplateSlug string        `json:"template_slug,omitempty"`
	Data         review.Bundle `json:"data"`
}

// RenderResponse carries the expanded prompt.
type RenderResponse struct {
	Prompt       string `json:"prompt"`
	TemplateSlug string `json:"template_slug,omitempty"`
	ResultCount  int    `json:"result_count"`
}

// RenderHandler serves template expansion requests against a template
// registry.
type RenderHandler struct {
	Templates prompt.Registry
}

// NewRenderHandler creates a render handler backed by the registry.
func NewRenderHandler(registry prompt.Registry) *RenderHandler {
	return &RenderHandler{Templates: registry}
}

// ServeHTTP handles POST /render.
func (h *RenderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.RespondWithError(w, r, apperrors.WrapInvalidInput(err, "request body is not valid JSON"))
		return
	}

	text := req.Template
	slug := req.TemplateSlug
	switch {
	case text != "" && slug != "":
		apperrors.RespondWithError(w, r, apperrors.NewInvalidInputError("template and template_slug are mutually exclusive"))
		return
	case text == "" && slug == "":
		apperrors.RespondWithError(w, r, apperrors.NewInvalidInputError("template or template_slug is required"))
		return
	case slug != "":
		tmpl, err := h.Templates.Get(slug)
		if err != nil {
			apperrors.RespondWithError(w, r, apperrors.WrapNotFound(err, "unknown template slug"))
			return
		}
		text = tmpl.Text
	}

	expanded := prompt.Expand(text, &req.Data)

	if observability.ServerLogger != nil {
		observability.ServerLogger.Info("rendered prompt",
			zap.String("template_slug", slug),
			zap.Int("result_count", len(req.Data.Results())),
			zap.Int("prompt_bytes", len(expanded)),
			zap.String("request_id", middleware.GetRequestID(r.Context())))
	}

	response := RenderResponse{
		Prompt:       expanded,
		TemplateSlug: slug,
		ResultCount:  len(req.Data.Results()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
