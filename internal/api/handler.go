package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/engine"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// TextExtractor converts an uploaded statement document into plain text.
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// processResponse is the JSON response from /api/process: the engine's
// result plus persistence-ready records when a user ID was supplied.
type processResponse struct {
	*models.ProcessingResult
	Records []models.TransactionRecord `json:"records,omitempty"`
}

// Handler holds the HTTP handlers for the statement-processing API.
type Handler struct {
	Engine    *engine.Engine
	Extractor TextExtractor
	Log       zerolog.Logger
}

// Register sets up the HTTP routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/process", h.handleProcess)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

// handleProcess accepts either a "text" form value with pre-extracted
// statement text, or an uploaded PDF in the "file" form field. The
// optional "userId" value makes the response include storage records.
func (h *Handler) handleProcess(c *fiber.Ctx) error {
	userID := c.FormValue("userId")

	text := c.FormValue("text")
	if text == "" {
		extracted, status, err := h.extractUpload(c)
		if err != nil {
			h.Log.Warn().Err(err).Msg("statement upload rejected")
			return c.Status(status).JSON(models.FailureResult(err.Error()))
		}
		text = extracted
	}

	result := h.Engine.ProcessText(text)
	if !result.Success {
		h.Log.Warn().Str("error", result.Error).Msg("statement processing failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}

	resp := processResponse{ProcessingResult: result}
	if userID != "" {
		resp.Records = engine.PrepareRecords(userID, result.Transactions)
	}

	h.Log.Info().
		Int("transactions", result.Summary.Total).
		Str("userId", userID).
		Msg("statement processed")
	return c.JSON(resp)
}

// extractUpload saves the uploaded file to a temp path and runs text
// extraction on it. Returns the HTTP status to use on error.
func (h *Handler) extractUpload(c *fiber.Ctx) (string, int, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", fiber.StatusBadRequest,
			fmt.Errorf("no statement provided; use form field 'text' or upload a PDF as 'file'")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return "", fiber.StatusBadRequest, fmt.Errorf("only PDF uploads are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", fiber.StatusInternalServerError, fmt.Errorf("failed to stage upload: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return "", fiber.StatusInternalServerError, fmt.Errorf("failed to save upload: %w", err)
	}

	text, err := h.Extractor.ExtractFile(tmpPath)
	if err != nil {
		return "", fiber.StatusUnprocessableEntity, fmt.Errorf("text extraction failed: %w", err)
	}
	return text, 0, nil
}
