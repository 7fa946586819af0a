package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardforge/cardforge/internal/assets"
	"github.com/cardforge/cardforge/internal/cards"
	"github.com/cardforge/cardforge/internal/generation"
	"github.com/cardforge/cardforge/internal/schema"
	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/cardforge/cardforge/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Generator produces validated sheets from prompts.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*sheet.Sheet, error)
}

// CardStore shares and loads cards.
type CardStore interface {
	Share(ctx context.Context, s sheet.Sheet, prompt string) (string, error)
	Get(ctx context.Context, id string) (*sheet.SharedCard, error)
}

// RenderContract is the logical card canvas the frontend lays out against.
var RenderContract = struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	ExportDensity int `json:"exportDensity"`
}{Width: 720, Height: 1280, ExportDensity: 2}

// CardHandler holds dependencies
type CardHandler struct {
	gen   Generator
	cards CardStore
}

func NewCardHandler(gen Generator, store CardStore) *CardHandler {
	return &CardHandler{gen: gen, cards: store}
}

// Register routes under /api. throttle runs in front of the endpoints that cost
// a provider call or a storage write.
func (h *CardHandler) Register(rg *gin.RouterGroup, throttle ...gin.HandlerFunc) {
	a := rg.Group("/api")
	limited := a.Group("", throttle...)
	limited.POST("/generate", h.Generate)
	limited.POST("/share", h.Share)
	a.GET("/cards/:id", h.Get)
	a.POST("/shuffle", h.Shuffle)
	a.GET("/examples", h.Examples)
}

type generateRequest struct {
	UserInput string `json:"userInput"`
}

type sheetRequest struct {
	Sheet  json.RawMessage `json:"sheet"`
	Prompt string          `json:"prompt"`
}

// Generate runs the generation pipeline for { userInput } and returns { sheet }.
func (h *CardHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.gen.Generate(c.Request.Context(), req.UserInput)
	if err != nil {
		var verr *schema.ValidationError
		var gerr *generation.Error
		switch {
		case errors.Is(err, generation.ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, gin.H{"error": "userInput is required"})
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "generated sheet failed validation", "violations": verr.Violations})
		case errors.As(err, &gerr):
			c.JSON(http.StatusBadGateway, gin.H{"error": providerMessage(gerr)})
		default:
			logger.Errorf("generate: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "unknown error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"sheet": s})
}

func providerMessage(e *generation.Error) string {
	if e.Message == "" {
		return "unknown error"
	}
	return e.Message
}

// Share stores { sheet, prompt? } and returns { id }.
func (h *CardHandler) Share(c *gin.Context) {
	req, s, ok := bindSheet(c)
	if !ok {
		return
	}
	id, err := h.cards.Share(c.Request.Context(), *s, req.Prompt)
	if err != nil {
		logger.Errorf("share: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store card"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Get returns the shared card stored under :id.
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.cards.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, cards.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		logger.Errorf("get card %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load card"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// Shuffle moves { sheet } to the next frame and portrait.
func (h *CardHandler) Shuffle(c *gin.Context) {
	_, s, ok := bindSheet(c)
	if !ok {
		return
	}
	next := assets.Shuffle(*s)
	c.JSON(http.StatusOK, gin.H{"sheet": next})
}

// Examples returns the starter prompts, the placeholder sheet and the canvas size.
func (h *CardHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prompts":       sheet.ExamplePrompts,
		"defaultPrompt": sheet.DefaultPrompt,
		"sheet":         sheet.Default(),
		"render":        RenderContract,
	})
}

// bindSheet decodes { sheet } and validates it, writing the error response itself
// when it returns false.
func bindSheet(c *gin.Context) (*sheetRequest, *sheet.Sheet, bool) {
	var req sheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	raw := bytes.TrimSpace(req.Sheet)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sheet is required"})
		return nil, nil, false
	}
	s, err := schema.ValidateJSON(raw)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid sheet", "violations": verr.Violations})
			return nil, nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return &req, s, true
}
