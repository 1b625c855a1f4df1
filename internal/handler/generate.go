package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scribe/internal/gemini"
	"scribe/internal/model"
)

// fallbackMessage is shown to end users when every generation attempt
// has been exhausted.
const fallbackMessage = "Sorry, I couldn't generate a response right now. Please try again in a moment."

// GenerateHandler proxies prompts to the fallback dispatcher.
type GenerateHandler struct {
	dispatcher *gemini.Dispatcher
}

// NewGenerateHandler creates a generation handler.
func NewGenerateHandler(dispatcher *gemini.Dispatcher) *GenerateHandler {
	return &GenerateHandler{dispatcher: dispatcher}
}

// Generate handles prompt generation.
//
// @Summary      Generate a chat completion
// @Description  Sends the prompt and optional history to the generative-language API through the model fallback queue
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  true  "prompt and optional history"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "prompt is required",
		})
		return
	}

	result, err := h.dispatcher.Generate(c.Request.Context(), req.Prompt, req.History)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:    err.Error(),
			Response: fallbackMessage,
		})
		return
	}

	text, err := result.Response.Text()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:    err.Error(),
			Response: fallbackMessage,
		})
		return
	}

	c.JSON(http.StatusOK, model.GenerateResponse{
		Response: text,
		Model:    result.Model,
	})
}
