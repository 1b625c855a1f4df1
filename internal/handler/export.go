package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scribe/internal/model"
	"scribe/internal/pdf"
)

// ExportHandler renders text into a downloadable PDF.
type ExportHandler struct {
	renderer *pdf.Renderer
}

// NewExportHandler creates a PDF export handler.
func NewExportHandler(renderer *pdf.Renderer) *ExportHandler {
	return &ExportHandler{renderer: renderer}
}

// Export handles PDF export.
//
// @Summary      Export text as PDF
// @Description  Word-wraps the submitted text across fixed-size pages and streams back the document
// @Tags         export
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      model.ExportRequest  true  "text to render"
// @Success      200      {file}    binary
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /exportPDF [post]
func (h *ExportHandler) Export(c *gin.Context) {
	var req model.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "content is required",
		})
		return
	}

	doc, err := h.renderer.Render(req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=export.pdf`)
	c.Data(http.StatusOK, "application/pdf", doc.Bytes)
}
