package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"scribe/internal/model"
	"scribe/internal/pdf"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/exportPDF", NewExportHandler(pdf.NewRenderer()).Export)
	return router
}

func TestExportHandler(t *testing.T) {
	Convey("POST /exportPDF", t, func() {
		router := newExportRouter()

		Convey("missing content returns 400 with an error field", func() {
			w := postJSON(router, "/exportPDF", `{}`)

			So(w.Code, ShouldEqual, http.StatusBadRequest)

			var resp model.ErrorResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Error, ShouldNotBeEmpty)
		})

		Convey("valid content streams back a PDF attachment", func() {
			w := postJSON(router, "/exportPDF", `{"content":"Some text to export."}`)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/pdf")
			So(w.Header().Get("Content-Disposition"), ShouldEqual, "attachment; filename=export.pdf")
			So(string(w.Body.Bytes()[:5]), ShouldEqual, "%PDF-")
		})
	})
}
