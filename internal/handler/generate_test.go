package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"scribe/internal/config"
	"scribe/internal/gemini"
	"scribe/internal/model"
)

func newGenerateRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := gemini.NewDispatcher(&config.GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    upstreamURL,
		Models:     []string{"model-a", "model-b"},
		Timeout:    5 * time.Second,
		MaxRetries: 0,
		RetryDelay: 10 * time.Millisecond,
		CycleDelay: 10 * time.Millisecond,
	})

	router := gin.New()
	router.POST("/generate", NewGenerateHandler(dispatcher).Generate)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateHandler(t *testing.T) {
	Convey("POST /generate", t, func() {
		Convey("a missing prompt returns 400 with an error field", func() {
			router := newGenerateRouter("http://unused.invalid")

			w := postJSON(router, "/generate", `{}`)

			So(w.Code, ShouldEqual, http.StatusBadRequest)

			var resp model.ErrorResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Error, ShouldNotBeEmpty)
		})

		Convey("a successful generation returns the text and model tag", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"hi there"}]}}]}`)
			}))
			defer ts.Close()

			w := postJSON(newGenerateRouter(ts.URL), "/generate",
				`{"prompt":"hello","history":[{"role":"assistant","content":"earlier"}]}`)

			So(w.Code, ShouldEqual, http.StatusOK)

			var resp model.GenerateResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Response, ShouldEqual, "hi there")
			So(resp.Model, ShouldEqual, "model-a")
		})

		Convey("a terminal dispatcher failure returns 500 with a fallback message", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
			}))
			defer ts.Close()

			w := postJSON(newGenerateRouter(ts.URL), "/generate", `{"prompt":"hello"}`)

			So(w.Code, ShouldEqual, http.StatusInternalServerError)

			var resp model.ErrorResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Error, ShouldEqual, "quota exceeded")
			So(resp.Response, ShouldNotBeEmpty)
		})

		Convey("a 2xx envelope without candidate text returns 500", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"candidates":[]}`)
			}))
			defer ts.Close()

			w := postJSON(newGenerateRouter(ts.URL), "/generate", `{"prompt":"hello"}`)

			So(w.Code, ShouldEqual, http.StatusInternalServerError)

			var resp model.ErrorResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Error, ShouldEqual, gemini.ErrEmptyResponse.Error())
		})
	})
}
