package gemini

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStatusError(t *testing.T) {
	Convey("StatusError", t, func() {
		Convey("uses the upstream message when present", func() {
			err := &StatusError{StatusCode: 429, Message: "quota exceeded"}
			So(err.Error(), ShouldEqual, "quota exceeded")
		})

		Convey("falls back to a generic status message", func() {
			err := &StatusError{StatusCode: 503}
			So(err.Error(), ShouldEqual, "API Error 503")
		})

		Convey("classifies 404, 429 and 500 as transient", func() {
			for status, transient := range map[int]bool{
				404: true,
				429: true,
				500: true,
				400: false,
				401: false,
				403: false,
				503: false,
			} {
				err := &StatusError{StatusCode: status}
				So(err.Transient(), ShouldEqual, transient)
			}
		})
	})
}

func TestGenerateContentResponse_Text(t *testing.T) {
	Convey("GenerateContentResponse.Text", t, func() {
		Convey("returns the first candidate's first part", func() {
			resp := &GenerateContentResponse{
				Candidates: []Candidate{{
					Content: Content{
						Role:  RoleModel,
						Parts: []Part{{Text: "first"}, {Text: "second"}},
					},
				}},
			}

			text, err := resp.Text()
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "first")
		})

		Convey("an empty candidate list is a typed error", func() {
			_, err := (&GenerateContentResponse{}).Text()
			So(err, ShouldEqual, ErrEmptyResponse)
		})

		Convey("a candidate without parts is a typed error", func() {
			resp := &GenerateContentResponse{Candidates: []Candidate{{}}}
			_, err := resp.Text()
			So(err, ShouldEqual, ErrEmptyResponse)
		})
	})
}
