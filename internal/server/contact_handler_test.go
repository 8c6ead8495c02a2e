package server_test

import (
	"net/http"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/stretchr/testify/assert"
)

func TestRequestContactSubmit(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	params := gofight.D{
		"name":    "George Abitbol",
		"email":   "george.abitbol@nowhere.lan",
		"subject": "Hello",
		"message": "The world's classiest man has a question.",
	}

	r.POST("/contact").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"message":"Message sent successfully!"}`, r.Body.String())
	})

	for _, field := range []string{"name", "email", "subject", "message"} {
		incomplete := gofight.D{}
		for k, v := range params {
			if k != field {
				incomplete[k] = v
			}
		}

		r.POST("/contact").SetJSON(incomplete).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, r.Code, "missing %s", field)
			assert.JSONEq(t, `{"message":"All fields are required."}`, r.Body.String())
		})
	}
}
