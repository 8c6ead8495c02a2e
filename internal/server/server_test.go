package server_test

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/appleboy/gofight/v2"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mythoughts/server/internal/database"
	"github.com/mythoughts/server/internal/model"
	"github.com/mythoughts/server/internal/server"
	"github.com/stretchr/testify/assert"
)

func TestRequestHome(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func TestRequestVersion(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/version").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func setup() (engine *echo.Echo, ctrl server.Controller, r *gofight.RequestConfig, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "mythoughts.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename)
	if err != nil {
		panic(err)
	}

	ctrl = server.Controller{
		Version:    "test",
		Database:   db,
		SigningKey: []byte("secret"),
	}
	engine = server.EchoEngine(ctrl)

	return engine, ctrl, gofight.New(), func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func authorization(ctrl server.Controller, ownerID string) gofight.H {
	return gofight.H{
		"Authorization": "Bearer " + server.CreateToken(ctrl, ownerID),
	}
}

// createThought persists a record directly in the store, bypassing the API.
// createdAgo backdates the creation so listing order is deterministic.
func createThought(ctrl server.Controller, ownerID, content string, createdAgo time.Duration) *model.Thought {
	at := time.Now().UTC().Add(-createdAgo)

	thought := &model.Thought{
		Base: model.Base{
			ID:        uuid.Must(uuid.NewV4()).String(),
			CreatedAt: &at,
			UpdatedAt: &at,
		},
		OwnerID: ownerID,
		Content: content,
	}
	if err := ctrl.Database.Save(thought); err != nil {
		panic(err)
	}
	return thought
}
