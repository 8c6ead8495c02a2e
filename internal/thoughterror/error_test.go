package thoughterror_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mythoughts/server/internal/thoughterror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := thoughterror.NewValidation("some message")

	assert.Equal(t, "some message", err.Error())
	assert.Equal(t, http.StatusBadRequest, thoughterror.StatusCode(err))

	payload, merr := json.Marshal(err)
	assert.NoError(t, merr)
	assert.JSONEq(t, `{"success":false,"message":"some message"}`, string(payload))
}

func TestStatusCodeFallback(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, thoughterror.StatusCode(errors.New("storage exploded")))
	assert.Equal(t, http.StatusNotFound, thoughterror.StatusCode(thoughterror.NewNotFound()))
	assert.Equal(t, http.StatusUnauthorized, thoughterror.StatusCode(thoughterror.NewUnauthenticated()))
}
