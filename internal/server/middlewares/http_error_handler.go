package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mythoughts/server/internal/thoughterror"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler is a middleware that formats rendered errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch err := err.(type) {
	case *echo.HTTPError:
		logrus.WithField("internal", err.Internal).Debug(err.Message)
		_ = c.JSON(err.Code, echo.Map{
			"success": false,
			"message": fmt.Sprintf("%v", err.Message),
		})
	case *thoughterror.Error:
		status := thoughterror.StatusCode(err)
		if status < 500 {
			_ = c.JSON(status, err)
			return
		}

		internal(err, c)
	default:
		internal(err, c)
	}
}

// internal renders a generic 500 carrying a correlation id; the full error
// stays in the server log and is never leaked to the caller.
func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	logrus.WithField("error_id", id).Errorf("%+v", err)

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"message": fmt.Sprintf("Unexpected error (id: %s)", id),
	})
}
