package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// contact contains all contact handlers.
type contact struct{}

type contactParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

///// Submit
////
//

// Submit validates and logs a contact-form submission.
// No delivery backend is wired; the submission only lands in the server
// log and the caller gets a canned acknowledgment.
// Note this endpoint's bodies are bare `{message}` objects, not the
// `{success,data}` envelope.
func (h *contact) Submit(c echo.Context) error {
	var params contactParams
	if err := c.Bind(&params); err != nil {
		return err
	}

	if params.Name == "" || params.Email == "" || params.Subject == "" || params.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "All fields are required.",
		})
	}

	logrus.WithFields(logrus.Fields{
		"name":    params.Name,
		"email":   params.Email,
		"subject": params.Subject,
	}).Info("contact form submission")
	logrus.Info(params.Message)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Message sent successfully!",
	})
}
