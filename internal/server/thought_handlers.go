package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mythoughts/server/internal/server/serializer"
	"github.com/mythoughts/server/internal/server/service"
	"github.com/mythoughts/server/internal/thoughterror"
)

// thought contains all thought handlers.
type thought struct {
	thoughts *service.Thought
}

type thoughtParams struct {
	// Title is accepted for compatibility with the form payload but never
	// stored; the title is derived from the content's first line at
	// render time.
	Title   string `json:"title"`
	Content string `json:"content"`
}

///// Create
////
//

// Create persists a new thought owned by the authenticated caller.
func (h *thought) Create(c echo.Context) error {
	var params thoughtParams
	if err := c.Bind(&params); err != nil {
		return thoughterror.NewValidation("Could not get thought params.")
	}

	record, err := h.thoughts.Create(currentUserID(c), params.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serializer.Envelope(record))
}

///// List
////
//

// List renders all the caller's thoughts, most recently created first.
func (h *thought) List(c echo.Context) error {
	records, err := h.thoughts.List(currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Envelope(records))
}

///// Get
////
//

// Get renders a single thought as a bare record, without the envelope.
func (h *thought) Get(c echo.Context) error {
	record, err := h.thoughts.Find(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, record)
}

///// Update
////
//

// Update replaces a thought's content.
func (h *thought) Update(c echo.Context) error {
	var params thoughtParams
	if err := c.Bind(&params); err != nil {
		return thoughterror.NewValidation("Could not get thought params.")
	}

	record, err := h.thoughts.UpdateContent(c.Param("id"), params.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Envelope(record))
}

///// Delete
////
//

// Delete removes a thought permanently and renders its last state.
func (h *thought) Delete(c echo.Context) error {
	record, err := h.thoughts.Delete(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Envelope(record))
}
