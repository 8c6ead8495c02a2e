package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mythoughts/server/internal/database"
	"github.com/mythoughts/server/internal/server/middlewares"
	"github.com/mythoughts/server/internal/server/service"
)

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version  string
	Database database.Client
	// Guard params
	SigningKey []byte
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("")
	restricted := router.Group("")
	restricted.Use(middlewares.Guard(ctrl.SigningKey))

	//
	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// thought handlers
	//
	thought := &thought{
		thoughts: service.NewThought(ctrl.Database),
	}
	restricted.POST("/thoughts", thought.Create)
	restricted.GET("/thoughts", thought.List)
	// Single-record operations are reachable by anyone holding a
	// well-formed identifier, matching the reference API.
	router.GET("/thoughts/:id", thought.Get)
	router.PUT("/thoughts/:id", thought.Update)
	router.DELETE("/thoughts/:id", thought.Delete)

	//
	// contact handlers
	//
	contact := &contact{}
	router.POST("/contact", contact.Submit)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}

func currentUserID(c echo.Context) string {
	id, ok := c.Get(middlewares.CurrentUserContextKey).(string)
	if ok {
		return id
	}
	return ""
}
