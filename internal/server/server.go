package server

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/lserror"
	"github.com/neeleshs/listara/internal/server/middlewares"
	"github.com/neeleshs/listara/pkg/clock"
)

// CSRF parameters shared with the cookie-to-header bridge in the base layout.
const (
	CSRFCookieName = "csrftoken"
	CSRFHeaderName = "X-CSRF-Token"
)

// A Controller is used to init the server package.
type Controller struct {
	Version  string
	Database database.Client
	Clock    clock.Clock
	// Retention params
	RetentionTTL time.Duration
	// HTTP params
	DisableCSRF     bool
	AccessLogOutput io.Writer
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.Gzip())

	logconf := middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}
	if ctrl.AccessLogOutput != nil {
		logconf.Output = ctrl.AccessLogOutput
	}
	engine.Use(middleware.LoggerWithConfig(logconf))

	if !ctrl.DisableCSRF {
		engine.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup: "header:" + CSRFHeaderName + ",form:csrf_token",
			CookieName:  CSRFCookieName,
			CookiePath:  "/",
		}))
	}

	engine.Renderer = NewRenderer()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	////////////
	// Router //
	////////////

	// generic handlers
	//
	engine.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// list handlers
	//
	list := &list{
		db:        ctrl.Database,
		clock:     ctrl.Clock,
		retention: ctrl.RetentionTTL,
	}
	engine.GET("/", list.Home)
	engine.POST("/create-list/", list.Create)
	engine.GET("/list/:list_id/", list.Detail)

	//
	// item handlers
	//
	item := &item{
		db: ctrl.Database,
	}
	engine.POST("/list/:list_id/add-item/", item.Add)
	engine.GET("/list/:list_id/item/:item_id/edit-form/", item.EditForm)
	engine.PUT("/list/:list_id/item/:item_id/", item.Update)
	engine.GET("/list/:list_id/item/:item_id/cancel/", item.CancelEdit)
	engine.DELETE("/list/:list_id/item/:item_id/delete/", item.Delete)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
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

// uuidParam returns the canonical form of the given UUID path parameter.
// A malformed identifier behaves like an unknown record.
func uuidParam(c echo.Context, name string) (string, error) {
	id, err := uuid.FromString(c.Param(name))
	if err != nil {
		return "", lserror.NewNotFound(fmt.Sprintf("%s is not a valid UUID", name))
	}
	return id.String(), nil
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
