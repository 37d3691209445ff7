package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/server/service"
	"github.com/neeleshs/listara/pkg/clock"
)

// list contains all list handlers.
type list struct {
	db        database.Client
	clock     clock.Clock
	retention time.Duration
}

///// Home
////
//

// Home renders the list-of-lists shell. The lists themselves live in the
// client-side mirror and are rendered there; the server returns none.
func (h *list) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", service.M{
		"csrf": csrfToken(c),
	})
}

///// Create
////
//

// Create sweeps expired lists and then lazily creates the list with the
// client-supplied id and name. The UI is handled client-side, so the response
// is a bare acknowledgment.
func (h *list) Create(c echo.Context) error {
	params := service.CreateListParams{
		ID:   c.FormValue("list_id"),
		Name: c.FormValue("name"),
	}

	create := service.NewCreateList(h.db, h.clock, h.retention, params)
	if err := create.Execute(); err != nil {
		return err
	}

	return c.String(http.StatusOK, "OK")
}

///// Detail
////
//

// Detail renders a list page. Unknown identifiers are materialized instead of
// producing a not-found, and every visit refreshes the retention clock.
func (h *list) Detail(c echo.Context) error {
	id, err := uuidParam(c, "list_id")
	if err != nil {
		return err
	}

	get := service.NewGetList(h.db, id)
	if err := get.Execute(); err != nil {
		return err
	}

	return c.Render(http.StatusOK, "list_detail", service.M{
		"List":  get.List,
		"Items": get.Items,
		"csrf":  csrfToken(c),
	})
}
