package server_test

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/appleboy/gofight/v2"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/model"
	"github.com/neeleshs/listara/internal/server"
	"github.com/neeleshs/listara/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestRequestHome(t *testing.T) {
	engine, _, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), "My Todo Lists")
	})
}

func TestRequestVersion(t *testing.T) {
	engine, _, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/version").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func setup() (engine *echo.Echo, ctrl server.Controller, clk *clock.Mock, r *gofight.RequestConfig, cleanup func()) {
	return setupWithCSRF(true)
}

func setupWithCSRF(disabled bool) (engine *echo.Echo, ctrl server.Controller, clk *clock.Mock, r *gofight.RequestConfig, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "listara.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	clk = clock.NewMock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	db, err := database.StormOpen(filename, clk)
	if err != nil {
		panic(err)
	}

	ctrl = server.Controller{
		Version:      "test",
		Database:     db,
		Clock:        clk,
		RetentionTTL: 30 * 24 * time.Hour,
		DisableCSRF:  disabled,
	}
	engine = server.EchoEngine(ctrl)

	return engine, ctrl, clk, gofight.New(), func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func createList(ctrl server.Controller, name string) *model.List {
	list := &model.List{
		Base: model.Base{ID: uuid.Must(uuid.NewV4()).String()},
		Name: name,
	}
	if err := ctrl.Database.Save(list); err != nil {
		panic(err)
	}
	return list
}

func createItem(ctrl server.Controller, list *model.List, text string) *model.Item {
	item := &model.Item{
		ListID: list.ID,
		Text:   text,
	}
	if err := ctrl.Database.Save(item); err != nil {
		panic(err)
	}
	return item
}
