package service_test

import (
	"os"
	"time"

	"github.com/gofrs/uuid"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/model"
	"github.com/neeleshs/listara/pkg/clock"
)

const retention = 30 * 24 * time.Hour

func setup() (db database.Client, clk *clock.Mock, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "listara.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	clk = clock.NewMock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	db, err = database.StormOpen(filename, clk)
	if err != nil {
		panic(err)
	}

	return db, clk, func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func createList(db database.Client, name string) *model.List {
	list := &model.List{
		Base: model.Base{ID: uuid.Must(uuid.NewV4()).String()},
		Name: name,
	}
	if err := db.Save(list); err != nil {
		panic(err)
	}
	return list
}

func createItem(db database.Client, list *model.List, text string) *model.Item {
	item := &model.Item{
		ListID: list.ID,
		Text:   text,
	}
	if err := db.Save(item); err != nil {
		panic(err)
	}
	return item
}
