package service_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/neeleshs/listara/internal/lserror"
	"github.com/neeleshs/listara/internal/server/service"
	"github.com/stretchr/testify/assert"
)

func TestUpdateItemService(t *testing.T) {
	db, clk, cleanup := setup()
	defer cleanup()

	list := createList(db, "Groceries")
	item := createItem(db, list, "Milk")

	clk.Advance(time.Hour)

	update := service.NewUpdateItem(db, list, item.ID, service.UpdateItemParams{Text: " Milk 2% "})
	assert.NoError(t, update.Execute())
	assert.Equal(t, "Milk 2%", update.Item.Text)

	// Both item and list timestamps are refreshed.
	found, err := db.FindItemByListID(item.ID, list.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Milk 2%", found.Text)
	assert.True(t, found.UpdatedAt.Equal(clk.Now()))

	foundList, err := db.FindList(list.ID)
	assert.NoError(t, err)
	assert.True(t, foundList.UpdatedAt.Equal(clk.Now()))
}

func TestUpdateItemServiceNoDuplicateCheck(t *testing.T) {
	db, _, cleanup := setup()
	defer cleanup()

	list := createList(db, "Groceries")
	createItem(db, list, "Milk")
	item := createItem(db, list, "Bread")

	// Edits are not duplicate-checked: this is accepted behavior.
	update := service.NewUpdateItem(db, list, item.ID, service.UpdateItemParams{Text: "Milk"})
	assert.NoError(t, update.Execute())
	assert.Equal(t, "Milk", update.Item.Text)
}

func TestUpdateItemServiceValidation(t *testing.T) {
	db, _, cleanup := setup()
	defer cleanup()

	list := createList(db, "Groceries")
	item := createItem(db, list, "Milk")

	update := service.NewUpdateItem(db, list, item.ID, service.UpdateItemParams{Text: "   "})
	err := update.Execute()
	assert.True(t, lserror.IsValidationFailed(err))
	// The item is loaded so the caller can re-render it unchanged.
	if assert.NotNil(t, update.Item) {
		assert.Equal(t, "Milk", update.Item.Text)
	}

	found, err := db.FindItemByListID(item.ID, list.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Milk", found.Text)
}

func TestUpdateItemServiceNotFound(t *testing.T) {
	db, _, cleanup := setup()
	defer cleanup()

	list := createList(db, "Groceries")

	update := service.NewUpdateItem(db, list, uuid.Must(uuid.NewV4()).String(), service.UpdateItemParams{Text: "Milk"})
	assert.True(t, lserror.IsNotFound(update.Execute()))
}
