package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/lserror"
	"github.com/neeleshs/listara/internal/model"
	"github.com/neeleshs/listara/internal/server/service"
)

// item contains all item handlers.
type item struct {
	db database.Client
}

func (h *item) loadList(c echo.Context) (*model.List, error) {
	id, err := uuidParam(c, "list_id")
	if err != nil {
		return nil, err
	}

	list, err := h.db.FindList(id)
	if err != nil {
		if h.db.IsNotFound(err) {
			return nil, lserror.NewNotFound("list not found")
		}
		return nil, err
	}
	return list, nil
}

func (h *item) loadItem(c echo.Context) (*model.Item, error) {
	listID, err := uuidParam(c, "list_id")
	if err != nil {
		return nil, err
	}
	itemID, err := uuidParam(c, "item_id")
	if err != nil {
		return nil, err
	}

	item, err := h.db.FindItemByListID(itemID, listID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return nil, lserror.NewNotFound("item not found")
		}
		return nil, err
	}
	return item, nil
}

///// Add
////
//

// Add appends an item to the list, enforcing the duplicate rule. A rejected
// duplicate is retargeted to the notice container as a transient message
// instead of adding a row.
func (h *item) Add(c echo.Context) error {
	list, err := h.loadList(c)
	if err != nil {
		return err
	}

	add := service.NewAddItem(h.db, list, service.AddItemParams{
		Text: c.FormValue("text"),
	})
	if err := add.Execute(); err != nil {
		if lserror.IsDuplicateItem(err) {
			c.Response().Header().Set("HX-Reswap", "innerHTML")
			c.Response().Header().Set("HX-Retarget", "#message-container")
			return c.Render(http.StatusOK, "duplicate_notice", nil)
		}
		return err
	}

	if add.FirstItem {
		// Replace the empty-state placeholder instead of appending after it.
		c.Response().Header().Set("HX-Reswap", "innerHTML")
	}
	return c.Render(http.StatusOK, "todo_item", add.Item)
}

///// EditForm
////
//

// EditForm returns the editable representation of the item. Pure read.
func (h *item) EditForm(c echo.Context) error {
	item, err := h.loadItem(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "edit_item_form", service.M{
		"Item": item,
		"csrf": csrfToken(c),
	})
}

///// Update
////
//

// Update commits an edit: refreshes both item and list timestamps. Edits are
// not duplicate-checked.
func (h *item) Update(c echo.Context) error {
	list, err := h.loadList(c)
	if err != nil {
		return err
	}
	itemID, err := uuidParam(c, "item_id")
	if err != nil {
		return err
	}

	update := service.NewUpdateItem(h.db, list, itemID, service.UpdateItemParams{
		Text: c.FormValue("text"),
	})
	if err := update.Execute(); err != nil {
		// An empty submission leaves the item as it was and re-renders it.
		if lserror.IsValidationFailed(err) && update.Item != nil {
			return c.Render(http.StatusOK, "todo_item", update.Item)
		}
		return err
	}

	return c.Render(http.StatusOK, "todo_item", update.Item)
}

///// CancelEdit
////
//

// CancelEdit discards an in-flight edit and re-renders the item. Pure read.
func (h *item) CancelEdit(c echo.Context) error {
	item, err := h.loadItem(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "todo_item", item)
}

///// Delete
////
//

// Delete removes the item. When the list becomes empty the response carries
// the empty-state placeholder so the caller can swap it in.
func (h *item) Delete(c echo.Context) error {
	list, err := h.loadList(c)
	if err != nil {
		return err
	}
	itemID, err := uuidParam(c, "item_id")
	if err != nil {
		return err
	}

	del := service.NewDeleteItem(h.db, list, itemID)
	if err := del.Execute(); err != nil {
		return err
	}

	if del.Empty {
		return c.Render(http.StatusOK, "empty_state", nil)
	}
	return c.NoContent(http.StatusOK)
}
