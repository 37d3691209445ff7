package database

import (
	"time"

	"github.com/neeleshs/listara/internal/model"
)

type (
	// A Client can interact with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		// It assigns a fresh UUID when the model has none and always refreshes
		// the update timestamp.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		ListInteraction
		ItemInteraction
	}

	// A ListInteraction defines all the methods used to interact with a list record.
	ListInteraction interface {
		// FindList returns the list for the given id (UUID).
		FindList(id string) (*model.List, error)
		// GetOrCreateList returns the list for the given id, materializing it
		// with the given name when the id is not known yet. The boolean is
		// true when the list has been created by this call.
		GetOrCreateList(id, name string) (*model.List, bool, error)
		// FindListsUpdatedBefore returns all lists whose update timestamp is
		// strictly older than the given time.
		FindListsUpdatedBefore(t time.Time) ([]*model.List, error)
		// DeleteList deletes the list and all its items.
		// Deleting an already deleted list is a no-op.
		DeleteList(id string) error
	}

	// An ItemInteraction defines all the methods used to interact with item record(s).
	ItemInteraction interface {
		// FindItemByListID returns the item for the given id and list id (UUID).
		FindItemByListID(id, listID string) (*model.Item, error)
		// FindItemsByListID returns all the items of the given list in
		// ascending creation order.
		FindItemsByListID(listID string) ([]*model.Item, error)
		// CountItemsByListID returns the number of items in the given list.
		CountItemsByListID(listID string) (int, error)
		// DeleteItem deletes the item matching the given parameters.
		DeleteItem(id, listID string) error
	}
)
