package database

import (
	"sort"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/neeleshs/listara/internal/model"
	"github.com/neeleshs/listara/pkg/clock"
	"github.com/pkg/errors"
)

type strm struct {
	db    *storm.DB
	clock clock.Clock
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	if err := db.Init(&model.List{}); err != nil {
		return errors.Wrap(err, "could not init list index")
	}

	err = db.Init(&model.Item{})
	return errors.Wrap(err, "could not init item index")
}

// StormReIndex reindex Storm database.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	if err := db.ReIndex(&model.List{}); err != nil {
		return errors.Wrap(err, "could not ReIndex lists")
	}

	err = db.ReIndex(&model.Item{})
	return errors.Wrap(err, "could not ReIndex items")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string, c clock.Clock) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db:    db,
		clock: c,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := c.clock.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
	}
	// Lists carry a client-supplied ID, so first-persist detection relies on
	// the creation timestamp rather than on the ID.
	if m.GetCreatedAt() == nil {
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// FindList returns the list for the given id (UUID).
func (c *strm) FindList(id string) (*model.List, error) {
	var list model.List
	if err := c.db.One("ID", id, &list); err != nil {
		return nil, errors.Wrap(err, "could not find list")
	}
	return &list, nil
}

// GetOrCreateList returns the list for the given id, materializing it with the
// given name when the id is not known yet.
func (c *strm) GetOrCreateList(id, name string) (*model.List, bool, error) {
	list, err := c.FindList(id)
	if err == nil {
		return list, false, nil
	}
	if !c.IsNotFound(err) {
		return nil, false, err
	}

	list = &model.List{
		Base: model.Base{ID: id},
		Name: name,
	}
	if err := c.Save(list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// FindListsUpdatedBefore returns all lists whose update timestamp is strictly
// older than the given time.
func (c *strm) FindListsUpdatedBefore(t time.Time) ([]*model.List, error) {
	lists := make([]*model.List, 0)
	err := c.db.Select(q.Lt("UpdatedAt", t)).Find(&lists)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find lists by update time")
	}
	return lists, nil
}

// DeleteList deletes the list and all its items.
func (c *strm) DeleteList(id string) error {
	err := c.db.Select(q.Eq("ListID", id)).Delete(&model.Item{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete list items")
	}

	err = c.db.Select(q.Eq("ID", id)).Delete(&model.List{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete list")
	}
	return nil
}

// FindItemByListID returns the item for the given id and list id (UUID).
func (c *strm) FindItemByListID(id, listID string) (*model.Item, error) {
	var item model.Item
	err := c.db.Select(q.Eq("ID", id), q.Eq("ListID", listID)).First(&item)
	return &item, errors.Wrap(err, "could not find item by list id")
}

// FindItemsByListID returns all the items of the given list in ascending
// creation order.
func (c *strm) FindItemsByListID(listID string) ([]*model.Item, error) {
	items := make([]*model.Item, 0)
	err := c.db.Select(q.Eq("ListID", listID)).Find(&items)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find items")
	}

	// Storm's OrderBy compares pointer fields through their encoded bytes,
	// which does not follow chronological order for sub-second timestamps.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(*items[j].CreatedAt)
	})
	return items, nil
}

// CountItemsByListID returns the number of items in the given list.
func (c *strm) CountItemsByListID(listID string) (int, error) {
	n, err := c.db.Select(q.Eq("ListID", listID)).Count(&model.Item{})
	return n, errors.Wrap(err, "could not count items")
}

// DeleteItem deletes the item matching the given parameters.
func (c *strm) DeleteItem(id, listID string) error {
	err := c.db.Select(q.Eq("ID", id), q.Eq("ListID", listID)).Delete(&model.Item{})
	return errors.Wrap(err, "could not delete item")
}
