package service

import (
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/lserror"
	"github.com/neeleshs/listara/internal/model"
)

// A DeleteItemService is a service used for deleting an item.
type DeleteItemService struct {
	db     database.Client
	list   *model.List
	itemID string
	// Populated during Execute()
	// Empty is true exactly when zero items remain, telling the caller to
	// render the empty-state placeholder.
	Empty bool
}

// NewDeleteItem returns a service used for deleting the described item.
func NewDeleteItem(db database.Client, list *model.List, itemID string) *DeleteItemService {
	return &DeleteItemService{
		db:     db,
		list:   list,
		itemID: itemID,
	}
}

// Execute deletes the item and refreshes the list's updated_at.
// Deleting a missing item is a not-found condition, not a silent success.
func (s *DeleteItemService) Execute() error {
	item, err := s.db.FindItemByListID(s.itemID, s.list.ID)
	if err != nil {
		if s.db.IsNotFound(err) {
			return lserror.NewNotFound("item not found")
		}
		return err
	}

	if err := s.db.DeleteItem(item.ID, s.list.ID); err != nil {
		return err
	}
	if err := s.db.Save(s.list); err != nil {
		return err
	}

	n, err := s.db.CountItemsByListID(s.list.ID)
	if err != nil {
		return err
	}
	s.Empty = n == 0
	return nil
}
