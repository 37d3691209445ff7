package service

import (
	"fmt"

	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/model"
)

// A GetListService is a service used for loading a list and its items.
type GetListService struct {
	db database.Client
	id string
	// Populated during Execute()
	List  *model.List
	Items []*model.Item
}

// NewGetList returns a service used for loading the given list.
func NewGetList(db database.Client, id string) *GetListService {
	return &GetListService{
		db: db,
		id: id,
	}
}

// Execute loads the list and its items in creation order.
//
// An unknown id is materialized on the fly with a name derived from the id, so
// a client whose local cache predates server knowledge can transparently
// attach to server storage. Reads count as activity: updated_at is refreshed
// either way since it drives the retention clock.
func (s *GetListService) Execute() error {
	list, _, err := s.db.GetOrCreateList(s.id, fmt.Sprintf("List %.8s", s.id))
	if err != nil {
		return err
	}

	if err := s.db.Save(list); err != nil {
		return err
	}
	s.List = list

	s.Items, err = s.db.FindItemsByListID(list.ID)
	return err
}
