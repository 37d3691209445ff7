package service

import (
	"strings"
	"unicode/utf8"

	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/lserror"
	"github.com/neeleshs/listara/internal/model"
)

// AddItemParams are the fields of an add-item request.
type AddItemParams struct {
	Text string `json:"text" form:"text"`
}

// An AddItemService is a service used for adding an item to a list.
type AddItemService struct {
	db     database.Client
	list   *model.List
	params AddItemParams
	// Populated during Execute()
	Item *model.Item
	// FirstItem is true exactly when the list was empty before this addition,
	// telling the caller to remove the empty-state placeholder.
	FirstItem bool
}

// NewAddItem returns a service used for adding the described item.
func NewAddItem(db database.Client, list *model.List, params AddItemParams) *AddItemService {
	return &AddItemService{
		db:     db,
		list:   list,
		params: params,
	}
}

// Execute validates and persists the item. The item's id is server-assigned.
func (s *AddItemService) Execute() error {
	text := strings.TrimSpace(s.params.Text)
	if text == "" || utf8.RuneCountInString(text) > model.MaxItemTextLength {
		return lserror.NewValidationFailed("item text must be between 1 and 500 characters")
	}

	items, err := s.db.FindItemsByListID(s.list.ID)
	if err != nil {
		return err
	}

	// Case-insensitive comparison on trimmed text. A rejected duplicate must
	// leave the list's updated_at untouched.
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item.Text), text) {
			return lserror.NewDuplicateItem("This item already exists in the list")
		}
	}

	item := &model.Item{
		ListID: s.list.ID,
		Text:   text,
	}
	if err := s.db.Save(item); err != nil {
		return err
	}
	if err := s.db.Save(s.list); err != nil {
		return err
	}

	s.Item = item
	s.FirstItem = len(items) == 0
	return nil
}
