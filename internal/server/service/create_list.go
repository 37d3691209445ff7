package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/lserror"
	"github.com/neeleshs/listara/internal/model"
	"github.com/neeleshs/listara/pkg/clock"
	"github.com/sirupsen/logrus"
)

// CreateListParams are the fields of a list-creation request.
// The ID is generated client-side so the local mirror can reference the list
// before the server knows about it.
type CreateListParams struct {
	ID   string `json:"list_id" form:"list_id"`
	Name string `json:"name"    form:"name"`
}

// A CreateListService is a service used for creating lists.
type CreateListService struct {
	db        database.Client
	clock     clock.Clock
	retention time.Duration
	params    CreateListParams
	// Populated during Execute()
	List    *model.List
	Created bool
}

// NewCreateList returns a service used for creating the described list.
func NewCreateList(db database.Client, c clock.Clock, retention time.Duration, params CreateListParams) *CreateListService {
	return &CreateListService{
		db:        db,
		clock:     c,
		retention: retention,
		params:    params,
	}
}

// Execute sweeps expired lists and then creates the list. Creating twice with
// the same id neither produces two records nor renames the first one.
func (s *CreateListService) Execute() error {
	// Hygiene pass. A sweep failure must not block the creation itself.
	if err := NewSweep(s.db, s.clock, s.retention).Execute(); err != nil {
		logrus.WithError(err).Error("could not sweep expired lists")
	}

	name := strings.TrimSpace(s.params.Name)
	if name == "" || utf8.RuneCountInString(name) > model.MaxListNameLength {
		return lserror.NewValidationFailed("list name must be between 1 and 200 characters")
	}

	id, err := uuid.FromString(s.params.ID)
	if err != nil {
		return lserror.NewValidationFailed("list id must be a valid UUID")
	}

	list, created, err := s.db.GetOrCreateList(id.String(), name)
	if err != nil {
		return err
	}

	s.List = list
	s.Created = created
	return nil
}
