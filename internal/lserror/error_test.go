package lserror_test

import (
	"net/http"
	"testing"

	"github.com/neeleshs/listara/internal/lserror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLSError(t *testing.T) {
	err := lserror.New("some message")

	assert.Equal(t, "some message", err.Error())
	assert.Equal(t, http.StatusInternalServerError, lserror.StatusCode(err))
}

func TestLSErrorTaxonomy(t *testing.T) {
	err := lserror.NewNotFound("item not found")
	assert.True(t, lserror.IsNotFound(err))
	assert.False(t, lserror.IsDuplicateItem(err))
	assert.Equal(t, http.StatusNotFound, lserror.StatusCode(err))

	err = lserror.NewValidationFailed("text is required")
	assert.True(t, lserror.IsValidationFailed(err))
	assert.Equal(t, http.StatusOK, lserror.StatusCode(err))

	err = lserror.NewDuplicateItem("already there")
	assert.True(t, lserror.IsDuplicateItem(err))
	assert.False(t, lserror.IsValidationFailed(err))
}

func TestLSErrorWrapped(t *testing.T) {
	err := errors.Wrap(lserror.NewNotFound("item not found"), "delete item")

	assert.True(t, lserror.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, lserror.StatusCode(err))
}
