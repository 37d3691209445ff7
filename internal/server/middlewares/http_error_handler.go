package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/neeleshs/listara/internal/lserror"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler is a middleware that renders errors as the neutral
// responses the UI expects: validation misses answer an empty body, not-found
// a bare 404. Anything else is logged with a correlation id.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch err := pkgerrors.Cause(err).(type) {
	case *echo.HTTPError:
		logrus.WithError(err).Warn("http error")
		_ = c.String(err.Code, fmt.Sprintf("%v", err.Message))
	case *lserror.LSError:
		status := lserror.StatusCode(err)
		if status < http.StatusInternalServerError {
			_ = c.NoContent(status)
			return
		}

		internal(err, c)
	default:
		internal(err, c)
	}
}

func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	logrus.WithError(err).Errorf("internal error (id: %s)", id)

	_ = c.String(http.StatusInternalServerError, fmt.Sprintf("Unexpected error (id: %s)", id))
}
