package handler

import (
	"errors"
	"net/http"

	"github.com/siherrmann/jobSchema/schema"

	"github.com/labstack/echo/v4"
)

// HandleError is the echo error handler rendering errors as JSON.
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message interface{}
	message = err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message
	}
	c.Logger().Error(code, err)

	if rerr := c.JSON(code, map[string]interface{}{"message": message}); rerr != nil {
		c.Logger().Error(rerr)
	}
}

// renderValidationError renders a failed load. Validation errors carry
// their messages per field path, the record level path is "_schema".
func renderValidationError(c echo.Context, err error) error {
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return renderJson(c, http.StatusBadRequest, err.Error())
	}

	messages := map[string][]string{}
	for field, fieldMessages := range verr.Messages() {
		if field == "" {
			field = "_schema"
		}
		messages[field] = fieldMessages
	}
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"message": "Validation failed",
		"errors":  messages,
	})
}
