package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/siherrmann/jobSchema/model"

	"github.com/labstack/echo/v4"
)

// renderJson writes value as JSON. A leading string value becomes the
// message, a second value is added as value.
func renderJson(c echo.Context, status int, value ...any) error {
	if len(value) == 0 {
		return c.NoContent(status)
	}

	values := map[string]any{}
	for i, v := range value {
		if message, ok := v.(string); ok && i == 0 {
			values["message"] = message
		} else {
			values["value"] = v
		}
	}

	return c.JSON(status, values)
}

// decodeBody reads the request body as a JSON object.
func decodeBody(c echo.Context) (model.DataMap, error) {
	data := model.DataMap{}
	err := json.NewDecoder(c.Request().Body).Decode(&data)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("request body is empty")
	}
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return data, nil
}

// permissions returns the field permissions set for the request, allowing
// everything if no middleware set any.
func permissions(c echo.Context) model.FieldPermissions {
	rc := model.GetRequestContext(c)
	return rc.Permissions
}
