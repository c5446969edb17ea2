package utils

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// ContentTypeJSON is the content type of every API response.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serialises v and writes it with ContentTypeJSON.
func WriteJSON(c echo.Context, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, ContentTypeJSON, body)
}
