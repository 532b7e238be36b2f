package server

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// taskID returns the :id route parameter with percent-escapes decoded
func taskID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.NewInvalidInputError("id", raw, "malformed escape sequence")
	}
	return id, nil
}

// taskFields holds the recognised keys of a task request body. A nil field
// was absent, null, or carried a value of the wrong JSON type.
type taskFields struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Patch converts the decoded fields into a partial update
func (f taskFields) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       f.Title,
		Description: f.Description,
		Completed:   f.Completed,
	}
}

// decodeTaskFields reads body field by field. Unknown keys are ignored and an
// empty body counts as an empty object; anything other than a JSON object is rejected.
func decodeTaskFields(body []byte) (taskFields, error) {
	var fields taskFields
	if len(bytes.TrimSpace(body)) == 0 {
		return fields, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return fields, errors.NewInvalidInputError("body", nil, "request body must be a JSON object")
	}

	fields.Title = stringField(raw, "title")
	fields.Description = stringField(raw, "description")
	fields.Completed = boolField(raw, "completed")
	return fields, nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func stringField(raw map[string]json.RawMessage, key string) *string {
	value, ok := raw[key]
	if !ok || isNull(value) {
		return nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil
	}
	return &s
}

func boolField(raw map[string]json.RawMessage, key string) *bool {
	value, ok := raw[key]
	if !ok || isNull(value) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return nil
	}
	return &b
}
