package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-401 backend rejection. Mensaje carries the server-provided
// message when the body had one.
type Error struct {
	Status  int
	Mensaje string
}

func (e *Error) Error() string {
	if e.Mensaje == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Mensaje)
}

// decodeError extracts the server message from an error response. The
// backend answers with either {"mensaje": ...} or {"message": ...}.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var body struct {
		Mensaje string `json:"mensaje"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	if body.Mensaje != "" {
		apiErr.Mensaje = body.Mensaje
	} else {
		apiErr.Mensaje = body.Message
	}
	return apiErr
}
