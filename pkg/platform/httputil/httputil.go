// Package httputil renders JSON envelopes for the non-HTML endpoints.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "todolists/pkg/domain-errors"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteError translates err into a status code and JSON body. Internal
// errors never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := errorResponse{Error: string(dErrors.CodeInternal)}
	if de, ok := dErrors.As(err); ok {
		status = dErrors.ToHTTPStatus(de.Code)
		resp.Error = string(de.Code)
		if de.Code != dErrors.CodeInternal {
			resp.ErrorDescription = de.Message
		}
	}
	WriteJSON(w, status, resp)
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
