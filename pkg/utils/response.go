package utils

import (
	"encoding/json"
	"net/http"
)

// Application status codes carried in the response envelope. They are
// distinct from HTTP status codes: 0 means success, 1xx are client-side
// rejections, 500 is an internal failure.
const (
	StatusSuccess        = 0
	StatusInvalidInput   = 102
	StatusBadCredentials = 103
	StatusNotFound       = 104
	StatusInvalidToken   = 108
	StatusInternalError  = 500
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func RespondWithSuccess(w http.ResponseWriter, httpCode int, message string, data any) {
	respond(w, httpCode, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func RespondWithError(w http.ResponseWriter, httpCode int, status int, message string) {
	respond(w, httpCode, Response{
		Status:  status,
		Message: message,
		Data:    nil,
	})
}

func respond(w http.ResponseWriter, httpCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	json.NewEncoder(w).Encode(payload) //nolint:errcheck // headers already sent
}
