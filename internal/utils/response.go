package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/logger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Error encoding response", "error", err)
	}
}

// WriteErrorResponse writes the error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// WriteAppError maps err to a status code and writes the error envelope.
// Server-side failures are logged; their internals are not exposed.
func WriteAppError(w http.ResponseWriter, err error) {
	appErr := apperrors.As(err)
	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", appErr.LogFields()...)
	}
	WriteErrorResponse(w, status, appErr.Message, "")
}

// DecodeJSONRequest decodes the body into dst, writing a 400 response on failure
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		err = errors.New("request body is empty")
	}
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}

// DecodeJSONObject decodes the body as a generic JSON object for partial updates.
// Numbers keep their literal text.
func DecodeJSONObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	body := map[string]any{}
	err := dec.Decode(&body)
	if errors.Is(err, io.EOF) {
		err = errors.New("request body is empty")
	}
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return nil, err
	}
	return body, nil
}
