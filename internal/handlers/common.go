package handlers

import (
	"errors"
	"net/http"
	"strings"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/storage"
	"FITZEN_BACK-END/internal/utils"
)

// decodePartial reads a JSON object and keeps only the columns of schema.
// The id column is never updatable. A value of the wrong JSON type is a 400.
func decodePartial(w http.ResponseWriter, r *http.Request, schema any) (storage.Record, bool) {
	body, err := utils.DecodeJSONObject(w, r)
	if err != nil {
		return nil, false
	}
	fields, err := storage.FieldsFromJSON(schema, body)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return nil, false
	}
	return fields, true
}

// writeStoreError renders err, replacing a not-found failure with notFound.
func writeStoreError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, notFound, "")
		return
	}
	utils.WriteAppError(w, err)
}

func requireUserID(w http.ResponseWriter, userID string) bool {
	if strings.TrimSpace(userID) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "User ID is required", "")
		return false
	}
	return true
}
