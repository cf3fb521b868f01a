package handlers

import (
	"net/http"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

// MeasurementsHandler manages body measurement endpoints
type MeasurementsHandler struct {
	stores  *repository.Stores
	tracker *services.Tracker
}

// NewMeasurementsHandler creates a new MeasurementsHandler
func NewMeasurementsHandler(stores *repository.Stores, tracker *services.Tracker) *MeasurementsHandler {
	return &MeasurementsHandler{stores: stores, tracker: tracker}
}

// ListMeasurements handles GET /api/measurements/{user_id}
// @Summary List a user's measurements, most recent first
// @Tags measurements
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.MeasurementListResponse
// @Router /api/measurements/{user_id} [get]
func (h *MeasurementsHandler) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	ms := h.stores.Measurements.ByUser(r.PathValue("user_id"))
	services.SortDescending(ms, func(m models.Measurement) string { return m.MeasuredAt })
	utils.WriteJSONResponse(w, http.StatusOK, dto.MeasurementListResponse{Success: true, Measurements: ms})
}

// CreateMeasurement handles POST /api/measurements
// @Summary Record a body measurement
// @Description bmi is derived from weight (kg) and height (cm); any supplied bmi is ignored
// @Tags measurements
// @Accept json
// @Produce json
// @Param payload body models.Measurement true "Measurement; user_id is required"
// @Success 200 {object} dto.MeasurementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/measurements [post]
func (h *MeasurementsHandler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	var req models.Measurement
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !requireUserID(w, req.UserID) {
		return
	}
	m, err := h.tracker.CreateMeasurement(req)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MeasurementResponse{Success: true, Measurement: m})
}

// UpdateMeasurement handles PUT /api/measurements/{id}
// @Summary Update a measurement
// @Description bmi is recomputed when weight or height is supplied
// @Tags measurements
// @Accept json
// @Produce json
// @Param id path string true "Measurement ID"
// @Param payload body models.Measurement true "Fields to update"
// @Success 200 {object} dto.MeasurementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/measurements/{id} [put]
func (h *MeasurementsHandler) UpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodePartial(w, r, models.Measurement{})
	if !ok {
		return
	}
	m, err := h.tracker.UpdateMeasurement(r.PathValue("id"), fields)
	if err != nil {
		writeStoreError(w, err, "Measurement not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MeasurementResponse{Success: true, Measurement: m})
}

// DeleteMeasurement handles DELETE /api/measurements/{id}
// @Summary Delete a measurement
// @Tags measurements
// @Produce json
// @Param id path string true "Measurement ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/measurements/{id} [delete]
func (h *MeasurementsHandler) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Measurements.Delete(r.PathValue("id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Measurement deleted"})
}

// Latest handles GET /api/measurements/latest/{user_id}
// @Summary Most recent measurement
// @Tags measurements
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.MeasurementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/measurements/latest/{user_id} [get]
func (h *MeasurementsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	m, err := h.tracker.LatestMeasurement(r.PathValue("user_id"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MeasurementResponse{Success: true, Measurement: m})
}

// Progress handles GET /api/measurements/progress/{user_id}
// @Summary Weight, BMI and body-fat series, oldest first
// @Tags measurements
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.MeasurementProgressResponse
// @Router /api/measurements/progress/{user_id} [get]
func (h *MeasurementsHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress := h.tracker.MeasurementProgress(r.PathValue("user_id"))
	utils.WriteJSONResponse(w, http.StatusOK, dto.MeasurementProgressResponse{Success: true, Progress: progress})
}
