package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"samarlodge/internal/entities"
	apperrors "samarlodge/internal/errors"
	"samarlodge/internal/service"
)

const maxBodyBytes = int64(65536)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservation handles POST /api/reserve. Method dispatch happens here
// rather than in the router so OPTIONS and the 405 path carry the same CORS
// headers and JSON envelope as everything else.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, StatusResponse{Success: false, Error: apperrors.ErrMethodNotAllowed.Message})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Reserve API error: %v", err)
		writeJSON(w, http.StatusInternalServerError, StatusResponse{Success: false, Error: errorMessage(err)})
		return
	}

	req, err := entities.DecodeReservationBody(body)
	if err != nil {
		log.Printf("Reserve API error: %v", err)
		writeJSON(w, http.StatusInternalServerError, StatusResponse{Success: false, Error: errorMessage(err)})
		return
	}

	if _, err := h.Service.Dispatch(req); err != nil {
		log.Printf("Reserve API error: %v", err)
		status := http.StatusInternalServerError
		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}
		writeJSON(w, status, StatusResponse{Success: false, Error: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true})
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Failed to send"
	}
	return err.Error()
}
