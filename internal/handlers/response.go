package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/validation"
)

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// the 400 response is already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validation.Struct(dst); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Fields: verrs})
			return false
		}
		writeInternalError(w, err)
		return false
	}
	return true
}

func urlID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
