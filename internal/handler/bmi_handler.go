package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
	"github.com/yusufkecer/bmi-tracker/internal/middleware"
	"github.com/yusufkecer/bmi-tracker/internal/render"
)

const (
	actionCalculate = "calculate bmi"
	actionHistory   = "view history"
	actionTrend     = "plot trend"
)

type BMIService interface {
	Calculate(username, weightText, heightText string) (*domain.BMIRecord, error)
	History(username string) ([]domain.BMIRecord, error)
	Trend(username string) ([]domain.TrendPoint, error)
}

type BMIHandler struct {
	svc BMIService
	log zerolog.Logger
}

func NewBMIHandler(svc BMIService, log zerolog.Logger) *BMIHandler {
	return &BMIHandler{svc: svc, log: log}
}

func (h *BMIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Calculate(req.Username, string(req.Weight), string(req.Height))
	if err != nil {
		h.fail(w, r, err, actionCalculate)
		return
	}

	writeJSON(w, http.StatusCreated, domain.CalculateResponse{
		BMIRecord: *rec,
		Result:    render.Result(rec),
	})
}

func (h *BMIHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History(r.URL.Query().Get("username"))
	if err != nil {
		h.fail(w, r, err, actionHistory)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *BMIHandler) Trend(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.Trend(r.URL.Query().Get("username"))
	if err != nil {
		h.fail(w, r, err, actionTrend)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *BMIHandler) TrendChart(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	points, err := h.svc.Trend(username)
	if err != nil {
		h.fail(w, r, err, actionTrend)
		return
	}

	var buf bytes.Buffer
	if err := render.TrendChart(&buf, username, points); err != nil {
		h.fail(w, r, err, actionTrend)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// fail maps err to a response. action names what the user asked for.
func (h *BMIHandler) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, domain.ErrInvalidInput.Error())
	case errors.Is(err, domain.ErrEmptyUsername):
		writeError(w, http.StatusBadRequest, "enter a username to "+action)
	case errors.Is(err, domain.ErrNoData):
		writeError(w, http.StatusNotFound, domain.ErrNoData.Error())
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.RequestID(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
