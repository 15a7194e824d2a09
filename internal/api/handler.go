package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/evtol-sizing/internal/formula"
	"github.com/eugenenazirov/evtol-sizing/internal/pack"
	"github.com/eugenenazirov/evtol-sizing/internal/power"
	"github.com/eugenenazirov/evtol-sizing/internal/report"
	"github.com/eugenenazirov/evtol-sizing/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler exposes the sizing calculators over HTTP. Fields omitted from a
// request body take their value from the stored defaults.
type Handler struct {
	store  storage.Storage
	logger *zap.Logger
	clock  func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithLogger sets the logger used to report failed calculations.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithStorage replaces the in-memory defaults store.
func WithStorage(store storage.Storage) HandlerOption {
	return func(h *Handler) {
		h.store = store
	}
}

// NewHandler constructs a Handler whose requests start from defaults.
func NewHandler(defaults report.Inputs, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:  storage.NewMemoryStorage(defaults),
		logger: zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetDefaults(w http.ResponseWriter, r *http.Request) {
	defaults, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, defaults)
}

func (h *Handler) handleUpdateDefaults(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.store.SetDefaults(req); err != nil {
		if errors.Is(err, storage.ErrInvalidDefaults) {
			writeError(w, http.StatusBadRequest, "Invalid defaults", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.logger.Info("default inputs updated", zap.String("request_id", requestIDFromContext(r.Context())))
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handlePackConfiguration(w http.ResponseWriter, r *http.Request) {
	defaults, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	req := defaults.Pack
	if !decodeBody(w, r, &req) {
		return
	}

	cfg, err := pack.Configure(req.CellNominalVoltage, req.CellCapacity, req.RequiredVoltage, req.RequiredCapacity)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handlePackWeight(w http.ResponseWriter, r *http.Request) {
	defaults, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	req := weightRequest{
		CellWeight:          defaults.Pack.CellWeight,
		CoolingSystemWeight: defaults.Pack.CoolingSystemWeight,
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Parallel == nil || req.Series == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "parallel and series counts are required",
			"Call /api/pack/configuration first to derive the counts")
		return
	}

	cfg := pack.Configuration{Parallel: *req.Parallel, Series: *req.Series}
	grams := pack.Weight(cfg, req.CellWeight, req.CoolingSystemWeight)
	if err := formula.Finite(grams); err != nil {
		h.writeCalculationError(w, r, formula.Wrap(pack.OpWeight, err, pack.WeightParams(cfg, req.CellWeight, req.CoolingSystemWeight)...))
		return
	}
	writeJSON(w, http.StatusOK, weightResponse{
		TotalWeightGrams: grams,
		TotalWeightKg:    grams / 1000,
	})
}

func (h *Handler) handleCruisePower(w http.ResponseWriter, r *http.Request) {
	defaults, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	req := defaults.Cruise
	if !decodeBody(w, r, &req) {
		return
	}

	watts, err := power.Cruise(req.MTOW, req.LiftToDrag, req.Efficiency, req.Velocity)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}
	if err := formula.Finite(watts); err != nil {
		h.writeCalculationError(w, r, formula.Wrap(power.OpCruise, err, power.CruiseParams(req.MTOW, req.LiftToDrag, req.Efficiency, req.Velocity)...))
		return
	}
	writeJSON(w, http.StatusOK, newPowerResponse(watts))
}

func (h *Handler) handleVerticalPower(w http.ResponseWriter, r *http.Request) {
	defaults, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	req := defaults.Vertical
	if !decodeBody(w, r, &req) {
		return
	}

	watts, err := power.Vertical(req)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}
	if err := formula.Finite(watts); err != nil {
		h.writeCalculationError(w, r, formula.Wrap(power.OpVertical, err, req.Params()...))
		return
	}
	writeJSON(w, http.StatusOK, newPowerResponse(watts))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadDefaults(w)
	if !ok {
		return
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if strict, _ := strconv.ParseBool(r.URL.Query().Get("strict")); strict {
		if err := req.Validate(); err != nil {
			h.writeCalculationError(w, r, err)
			return
		}
	}

	summary, err := report.Run(req)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}
	if err := summary.CheckFinite(); err != nil {
		h.writeCalculationError(w, r, fmt.Errorf("report: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) writeCalculationError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("calculation failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, formula.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input", err.Error())
	case errors.Is(err, formula.ErrDivisionByZero):
		writeError(w, http.StatusUnprocessableEntity, "Division by zero", err.Error(),
			"Efficiencies, ratios, densities, areas and the series count must be non-zero; retry with ?strict=true on /api/report for field-level checks")
	case errors.Is(err, formula.ErrDomain):
		writeError(w, http.StatusUnprocessableEntity, "Math domain error", err.Error(),
			"Check that weights, disk area and air density are positive and all inputs are finite")
	default:
		writeInternalError(w, err)
	}
}

func (h *Handler) loadDefaults(w http.ResponseWriter) (report.Inputs, bool) {
	defaults, err := h.store.GetDefaults()
	if err != nil {
		writeInternalError(w, err)
		return report.Inputs{}, false
	}
	return defaults, true
}

// decodeBody decodes an optional JSON body into dst. An empty body leaves dst
// untouched. It writes a 400 response and returns false on malformed input or
// trailing data after the first value.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload: "+err.Error())
		return false
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request", "request body must contain a single JSON object")
		return false
	}
	return true
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type weightRequest struct {
	Parallel            *int    `json:"parallel"`
	Series              *int    `json:"series"`
	CellWeight          float64 `json:"cellWeight"`
	CoolingSystemWeight float64 `json:"coolingSystemWeight"`
}

type weightResponse struct {
	TotalWeightGrams float64 `json:"totalWeightGrams"`
	TotalWeightKg    float64 `json:"totalWeightKg"`
}

type powerResponse struct {
	PowerWatts float64 `json:"powerWatts"`
	PowerKW    float64 `json:"powerKw"`
}

func newPowerResponse(watts float64) powerResponse {
	return powerResponse{PowerWatts: watts, PowerKW: watts * 0.001}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// writeJSON marshals payload before any header is written, so an encoding
// failure still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal error","details":"unable to encode response"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
