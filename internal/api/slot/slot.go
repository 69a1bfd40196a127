package slot

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	dto "fluttering_riches/internal/api/dto/slot"
	"fluttering_riches/internal/converter"
	"fluttering_riches/internal/model"
	"fluttering_riches/internal/service"
	"fluttering_riches/pkg/req"
	"fluttering_riches/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type HandlerDeps struct {
	Serv service.SlotService
	Log  zerolog.Logger
}

type Handler struct {
	serv service.SlotService
	log  zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Mount регистрирует эндпоинты слота
func (h *Handler) Mount(r chi.Router) {
	r.Get("/state", h.State)
	r.Post("/bet", h.PlaceBet)
	r.Post("/spin", h.Spin)
	r.Put("/client-seed", h.SetClientSeed)
	r.Post("/rotate", h.RotateSeed)
	r.Get("/history", h.History)
	r.Get("/stats", h.Stats)
	r.Post("/verify", h.Verify)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state))
}

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	if payload.Amount == nil {
		writeBadRequest(w, errors.New("amount is required"))
		return
	}

	state, err := h.serv.PlaceBet(r.Context(), converter.ToSpin(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) SetClientSeed(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ClientSeedRequest](r.Body)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	state, err := h.serv.SetClientSeed(r.Context(), payload.ClientSeed)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state))
}

func (h *Handler) RotateSeed(w http.ResponseWriter, r *http.Request) {
	reveal, err := h.serv.RotateSeed(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRevealResponse(*reveal))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeBadRequest(w, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	records, err := h.serv.History(r.Context(), model.HistoryFilter{
		Limit:      limit,
		Commitment: strings.ToLower(r.URL.Query().Get("commitment")),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundsResponse(records))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyRequest](r.Body)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	result, err := h.serv.Verify(r.Context(), converter.ToReplay(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToVerifyResponse(*result))
}

func writeBadRequest(w http.ResponseWriter, err error) {
	resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: err.Error(),
	})
}

// writeError переводит доменные ошибки в HTTP статусы
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, model.ErrInsufficientBalance):
		status, code = http.StatusConflict, "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrBalanceOverflow):
		status, code = http.StatusConflict, "BALANCE_OVERFLOW"
	case errors.Is(err, model.ErrInvalidBetAmount):
		status, code = http.StatusBadRequest, "INVALID_BET_AMOUNT"
	case errors.Is(err, model.ErrMalformedSeedMaterial):
		status, code = http.StatusBadRequest, "MALFORMED_SEED_MATERIAL"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusServiceUnavailable, "CANCELED"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("request failed")
		message = "internal error"
	}
	resp.WriteJSONResponse(w, status, dto.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
