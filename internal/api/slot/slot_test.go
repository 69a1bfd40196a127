package slot

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "fluttering_riches/internal/api/dto/slot"
	"fluttering_riches/internal/fair"
	"fluttering_riches/internal/model"
	"fluttering_riches/internal/repository/round_repo"
	slotServ "fluttering_riches/internal/service/slot"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	testSecret = "fluttering-riches-server-seed"
	testClient = "other-client" // round 0: three cherries on the middle row
)

func testTable() model.SymbolTable {
	rows := []struct {
		id     string
		weight float64
		mult   string
	}{
		{"cherry", 0.2, "1.3"},
		{"lemon", 0.18, "2.25"},
		{"bell", 0.15, "3"},
		{"clover", 0.13, "4"},
		{"diamond", 0.12, "5"},
		{"star", 0.1, "7.5"},
		{"caterpillar", 0.07, "12"},
		{"butterfly", 0.045, "25"},
		{"angel_butterfly", 0.005, "250"},
	}
	table := make(model.SymbolTable, 0, len(rows))
	for _, r := range rows {
		table = append(table, model.Symbol{ID: r.id, Weight: r.weight, Multiplier: decimal.RequireFromString(r.mult)})
	}
	return table
}

func newTestRouter(t *testing.T, opts slotServ.SessionOptions) http.Handler {
	t.Helper()
	registry, err := fair.NewRegistryFromSeeds(testSecret, testClient, 0)
	if err != nil {
		t.Fatal(err)
	}
	session, err := slotServ.NewSession(registry, testTable(), opts)
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandler(HandlerDeps{
		Serv: slotServ.NewSlotService(session, round_repo.NewRoundRepository(), zerolog.Nop()),
		Log:  zerolog.Nop(),
	})

	r := chi.NewRouter()
	r.Route("/slot", h.Mount)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHandler_State(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 10000, DefaultBet: 200})

	rec := do(t, h, http.MethodGet, "/slot/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	state := decode[dto.StateResponse](t, rec)
	if state.Balance != 10000 || state.Bet != 200 || state.Round != 0 {
		t.Errorf("state = %+v", state)
	}
	if state.Commitment != fair.Commit(testSecret) || state.ClientSeed != testClient {
		t.Errorf("seeds = %q/%q", state.Commitment, state.ClientSeed)
	}
}

func TestHandler_Spin(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 10000, DefaultBet: 200})

	rec := do(t, h, http.MethodPost, "/slot/spin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	out := decode[dto.SpinResponse](t, rec)
	if out.Credit != 260 || out.Payout != "260" || out.Balance != 10060 || out.PreviousBalance != 10000 {
		t.Errorf("spin = %+v", out)
	}
	if len(out.LineWins) != 1 || out.LineWins[0].Symbol != "cherry" {
		t.Errorf("line wins = %+v", out.LineWins)
	}
	if out.Grid[1] != [3]string{"cherry", "cherry", "cherry"} {
		t.Errorf("middle row = %v", out.Grid[1])
	}

	rec = do(t, h, http.MethodGet, "/slot/history?limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	rounds := decode[[]dto.RoundResponse](t, rec)
	if len(rounds) != 1 || rounds[0].Round != 0 || rounds[0].Credit != 260 {
		t.Errorf("history = %+v", rounds)
	}

	rec = do(t, h, http.MethodGet, "/slot/stats", "")
	stats := decode[dto.StatsResponse](t, rec)
	if stats.TotalSpins != 1 || stats.CurrentRTP != "130.00" {
		t.Errorf("stats = %+v", stats)
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"negative bet", http.MethodPost, "/slot/bet", `{"amount":-1}`, http.StatusBadRequest, "INVALID_BET_AMOUNT"},
		{"bet above max", http.MethodPost, "/slot/bet", `{"amount":600}`, http.StatusBadRequest, "INVALID_BET_AMOUNT"},
		{"bet above balance", http.MethodPost, "/slot/bet", `{"amount":400}`, http.StatusConflict, "INSUFFICIENT_BALANCE"},
		{"unknown field", http.MethodPost, "/slot/bet", `{"bet":1}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"empty bet body", http.MethodPost, "/slot/bet", "", http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing amount", http.MethodPost, "/slot/bet", `{}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"null amount", http.MethodPost, "/slot/bet", `{"amount":null}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad json", http.MethodPost, "/slot/bet", `{`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"empty client seed", http.MethodPut, "/slot/client-seed", `{"client_seed":""}`, http.StatusBadRequest, "MALFORMED_SEED_MATERIAL"},
		{"bad limit", http.MethodGet, "/slot/history?limit=x", "", http.StatusBadRequest, "INVALID_REQUEST"},
		{"verify without secret", http.MethodPost, "/slot/verify", `{"client_seed":"c","bet":1}`, http.StatusBadRequest, "MALFORMED_SEED_MATERIAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 300, DefaultBet: 100, MaxBet: 500})
			rec := do(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := decode[dto.ErrorResponse](t, rec); got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestHandler_InsufficientBalanceSpin(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 50, DefaultBet: 100})

	rec := do(t, h, http.MethodPost, "/slot/spin", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	state := decode[dto.StateResponse](t, do(t, h, http.MethodGet, "/slot/state", ""))
	if state.Balance != 50 || state.Round != 0 {
		t.Errorf("state after rejected spin = %+v", state)
	}
}

func TestHandler_RotateAndVerify(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 10000, DefaultBet: 200})

	spin := decode[dto.SpinResponse](t, do(t, h, http.MethodPost, "/slot/spin", ""))

	rec := do(t, h, http.MethodPost, "/slot/rotate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("rotate status = %d", rec.Code)
	}
	reveal := decode[dto.RevealResponse](t, rec)
	if reveal.SecretSeed != testSecret || reveal.Commitment != spin.Commitment || reveal.LastRound != 1 {
		t.Errorf("reveal = %+v", reveal)
	}
	if reveal.NewCommitment == "" || reveal.NewCommitment == reveal.Commitment {
		t.Errorf("new commitment = %q", reveal.NewCommitment)
	}

	body, err := json.Marshal(dto.VerifyRequest{
		SecretSeed: reveal.SecretSeed,
		ClientSeed: spin.ClientSeed,
		Round:      spin.Round,
		Bet:        spin.Bet,
		Commitment: spin.Commitment,
	})
	if err != nil {
		t.Fatal(err)
	}
	rec = do(t, h, http.MethodPost, "/slot/verify", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body %s", rec.Code, rec.Body.String())
	}
	verified := decode[dto.VerifyResponse](t, rec)
	if !verified.CommitmentMatch || verified.Grid != spin.Grid || verified.Payout != spin.Payout {
		t.Errorf("verify = %+v, spin = %+v", verified, spin)
	}

	state := decode[dto.StateResponse](t, do(t, h, http.MethodGet, "/slot/state", ""))
	if state.Round != 1 || state.Commitment != reveal.NewCommitment {
		t.Errorf("state after rotate = %+v", state)
	}
}

func TestHandler_SetClientSeed(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 10000, DefaultBet: 200})

	rec := do(t, h, http.MethodPut, "/slot/client-seed", `{"client_seed":"lucky"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if state := decode[dto.StateResponse](t, rec); state.ClientSeed != "lucky" {
		t.Errorf("client seed = %q", state.ClientSeed)
	}
	if !strings.Contains(do(t, h, http.MethodGet, "/slot/state", "").Body.String(), `"client_seed":"lucky"`) {
		t.Error("client seed not persisted in session")
	}
}

func TestHandler_PlaceBetKeepsBetOnBadRequest(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 10000, DefaultBet: 200})

	if rec := do(t, h, http.MethodPost, "/slot/bet", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d, want 400", rec.Code)
	}
	if state := decode[dto.StateResponse](t, do(t, h, http.MethodGet, "/slot/state", "")); state.Bet != 200 {
		t.Errorf("bet = %d, want 200", state.Bet)
	}

	rec := do(t, h, http.MethodPost, "/slot/bet", `{"amount":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("zero bet status = %d, body %s", rec.Code, rec.Body.String())
	}
	if state := decode[dto.StateResponse](t, rec); state.Bet != 0 {
		t.Errorf("bet = %d, want 0", state.Bet)
	}
}

func TestHandler_HistoryByCommitment(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: 10000, DefaultBet: 200})

	for i := 0; i < 2; i++ {
		if rec := do(t, h, http.MethodPost, "/slot/spin", ""); rec.Code != http.StatusOK {
			t.Fatalf("spin status = %d", rec.Code)
		}
	}
	reveal := decode[dto.RevealResponse](t, do(t, h, http.MethodPost, "/slot/rotate", ""))
	if rec := do(t, h, http.MethodPost, "/slot/spin", ""); rec.Code != http.StatusOK {
		t.Fatalf("spin status = %d", rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/slot/history?commitment="+strings.ToUpper(reveal.Commitment), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	rounds := decode[[]dto.RoundResponse](t, rec)
	if len(rounds) != 2 || rounds[0].Round != 0 || rounds[1].Round != 1 {
		t.Fatalf("history = %+v, want rounds 0 and 1", rounds)
	}
	for _, rd := range rounds {
		if rd.Commitment != reveal.Commitment {
			t.Errorf("round %d commitment = %q", rd.Round, rd.Commitment)
		}
	}

	rounds = decode[[]dto.RoundResponse](t, do(t, h, http.MethodGet, "/slot/history?commitment="+reveal.NewCommitment, ""))
	if len(rounds) != 1 || rounds[0].Round != 2 {
		t.Errorf("history for active seed = %+v", rounds)
	}

	rec = do(t, h, http.MethodGet, "/slot/history?commitment=deadbeef", "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("history for unknown seed = %s, want []", body)
	}
}

func TestHandler_SpinBalanceOverflow(t *testing.T) {
	h := newTestRouter(t, slotServ.SessionOptions{InitialBalance: math.MaxInt64 - 10, DefaultBet: 200})

	rec := do(t, h, http.MethodPost, "/slot/spin", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if got := decode[dto.ErrorResponse](t, rec); got.Code != "BALANCE_OVERFLOW" {
		t.Errorf("code = %q", got.Code)
	}
}
