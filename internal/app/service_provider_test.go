package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

const testSlotYAML = `
slot:
  initial_balance: 500
  default_bet: 50
  max_bet: 100
  seeds:
    secret_length: 16
    client_length: 8
    initial_round: 1
  symbols:
    - id: cherry
      weight: 0.6
      multiplier: "1.3"
    - id: lemon
      weight: 0.4
      multiplier: "2.25"
`

func newTestProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testSlotYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SLOT_CONFIG_PATH", path)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_OUTPUT", "stderr")
	return newServiceProvider()
}

func TestServiceProvider_Logger(t *testing.T) {
	sp := newTestProvider(t)

	log := sp.Logger()
	if log.GetLevel() != zerolog.ErrorLevel {
		t.Errorf("level = %s, want error", log.GetLevel())
	}
	// адресуемая копия: методы с pointer receiver
	log.Debug().Msg("dropped")
	if again := sp.Logger(); again.GetLevel() != log.GetLevel() {
		t.Error("Logger() is not cached")
	}
}

func TestServiceProvider_Router(t *testing.T) {
	sp := newTestProvider(t)
	r := sp.Router(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/slot/state", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var state struct {
		Balance    int64  `json:"balance"`
		Bet        int64  `json:"bet"`
		Round      uint64 `json:"round"`
		Commitment string `json:"seed_commitment"`
		ClientSeed string `json:"client_seed"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	if state.Balance != 500 || state.Bet != 50 || state.Round != 1 {
		t.Errorf("state = %+v", state)
	}
	if len(state.Commitment) != 64 || len(state.ClientSeed) != 8 {
		t.Errorf("seeds = %q/%q", state.Commitment, state.ClientSeed)
	}
	if sp.Registry().Commitment() != state.Commitment {
		t.Error("router is not wired to the provider registry")
	}
}
