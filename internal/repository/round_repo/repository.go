package round_repo

import (
	"sync"
	"time"

	"fluttering_riches/internal/model"
	repoModel "fluttering_riches/internal/repository/round_repo/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// defaultWindowSize - размер окна для RTP
	defaultWindowSize = 500
	// defaultMaxRounds - сколько раундов держим в памяти
	defaultMaxRounds = 10000
)

var hundred = decimal.NewFromInt(100)

// RoundRepo - журнал сыгранных раундов в памяти процесса
type RoundRepo struct {
	mtx       sync.RWMutex
	rounds    []model.RoundRecord
	maxRounds int
	state     repoModel.LedgerState
	now       func() time.Time
}

// NewRoundRepository Конструктор журнала с пустым состоянием
func NewRoundRepository() *RoundRepo {
	return &RoundRepo{
		rounds:    make([]model.RoundRecord, 0),
		maxRounds: defaultMaxRounds,
		state: repoModel.LedgerState{
			TotalBet:    decimal.Zero,
			TotalPayout: decimal.Zero,
			SpinWindow:  make([]repoModel.SpinResult, 0),
			WindowSize:  defaultWindowSize,
		},
		now: time.Now,
	}
}

// Save записывает раунд и обновляет статистику.
// Возвращает запись с присвоенным ID и временем
func (r *RoundRepo) Save(record model.RoundRecord) model.RoundRecord {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now()
	}

	r.rounds = append(r.rounds, record)
	if len(r.rounds) > r.maxRounds {
		r.rounds = r.rounds[len(r.rounds)-r.maxRounds:]
	}

	bet := decimal.NewFromInt(record.Bet)
	r.state.TotalSpins++
	r.state.TotalBet = r.state.TotalBet.Add(bet)
	r.state.TotalPayout = r.state.TotalPayout.Add(record.Payout)

	// Добавляем спин в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: record.Payout,
	})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	return record
}

// History возвращает последние limit раундов, новые первыми.
// limit <= 0 - все раунды
func (r *RoundRepo) History(limit int) []model.RoundRecord {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	n := len(r.rounds)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.RoundRecord, 0, n)
	for i := len(r.rounds) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.rounds[i])
	}
	return out
}

// ByCommitment возвращает раунды, сыгранные под данным коммитментом, в порядке раундов
func (r *RoundRepo) ByCommitment(commitment string) []model.RoundRecord {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var out []model.RoundRecord
	for _, rec := range r.rounds {
		if rec.Commitment == commitment {
			out = append(out, rec)
		}
	}
	return out
}

// Stats Получение агрегированной статистики
func (r *RoundRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	windowBet, windowPayout := decimal.Zero, decimal.Zero
	for _, spin := range r.state.SpinWindow {
		windowBet = windowBet.Add(spin.Bet)
		windowPayout = windowPayout.Add(spin.Payout)
	}

	return model.Stats{
		TotalSpins:  r.state.TotalSpins,
		TotalBet:    r.state.TotalBet,
		TotalPayout: r.state.TotalPayout,
		CurrentRTP:  rtp(r.state.TotalBet, r.state.TotalPayout),
		WindowRTP:   rtp(windowBet, windowPayout),
		WindowSize:  r.state.WindowSize,
	}
}

func rtp(bet, payout decimal.Decimal) decimal.Decimal {
	if !bet.IsPositive() {
		return decimal.Zero
	}
	return payout.Div(bet).Mul(hundred).Round(2)
}
