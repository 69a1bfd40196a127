package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// GridRows - строки игрового поля
	GridRows = 3
	// GridCols - столбцы игрового поля
	GridCols = 3
	// GridCells - количество ячеек
	GridCells = GridRows * GridCols
)

// Symbol - символ барабана: вес выпадения и множитель линии
type Symbol struct {
	ID         string
	Weight     float64
	Multiplier decimal.Decimal
}

// SymbolTable - упорядоченные символы; порядок задает и порядок весов, и индексы маппера
type SymbolTable []Symbol

// Weights возвращает веса в порядке таблицы
func (t SymbolTable) Weights() []float64 {
	weights := make([]float64, len(t))
	for i, s := range t {
		weights[i] = s.Weight
	}
	return weights
}

// Multiplier возвращает множитель символа по id
func (t SymbolTable) Multiplier(id string) (decimal.Decimal, bool) {
	for _, s := range t {
		if s.ID == id {
			return s.Multiplier, true
		}
	}
	return decimal.Zero, false
}

// Validate проверяет таблицу: символы есть, id уникальны, веса конечные и положительные,
// множители неотрицательные
func (t SymbolTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no symbols", ErrInvalidSymbolTable)
	}
	seen := make(map[string]struct{}, len(t))
	for i, s := range t {
		if s.ID == "" {
			return fmt.Errorf("%w: symbol %d has empty id", ErrInvalidSymbolTable, i)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSymbolTable, s.ID)
		}
		seen[s.ID] = struct{}{}
		if !(s.Weight > 0) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("%w: symbol %q weight must be a positive finite number", ErrInvalidSymbolTable, s.ID)
		}
		if s.Multiplier.IsNegative() {
			return fmt.Errorf("%w: symbol %q multiplier must not be negative", ErrInvalidSymbolTable, s.ID)
		}
	}
	return nil
}

// Grid - игровое поле 3x3, строки сверху вниз
type Grid [GridRows][GridCols]string

// LineWin - выигрышная линия
type LineWin struct {
	Line   int // 1-8: строки, столбцы, диагонали
	Symbol string
}

// Spin - входные данные спина
type Spin struct {
	Bet int64
}

// SpinOutcome - результат одного спина
type SpinOutcome struct {
	Grid            Grid
	Wins            []LineWin
	WinningSymbols  []string
	Multiplier      decimal.Decimal // сумма множителей всех выигрышных линий
	Payout          decimal.Decimal // точная выплата, bet * Multiplier
	Credit          int64           // выплата, усеченная до единицы кошелька
	Bet             int64
	PreviousBalance int64
	Balance         int64
	Round           uint64
	ClientSeed      string
	Commitment      string
}

// Reveal - раскрытый серверный сид после ротации
type Reveal struct {
	SecretSeed string
	Commitment string
	ClientSeed string
	// LastRound - счетчик на момент ротации; все раунды ниже сыграны на SecretSeed
	LastRound     uint64
	NewCommitment string
}

// State - публичное состояние сессии
type State struct {
	Balance    int64
	Bet        int64
	Commitment string
	ClientSeed string
	Round      uint64
}

// Replay - входные данные для проверки раунда
type Replay struct {
	SecretSeed string
	ClientSeed string
	Round      uint64
	Bet        int64
	Commitment string // опубликованный коммитмент для сверки, необязателен
}

// ReplayResult - пересчитанный раунд
type ReplayResult struct {
	Grid            Grid
	Wins            []LineWin
	WinningSymbols  []string
	Multiplier      decimal.Decimal
	Payout          decimal.Decimal
	Credit          int64
	Commitment      string
	CommitmentMatch bool
}

// HistoryFilter - параметры выборки журнала раундов
type HistoryFilter struct {
	Limit      int    // <= 0: без ограничения
	Commitment string // если задан, только раунды под этим коммитментом
}

// RoundRecord - запись о сыгранном раунде для аудита
type RoundRecord struct {
	ID         string
	Round      uint64
	ClientSeed string
	Commitment string
	Bet        int64
	Grid       Grid
	Wins       []LineWin
	Payout     decimal.Decimal
	Credit     int64
	Balance    int64
	CreatedAt  time.Time
}

// Stats - агрегированная статистика раундов
type Stats struct {
	TotalSpins  int
	TotalBet    decimal.Decimal
	TotalPayout decimal.Decimal
	CurrentRTP  decimal.Decimal // TotalPayout/TotalBet*100
	WindowRTP   decimal.Decimal // RTP за последние WindowSize спинов
	WindowSize  int
}
