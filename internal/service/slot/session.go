package slot

import (
	"fmt"
	"math"

	"fluttering_riches/internal/fair"
	"fluttering_riches/internal/model"

	"github.com/shopspring/decimal"
)

// SessionOptions - настройки кошелька, фиксируются при создании сессии
type SessionOptions struct {
	InitialBalance int64
	DefaultBet     int64
	MaxBet         int64 // 0 - без верхнего предела
}

// Session - реестр сидов и кошелек одного игрока.
// Не потокобезопасна, спины сериализует вызывающий
type Session struct {
	registry *fair.Registry
	table    model.SymbolTable
	maxBet   int64

	balance int64
	bet     int64
}

// NewSession создает сессию поверх реестра сидов
func NewSession(registry *fair.Registry, table model.SymbolTable, opts SessionOptions) (*Session, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if opts.InitialBalance < 0 {
		return nil, fmt.Errorf("initial balance must not be negative: %d", opts.InitialBalance)
	}
	if opts.MaxBet < 0 {
		return nil, fmt.Errorf("max bet must not be negative: %d", opts.MaxBet)
	}

	s := &Session{
		registry: registry,
		table:    table,
		maxBet:   opts.MaxBet,
		balance:  opts.InitialBalance,
	}
	if err := s.validateBet(opts.DefaultBet); err != nil {
		return nil, fmt.Errorf("default bet: %w", err)
	}
	s.bet = opts.DefaultBet
	return s, nil
}

func (s *Session) validateBet(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d is negative", model.ErrInvalidBetAmount, amount)
	}
	if s.maxBet > 0 && amount > s.maxBet {
		return fmt.Errorf("%w: %d exceeds max bet %d", model.ErrInvalidBetAmount, amount, s.maxBet)
	}
	return nil
}

// PlaceBet устанавливает ставку для следующих спинов
func (s *Session) PlaceBet(amount int64) error {
	if err := s.validateBet(amount); err != nil {
		return err
	}
	if amount > s.balance {
		return fmt.Errorf("%w: bet %d, balance %d", model.ErrInsufficientBalance, amount, s.balance)
	}
	s.bet = amount
	return nil
}

// Spin играет один раунд текущей ставкой.
// Отклоненный спин не меняет ни кошелек, ни счетчик раундов
func (s *Session) Spin() (model.SpinOutcome, error) {
	if s.bet > s.balance {
		return model.SpinOutcome{}, fmt.Errorf("%w: bet %d, balance %d", model.ErrInsufficientBalance, s.bet, s.balance)
	}

	round := s.registry.Round()
	res, err := play(s.registry.Expand(round), s.table, s.bet)
	if err != nil {
		return model.SpinOutcome{}, err
	}

	prev := s.balance
	remaining := prev - s.bet
	if res.credit > math.MaxInt64-remaining {
		return model.SpinOutcome{}, fmt.Errorf("%w: balance %d, credit %d", model.ErrBalanceOverflow, remaining, res.credit)
	}

	// Раунд принят: двигаем счетчик, списываем ставку и начисляем выигрыш
	round = s.registry.NextRound()
	s.balance = remaining + res.credit

	return model.SpinOutcome{
		Grid:            res.grid,
		Wins:            res.wins,
		WinningSymbols:  WinningSymbols(res.wins),
		Multiplier:      res.multiplier,
		Payout:          res.payout,
		Credit:          res.credit,
		Bet:             s.bet,
		PreviousBalance: prev,
		Balance:         s.balance,
		Round:           round,
		ClientSeed:      s.registry.ClientSeed(),
		Commitment:      s.registry.Commitment(),
	}, nil
}

// SeedCommitment - опубликованный хэш активного серверного сида
func (s *Session) SeedCommitment() string {
	return s.registry.Commitment()
}

// ClientSeed - публичный клиентский сид
func (s *Session) ClientSeed() string {
	return s.registry.ClientSeed()
}

// RoundCounter - раунд, который использует следующий спин
func (s *Session) RoundCounter() uint64 {
	return s.registry.Round()
}

func (s *Session) Balance() int64 {
	return s.balance
}

func (s *Session) Bet() int64 {
	return s.bet
}

// State - публичное состояние сессии
func (s *Session) State() model.State {
	return model.State{
		Balance:    s.balance,
		Bet:        s.bet,
		Commitment: s.registry.Commitment(),
		ClientSeed: s.registry.ClientSeed(),
		Round:      s.registry.Round(),
	}
}

// SetClientSeed меняет клиентский сид между раундами
func (s *Session) SetClientSeed(seed string) error {
	return s.registry.SetClientSeed(seed)
}

// RotateSeed выводит активный серверный сид из оборота и раскрывает его
func (s *Session) RotateSeed() (model.Reveal, error) {
	return s.registry.Rotate()
}

// Table - таблица символов сессии
func (s *Session) Table() model.SymbolTable {
	return s.table
}

type playResult struct {
	grid       model.Grid
	wins       []model.LineWin
	multiplier decimal.Decimal
	payout     decimal.Decimal
	credit     int64
}

// play - сборка поля, проверка линий и расчет выплаты по потоку байт
func play(stream []byte, table model.SymbolTable, bet int64) (playResult, error) {
	grid, err := AssembleGrid(stream, table)
	if err != nil {
		return playResult{}, fmt.Errorf("assemble grid: %w", err)
	}

	wins := EvaluateLines(grid)
	symbols := WinningSymbols(wins)
	payout := Payout(symbols, table, bet)
	credit, err := Credit(payout)
	if err != nil {
		return playResult{}, err
	}

	return playResult{
		grid:       grid,
		wins:       wins,
		multiplier: TotalMultiplier(symbols, table),
		payout:     payout,
		credit:     credit,
	}, nil
}
