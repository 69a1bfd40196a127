package slot

import "time"

type BetRequest struct {
	Amount *int64 `json:"amount"` // Размер ставки (>= 0, <= max_bet), обязателен
}

type ClientSeedRequest struct {
	ClientSeed string `json:"client_seed"`
}

type VerifyRequest struct {
	SecretSeed string `json:"secret_seed"` // Раскрытый серверный сид
	ClientSeed string `json:"client_seed"`
	Round      uint64 `json:"round"`
	Bet        int64  `json:"bet"`
	Commitment string `json:"commitment,omitempty"` // Опубликованный хэш для сверки
}

type StateResponse struct {
	Balance    int64  `json:"balance"`
	Bet        int64  `json:"bet"`
	Commitment string `json:"seed_commitment"` // SHA-256 серверного сида
	ClientSeed string `json:"client_seed"`
	Round      uint64 `json:"round"` // Раунд следующего спина
}

type SpinResponse struct {
	Grid            [3][3]string `json:"grid"`            // Символы построчно
	LineWins        []LineWin    `json:"line_wins"`       // Выигрышные линии
	WinningSymbols  []string     `json:"winning_symbols"` // Символ каждой выигрышной линии
	Multiplier      string       `json:"multiplier"`
	Payout          string       `json:"payout"` // Точная выплата
	Credit          int64        `json:"credit"` // Начислено на баланс
	Bet             int64        `json:"bet"`
	PreviousBalance int64        `json:"previous_balance"` // Баланс до
	Balance         int64        `json:"balance"`          // Баланс после
	Round           uint64       `json:"round"`            // Раскрытый номер раунда
	ClientSeed      string       `json:"client_seed"`
	Commitment      string       `json:"seed_commitment"`
}

type LineWin struct {
	Line   int    `json:"line"` // 1-8
	Symbol string `json:"symbol"`
}

type RevealResponse struct {
	SecretSeed    string `json:"secret_seed"`
	Commitment    string `json:"seed_commitment"`
	ClientSeed    string `json:"client_seed"`
	LastRound     uint64 `json:"last_round"` // Раунды < last_round сыграны на этом сиде
	NewCommitment string `json:"new_seed_commitment"`
}

type VerifyResponse struct {
	Grid            [3][3]string `json:"grid"`
	LineWins        []LineWin    `json:"line_wins"`
	WinningSymbols  []string     `json:"winning_symbols"`
	Multiplier      string       `json:"multiplier"`
	Payout          string       `json:"payout"`
	Credit          int64        `json:"credit"`
	Commitment      string       `json:"seed_commitment"`
	CommitmentMatch bool         `json:"commitment_match"`
}

type RoundResponse struct {
	ID         string       `json:"id"`
	Round      uint64       `json:"round"`
	ClientSeed string       `json:"client_seed"`
	Commitment string       `json:"seed_commitment"`
	Bet        int64        `json:"bet"`
	Grid       [3][3]string `json:"grid"`
	LineWins   []LineWin    `json:"line_wins"`
	Payout     string       `json:"payout"`
	Credit     int64        `json:"credit"`
	Balance    int64        `json:"balance"`
	CreatedAt  time.Time    `json:"created_at"`
}

type StatsResponse struct {
	TotalSpins  int    `json:"total_spins"`
	TotalBet    string `json:"total_bet"`
	TotalPayout string `json:"total_payout"`
	CurrentRTP  string `json:"current_rtp"`
	WindowRTP   string `json:"window_rtp"`
	WindowSize  int    `json:"window_size"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
