package model

import "github.com/shopspring/decimal"

// LedgerState - накопленная статистика раундов
type LedgerState struct {
	TotalSpins  int             // Сколько всего спинов сделано
	TotalBet    decimal.Decimal // Сумма всех ставок
	TotalPayout decimal.Decimal // Сумма всех выплат

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowSize int          // Размер окна для анализа RTP
}

// SpinResult - результат спина для окна
type SpinResult struct {
	Bet    decimal.Decimal
	Payout decimal.Decimal
}
