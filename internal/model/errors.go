package model

import "errors"

var (
	// ErrInsufficientBalance - ставка больше баланса кошелька
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidBetAmount - ставка отрицательная или выше максимальной
	ErrInvalidBetAmount = errors.New("invalid bet amount")
	// ErrMalformedSeedMaterial - сид нельзя захэшировать как UTF-8 текст
	ErrMalformedSeedMaterial = errors.New("malformed seed material")
	// ErrGridAssemblyShortfall - в потоке байт меньше 9 чанков
	ErrGridAssemblyShortfall = errors.New("byte stream too short for grid")
	// ErrInvalidSymbolTable - таблицу символов нельзя использовать для маппинга
	ErrInvalidSymbolTable = errors.New("invalid symbol table")
	// ErrBalanceOverflow - выплата не помещается в int64 кошелька
	ErrBalanceOverflow = errors.New("balance overflow")
)
