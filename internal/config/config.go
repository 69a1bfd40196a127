package config

import (
	"github.com/joho/godotenv"

	"fluttering_riches/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SlotConfig interface {
	SymbolTable() model.SymbolTable
	InitialBalance() int64
	DefaultBet() int64
	MaxBet() int64
	SecretSeedLength() int
	ClientSeedLength() int
	InitialRound() uint64
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
	Format() string
	Output() string
}
