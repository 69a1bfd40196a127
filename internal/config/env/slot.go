package env

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fluttering_riches/internal/config"
	"fluttering_riches/internal/fair"
	"fluttering_riches/internal/model"
)

type slotPath struct {
	Path string `env:"SLOT_CONFIG_PATH" envDefault:"config.yaml"`
}

// файл конфигурации слота
type slotFile struct {
	Slot slotYAML `yaml:"slot"`
}

type slotYAML struct {
	InitialBalance int64        `yaml:"initial_balance"`
	DefaultBet     int64        `yaml:"default_bet"`
	MaxBet         int64        `yaml:"max_bet"`
	Seeds          seedsYAML    `yaml:"seeds"`
	Symbols        []symbolYAML `yaml:"symbols"`
}

type seedsYAML struct {
	SecretLength int    `yaml:"secret_length"`
	ClientLength int    `yaml:"client_length"`
	InitialRound uint64 `yaml:"initial_round"`
}

type symbolYAML struct {
	ID         string  `yaml:"id"`
	Weight     float64 `yaml:"weight"`
	Multiplier string  `yaml:"multiplier"`
}

type slotConfig struct {
	table          model.SymbolTable
	initialBalance int64
	defaultBet     int64
	maxBet         int64
	secretLen      int
	clientLen      int
	initialRound   uint64
}

// SlotConfigPath - путь к YAML из SLOT_CONFIG_PATH
func SlotConfigPath() (string, error) {
	var p slotPath
	if err := env.Parse(&p); err != nil {
		return "", fmt.Errorf("parse slot config path: %w", err)
	}
	return p.Path, nil
}

// NewSlotConfigFromYAML читает таблицу символов и настройки сессии из YAML файла
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slot config: %w", err)
	}
	return ParseSlotConfig(data)
}

// ParseSlotConfig разбирает и проверяет YAML слота
func ParseSlotConfig(data []byte) (config.SlotConfig, error) {
	var file slotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode slot config: %w", err)
	}
	raw := file.Slot

	table := make(model.SymbolTable, 0, len(raw.Symbols))
	for _, s := range raw.Symbols {
		mult, err := decimal.NewFromString(s.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q multiplier %q: %v", model.ErrInvalidSymbolTable, s.ID, s.Multiplier, err)
		}
		table = append(table, model.Symbol{
			ID:         s.ID,
			Weight:     s.Weight,
			Multiplier: mult,
		})
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	cfg := &slotConfig{
		table:          table,
		initialBalance: raw.InitialBalance,
		defaultBet:     raw.DefaultBet,
		maxBet:         raw.MaxBet,
		secretLen:      raw.Seeds.SecretLength,
		clientLen:      raw.Seeds.ClientLength,
		initialRound:   raw.Seeds.InitialRound,
	}
	if cfg.secretLen == 0 {
		cfg.secretLen = fair.DefaultSecretSeedLength
	}
	if cfg.clientLen == 0 {
		cfg.clientLen = fair.DefaultClientSeedLength
	}

	if cfg.initialBalance < 0 {
		return nil, fmt.Errorf("initial balance must not be negative: %d", cfg.initialBalance)
	}
	if cfg.secretLen < 0 || cfg.clientLen < 0 {
		return nil, fmt.Errorf("seed lengths must be positive: secret %d, client %d", cfg.secretLen, cfg.clientLen)
	}
	return cfg, nil
}

func (c *slotConfig) SymbolTable() model.SymbolTable {
	return c.table
}

func (c *slotConfig) InitialBalance() int64 {
	return c.initialBalance
}

func (c *slotConfig) DefaultBet() int64 {
	return c.defaultBet
}

func (c *slotConfig) MaxBet() int64 {
	return c.maxBet
}

func (c *slotConfig) SecretSeedLength() int {
	return c.secretLen
}

func (c *slotConfig) ClientSeedLength() int {
	return c.clientLen
}

func (c *slotConfig) InitialRound() uint64 {
	return c.initialRound
}
