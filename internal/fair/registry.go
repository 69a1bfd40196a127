package fair

import (
	"fmt"
	"sync"

	"fluttering_riches/internal/model"
)

// RegistryConfig - настройки сидов, фиксируются при старте сессии
type RegistryConfig struct {
	SecretSeedLength int
	ClientSeedLength int
	InitialRound     uint64
}

// Registry хранит серверный сид, его коммитмент, клиентский сид и счетчик раундов.
// Активный серверный сид не покидает реестр
type Registry struct {
	mtx        sync.RWMutex
	secretLen  int
	secret     string
	commitment string
	client     string
	round      uint64
}

// NewRegistry генерирует новые серверный и клиентский сиды
func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	if cfg.SecretSeedLength == 0 {
		cfg.SecretSeedLength = DefaultSecretSeedLength
	}
	if cfg.ClientSeedLength == 0 {
		cfg.ClientSeedLength = DefaultClientSeedLength
	}

	secret, err := GenerateSeed(cfg.SecretSeedLength)
	if err != nil {
		return nil, fmt.Errorf("generate secret seed: %w", err)
	}
	client, err := GenerateSeed(cfg.ClientSeedLength)
	if err != nil {
		return nil, fmt.Errorf("generate client seed: %w", err)
	}

	return NewRegistryFromSeeds(secret, client, cfg.InitialRound)
}

// NewRegistryFromSeeds создает реестр по известным сидам
func NewRegistryFromSeeds(secret, client string, round uint64) (*Registry, error) {
	if err := ValidateSeed(secret); err != nil {
		return nil, fmt.Errorf("secret seed: %w", err)
	}
	if err := ValidateSeed(client); err != nil {
		return nil, fmt.Errorf("client seed: %w", err)
	}
	return &Registry{
		secretLen:  len(secret),
		secret:     secret,
		commitment: Commit(secret),
		client:     client,
		round:      round,
	}, nil
}

// Commitment - SHA-256 активного серверного сида в hex
func (r *Registry) Commitment() string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.commitment
}

// ClientSeed - публичный клиентский сид
func (r *Registry) ClientSeed() string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.client
}

// Round - раунд следующего спина
func (r *Registry) Round() uint64 {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.round
}

// NextRound возвращает текущий раунд и двигает счетчик.
// Вызывать только после принятого спина
func (r *Registry) NextRound() uint64 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	round := r.round
	r.round++
	return round
}

// Expand - поток байт раунда на активных сидах
func (r *Registry) Expand(round uint64) []byte {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return Expand(r.secret, r.client, round)
}

// SetClientSeed заменяет клиентский сид
func (r *Registry) SetClientSeed(seed string) error {
	if err := ValidateSeed(seed); err != nil {
		return err
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.client = seed
	return nil
}

// Rotate заменяет серверный сид и раскрывает старый.
// Счетчик раундов не сбрасывается
func (r *Registry) Rotate() (model.Reveal, error) {
	secret, err := GenerateSeed(r.secretLen)
	if err != nil {
		return model.Reveal{}, fmt.Errorf("generate secret seed: %w", err)
	}
	return r.rotateTo(secret)
}

func (r *Registry) rotateTo(secret string) (model.Reveal, error) {
	if err := ValidateSeed(secret); err != nil {
		return model.Reveal{}, err
	}
	commitment := Commit(secret)

	r.mtx.Lock()
	defer r.mtx.Unlock()

	reveal := model.Reveal{
		SecretSeed:    r.secret,
		Commitment:    r.commitment,
		ClientSeed:    r.client,
		LastRound:     r.round,
		NewCommitment: commitment,
	}
	r.secret = secret
	r.commitment = commitment
	return reveal, nil
}
