package service

import (
	"context"

	"fluttering_riches/internal/model"
)

type SlotService interface {
	PlaceBet(ctx context.Context, req model.Spin) (*model.State, error)
	Spin(ctx context.Context) (*model.SpinOutcome, error)
	State(ctx context.Context) (*model.State, error)
	SetClientSeed(ctx context.Context, seed string) (*model.State, error)
	RotateSeed(ctx context.Context) (*model.Reveal, error)
	History(ctx context.Context, filter model.HistoryFilter) ([]model.RoundRecord, error)
	Stats(ctx context.Context) (*model.Stats, error)
	Verify(ctx context.Context, req model.Replay) (*model.ReplayResult, error)
}
