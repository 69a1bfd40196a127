package slot

import (
	"fmt"

	"fluttering_riches/internal/fair"
	"fluttering_riches/internal/model"
)

// Replay пересчитывает раунд по раскрытым сидам.
// Результат зависит только от входа и таблицы символов
func Replay(req model.Replay, table model.SymbolTable) (model.ReplayResult, error) {
	if err := fair.ValidateSeed(req.SecretSeed); err != nil {
		return model.ReplayResult{}, fmt.Errorf("secret seed: %w", err)
	}
	if err := fair.ValidateSeed(req.ClientSeed); err != nil {
		return model.ReplayResult{}, fmt.Errorf("client seed: %w", err)
	}
	if req.Bet < 0 {
		return model.ReplayResult{}, fmt.Errorf("%w: %d is negative", model.ErrInvalidBetAmount, req.Bet)
	}

	res, err := play(fair.Expand(req.SecretSeed, req.ClientSeed, req.Round), table, req.Bet)
	if err != nil {
		return model.ReplayResult{}, err
	}

	commitment := fair.Commit(req.SecretSeed)
	match := true
	if req.Commitment != "" {
		match = fair.VerifyCommitment(req.SecretSeed, req.Commitment)
	}

	return model.ReplayResult{
		Grid:            res.grid,
		Wins:            res.wins,
		WinningSymbols:  WinningSymbols(res.wins),
		Multiplier:      res.multiplier,
		Payout:          res.payout,
		Credit:          res.credit,
		Commitment:      commitment,
		CommitmentMatch: match,
	}, nil
}
