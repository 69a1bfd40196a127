package converter

import (
	"fluttering_riches/internal/api/dto/slot"
	"fluttering_riches/internal/model"

	"github.com/samber/lo"
)

func ToSpin(req slot.BetRequest) model.Spin {
	return model.Spin{
		Bet: lo.FromPtr(req.Amount),
	}
}

func ToReplay(req slot.VerifyRequest) model.Replay {
	return model.Replay{
		SecretSeed: req.SecretSeed,
		ClientSeed: req.ClientSeed,
		Round:      req.Round,
		Bet:        req.Bet,
		Commitment: req.Commitment,
	}
}

func ToStateResponse(state model.State) slot.StateResponse {
	return slot.StateResponse{
		Balance:    state.Balance,
		Bet:        state.Bet,
		Commitment: state.Commitment,
		ClientSeed: state.ClientSeed,
		Round:      state.Round,
	}
}

func ToSpinResponse(out model.SpinOutcome) slot.SpinResponse {
	return slot.SpinResponse{
		Grid:            out.Grid,
		LineWins:        toLineWins(out.Wins),
		WinningSymbols:  nonNil(out.WinningSymbols),
		Multiplier:      out.Multiplier.String(),
		Payout:          out.Payout.String(),
		Credit:          out.Credit,
		Bet:             out.Bet,
		PreviousBalance: out.PreviousBalance,
		Balance:         out.Balance,
		Round:           out.Round,
		ClientSeed:      out.ClientSeed,
		Commitment:      out.Commitment,
	}
}

func ToRevealResponse(reveal model.Reveal) slot.RevealResponse {
	return slot.RevealResponse{
		SecretSeed:    reveal.SecretSeed,
		Commitment:    reveal.Commitment,
		ClientSeed:    reveal.ClientSeed,
		LastRound:     reveal.LastRound,
		NewCommitment: reveal.NewCommitment,
	}
}

func ToVerifyResponse(res model.ReplayResult) slot.VerifyResponse {
	return slot.VerifyResponse{
		Grid:            res.Grid,
		LineWins:        toLineWins(res.Wins),
		WinningSymbols:  nonNil(res.WinningSymbols),
		Multiplier:      res.Multiplier.String(),
		Payout:          res.Payout.String(),
		Credit:          res.Credit,
		Commitment:      res.Commitment,
		CommitmentMatch: res.CommitmentMatch,
	}
}

func ToRoundsResponse(records []model.RoundRecord) []slot.RoundResponse {
	return lo.Map(records, func(r model.RoundRecord, _ int) slot.RoundResponse {
		return slot.RoundResponse{
			ID:         r.ID,
			Round:      r.Round,
			ClientSeed: r.ClientSeed,
			Commitment: r.Commitment,
			Bet:        r.Bet,
			Grid:       r.Grid,
			LineWins:   toLineWins(r.Wins),
			Payout:     r.Payout.String(),
			Credit:     r.Credit,
			Balance:    r.Balance,
			CreatedAt:  r.CreatedAt,
		}
	})
}

func ToStatsResponse(s model.Stats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalSpins:  s.TotalSpins,
		TotalBet:    s.TotalBet.String(),
		TotalPayout: s.TotalPayout.String(),
		CurrentRTP:  s.CurrentRTP.StringFixed(2),
		WindowRTP:   s.WindowRTP.StringFixed(2),
		WindowSize:  s.WindowSize,
	}
}

func toLineWins(wins []model.LineWin) []slot.LineWin {
	return lo.Map(wins, func(w model.LineWin, _ int) slot.LineWin {
		return slot.LineWin{
			Line:   w.Line,
			Symbol: w.Symbol,
		}
	})
}

// nonNil - пустой список отдаем как [] в JSON
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
