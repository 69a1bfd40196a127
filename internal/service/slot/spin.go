package slot

import (
	"context"
	"fmt"

	"fluttering_riches/internal/model"
)

// PlaceBet устанавливает ставку
func (s *serv) PlaceBet(ctx context.Context, req model.Spin) (*model.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.session.PlaceBet(req.Bet); err != nil {
		s.log.Warn().Err(err).Int64("bet", req.Bet).Msg("bet rejected")
		return nil, err
	}
	state := s.session.State()
	return &state, nil
}

// Spin выполняет спин текущей ставкой и записывает раунд в журнал
func (s *serv) Spin(ctx context.Context) (*model.SpinOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	// КЛЮЧЕВОЙ ВЫЗОВ
	out, err := s.session.Spin()
	if err != nil {
		s.log.Warn().Err(err).
			Int64("bet", s.session.Bet()).
			Int64("balance", s.session.Balance()).
			Msg("spin rejected")
		return nil, err
	}

	s.roundRepo.Save(model.RoundRecord{
		Round:      out.Round,
		ClientSeed: out.ClientSeed,
		Commitment: out.Commitment,
		Bet:        out.Bet,
		Grid:       out.Grid,
		Wins:       out.Wins,
		Payout:     out.Payout,
		Credit:     out.Credit,
		Balance:    out.Balance,
	})

	s.log.Info().
		Uint64("round", out.Round).
		Int64("bet", out.Bet).
		Int("lines", len(out.Wins)).
		Str("payout", out.Payout.String()).
		Int64("balance", out.Balance).
		Msg("spin")

	return &out, nil
}

// State возвращает публичное состояние сессии
func (s *serv) State(ctx context.Context) (*model.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	state := s.session.State()
	return &state, nil
}

// SetClientSeed меняет клиентский сид
func (s *serv) SetClientSeed(ctx context.Context, seed string) (*model.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.session.SetClientSeed(seed); err != nil {
		return nil, err
	}
	state := s.session.State()
	s.log.Info().Str("client_seed", state.ClientSeed).Msg("client seed changed")
	return &state, nil
}

// RotateSeed раскрывает текущий серверный сид и публикует новый коммитмент
func (s *serv) RotateSeed(ctx context.Context) (*model.Reveal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	reveal, err := s.session.RotateSeed()
	if err != nil {
		s.log.Error().Err(err).Msg("seed rotation failed")
		return nil, fmt.Errorf("rotate seed: %w", err)
	}
	s.log.Info().
		Str("revealed_commitment", reveal.Commitment).
		Str("new_commitment", reveal.NewCommitment).
		Uint64("last_round", reveal.LastRound).
		Int("recorded_rounds", len(s.roundRepo.ByCommitment(reveal.Commitment))).
		Msg("secret seed rotated")
	return &reveal, nil
}

// History возвращает последние раунды.
// С коммитментом отдает раунды этого сида в порядке раундов, limit оставляет последние
func (s *serv) History(ctx context.Context, filter model.HistoryFilter) ([]model.RoundRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filter.Commitment == "" {
		return s.roundRepo.History(filter.Limit), nil
	}

	records := s.roundRepo.ByCommitment(filter.Commitment)
	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[len(records)-filter.Limit:]
	}
	if records == nil {
		records = []model.RoundRecord{}
	}
	return records, nil
}

// Stats возвращает статистику RTP
func (s *serv) Stats(ctx context.Context) (*model.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats := s.roundRepo.Stats()
	return &stats, nil
}

// Verify пересчитывает раунд по раскрытым сидам
func (s *serv) Verify(ctx context.Context, req model.Replay) (*model.ReplayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := Replay(req, s.session.Table())
	if err != nil {
		return nil, err
	}
	if !res.CommitmentMatch {
		s.log.Warn().Str("commitment", req.Commitment).Uint64("round", req.Round).Msg("revealed seed does not match commitment")
	}
	return &res, nil
}
