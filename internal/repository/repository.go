package repository

import "fluttering_riches/internal/model"

type RoundRepository interface {
	Save(record model.RoundRecord) model.RoundRecord
	History(limit int) []model.RoundRecord
	ByCommitment(commitment string) []model.RoundRecord
	Stats() model.Stats
}
