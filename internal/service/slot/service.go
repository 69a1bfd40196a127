package slot

import (
	"sync"

	"fluttering_riches/internal/repository"
	"fluttering_riches/internal/service"

	"github.com/rs/zerolog"
)

type serv struct {
	// mtx - одна операция с сессией за раз
	mtx       sync.Mutex
	session   *Session
	roundRepo repository.RoundRepository
	log       zerolog.Logger
}

// NewSlotService Создать сервис слота 3x3 поверх сессии
func NewSlotService(
	session *Session,
	roundRepo repository.RoundRepository,
	log zerolog.Logger,
) service.SlotService {
	return &serv{
		session:   session,
		roundRepo: roundRepo,
		log:       log.With().Str("component", "slot").Logger(),
	}
}
