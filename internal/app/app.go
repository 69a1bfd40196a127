package app

import (
	"context"
	"fluttering_riches/internal/config"
	"net/http"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	loadErr := config.Load(".env")
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("error loading .env file")
	}

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	addr := s.ServiceProvider.HTTPCfg().Address()
	log.Info().
		Str("address", addr).
		Str("seed_commitment", s.ServiceProvider.Registry().Commitment()).
		Msg("starting server")

	err := http.ListenAndServe(addr, r)
	if err != nil {
		return err
	}
	return nil
}
