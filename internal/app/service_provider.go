package app

import (
	"context"
	slotAPI "fluttering_riches/internal/api/slot"
	"fluttering_riches/internal/config"
	"fluttering_riches/internal/config/env"
	"fluttering_riches/internal/fair"
	"fluttering_riches/internal/logger"
	"fluttering_riches/internal/repository"
	"fluttering_riches/internal/repository/round_repo"
	"fluttering_riches/internal/service"
	"fluttering_riches/internal/service/slot"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zerolog.Logger

	// Slot bits
	slotCfg   config.SlotConfig
	registry  *fair.Registry
	session   *slot.Session
	roundRepo repository.RoundRepository
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() zerolog.Logger {
	if sp.log == nil {
		cfg := sp.LogCfg()
		l := logger.New(logger.Config{
			Level:  cfg.Level(),
			Format: cfg.Format(),
			Output: cfg.Output(),
		})
		sp.log = &l
	}
	return *sp.log
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		path, err := env.SlotConfigPath()
		if err != nil {
			panic("failed to get slot config path: " + err.Error())
		}

		cfg, err := env.NewSlotConfigFromYAML(path)
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) Registry() *fair.Registry {
	if sp.registry == nil {
		cfg := sp.SlotCfg()
		r, err := fair.NewRegistry(fair.RegistryConfig{
			SecretSeedLength: cfg.SecretSeedLength(),
			ClientSeedLength: cfg.ClientSeedLength(),
			InitialRound:     cfg.InitialRound(),
		})
		if err != nil {
			panic("failed to create seed registry: " + err.Error())
		}
		sp.registry = r
	}
	return sp.registry
}

func (sp *ServiceProvider) Session() *slot.Session {
	if sp.session == nil {
		cfg := sp.SlotCfg()
		s, err := slot.NewSession(sp.Registry(), cfg.SymbolTable(), slot.SessionOptions{
			InitialBalance: cfg.InitialBalance(),
			DefaultBet:     cfg.DefaultBet(),
			MaxBet:         cfg.MaxBet(),
		})
		if err != nil {
			panic("failed to create slot session: " + err.Error())
		}
		sp.session = s
	}
	return sp.session
}

func (sp *ServiceProvider) RoundRepository() repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository()
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.Session(), sp.RoundRepository(), sp.Logger())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(),
			Log:  sp.Logger(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Slot endpoints
		r.Route("/slot", sp.SlotHandler().Mount)

		sp.router = r
	}

	return sp.router
}
