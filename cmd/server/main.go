package main

import (
	"fluttering_riches/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log := a.ServiceProvider.Logger()
		log.Fatal().Err(err).Msg("server stopped")
	}
}
