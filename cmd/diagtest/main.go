package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/parinyadagon/diagtest/internal/app"
	"github.com/parinyadagon/diagtest/internal/config"
	"github.com/parinyadagon/diagtest/internal/service/testgen"
)

func main() {
	// Best effort: running without a .env file is fine, the key is read from
	// the environment per call anyway.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	svc := testgen.NewService(cfg)
	server := app.NewServer(svc)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Info().Str("addr", addr).Str("model", cfg.OpenAIModel).Msg("starting diagnostic test generator")
	if err := server.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server listen failed")
	}
}
