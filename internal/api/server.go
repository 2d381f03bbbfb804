package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/config"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/engine"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/extractor"
)

// Serve runs the HTTP API until the listener stops.
func Serve(cfg *config.Config, log zerolog.Logger) error {
	app := fiber.New(fiber.Config{
		AppName:   "personal-finance-assistant",
		BodyLimit: cfg.MaxUploadBytes,
	})

	h := &Handler{
		Engine:    engine.New(),
		Extractor: extractor.Extractor{},
		Log:       log,
	}
	h.Register(app)

	log.Info().Str("addr", cfg.Addr).Msg("statement engine API listening")
	return app.Listen(cfg.Addr)
}
