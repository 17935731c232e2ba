package main

import (
	"os"

	"pocket-calc/internal/app"
	"pocket-calc/internal/config"
	"pocket-calc/internal/logger"
)

func main() {
	configPath := config.Path()

	cfg, cfgErr := config.Load(configPath)
	log := logger.New(cfg.Log.Level, cfg.Log.JSON)

	if cfgErr != nil {
		// defaults are already in place
		log.Error("Main", cfgErr, map[string]interface{}{
			"config_path": configPath,
		})
	}

	application, err := app.NewApplication(cfg, configPath, log)
	if err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	log.Info("Main", "application terminated", nil)
}
