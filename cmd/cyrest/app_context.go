package main

import (
	"github.com/go-cytoscape/cyrest/internal/client"
	"github.com/go-cytoscape/cyrest/internal/config"
	"github.com/go-cytoscape/cyrest/internal/logger"
	"github.com/go-cytoscape/cyrest/internal/props"
	"github.com/go-cytoscape/cyrest/internal/schema"
	"github.com/go-cytoscape/cyrest/internal/style"
)

// appContext bundles the wired-up library components a command needs.
type appContext struct {
	settings config.Settings
	log      *logger.Logger
	svc      schema.Service
	applier  *style.Applier
	mapper   *props.Mapper
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	settings := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if flags.baseURL != "" {
		settings.BaseURL = flags.baseURL
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level})
	if err != nil {
		return nil, err
	}

	c := client.New(settings.BaseURL, settings.RequestTimeout.Std(), log)
	svc := schema.NewREST(c)
	applier := style.NewApplier(svc, settings.PropagationDelay.Std(), log)

	return &appContext{
		settings: settings,
		log:      log,
		svc:      svc,
		applier:  applier,
		mapper:   props.New(svc, applier, log),
	}, nil
}
