// Package cli wires canvasclip's use cases and adapters for the command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/application/usecase"
	"github.com/bnema/canvasclip/internal/cli/styles"
	"github.com/bnema/canvasclip/internal/domain/build"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/infrastructure/cache"
	"github.com/bnema/canvasclip/internal/infrastructure/config"
	"github.com/bnema/canvasclip/internal/infrastructure/encoder"
	"github.com/bnema/canvasclip/internal/infrastructure/idgen"
	"github.com/bnema/canvasclip/internal/infrastructure/imageprobe"
	"github.com/bnema/canvasclip/internal/logging"
)

const probeCacheTTL = 10 * time.Minute

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is set when the config file could not be loaded and
	// defaults are in use.
	ConfigErr error

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	} else {
		for _, w := range mgr.UnknownKeys() {
			logger.Warn().Str("key", w.Key).Str("suggestion", w.Suggestion).Msg("unknown config key")
		}
	}

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewTheme(),
		ConfigErr: loadErr,
		ctx:       logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewPasteUseCase builds the paste resolver from the loaded configuration.
func (a *App) NewPasteUseCase() (*usecase.PasteCardsUseCase, error) {
	ids, err := idgen.New(idgen.Scheme(a.Config.Paste.IDScheme))
	if err != nil {
		return nil, err
	}

	var probeCache port.Cache[string, bool]
	if a.Config.Probe.CacheSize > 0 {
		probeCache = cache.NewLRU[string, bool](a.Config.Probe.CacheSize, cache.WithTTL(probeCacheTTL))
	}
	probe := imageprobe.NewProber(imageprobe.Config{
		Timeout:           a.Config.Probe.Timeout(),
		MaxBytes:          a.Config.Probe.MaxBytes,
		AllowInsecureHTTP: a.Config.Probe.AllowInsecureHTTP,
	}, probeCache)

	return usecase.NewPasteCardsUseCase(
		port.CardFactoryFunc(entity.NewCard),
		probe,
		encoder.NewDataURI(int(a.Config.Probe.MaxBytes)),
		ids,
		usecase.PasteOptions{
			ImageStagger: a.Config.Paste.ImageStagger,
			ProseModes:   a.Config.Paste.ProseModes,
		},
	)
}

// NewCopyUseCase builds the copy serializer over transport.
func (a *App) NewCopyUseCase(transport port.CopyTransport) *usecase.CopyCardsUseCase {
	return usecase.NewCopyCardsUseCase(transport)
}
