package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "lotus/internal/modules/auth/adapter/in"
	authservice "lotus/internal/modules/auth/service"
	authusecase "lotus/internal/modules/auth/usecase"
	savedinadapter "lotus/internal/modules/saved/adapter/in"
	savedoutadapter "lotus/internal/modules/saved/adapter/out"
	savedservice "lotus/internal/modules/saved/service"
	savedusecase "lotus/internal/modules/saved/usecase"
	studiesinadapter "lotus/internal/modules/studies/adapter/in"
	studiesoutadapter "lotus/internal/modules/studies/adapter/out"
	studiesservice "lotus/internal/modules/studies/service"
	studiesusecase "lotus/internal/modules/studies/usecase"
	"lotus/internal/platform/clock"
	"lotus/internal/platform/config"
	"lotus/internal/platform/id"
	"lotus/internal/platform/logging"
	"lotus/internal/platform/slots"
	uiapp "lotus/internal/ui/app"
)

type App struct {
	Config     config.Config
	Logger     *zap.Logger
	StudiesCLI studiesinadapter.CLIHandler
	SavedCLI   savedinadapter.CLIHandler
	AuthCLI    authinadapter.CLIHandler

	slots *slots.SQLiteStore
}

func New(cfg config.Config, verbose bool) (*App, error) {
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel, verbose)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	store, err := slots.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open slot store: %w", err)
	}
	clk := clock.SystemClock{}

	studiesUC := studiesusecase.NewInteractor(studiesservice.NewSearchService(
		studiesoutadapter.NewHTTPFetcher(cfg.APIBase, cfg.RequestTimeout, logger.Named("fetch")),
		logger.Named("studies"),
	))
	savedUC := savedusecase.NewInteractor(savedservice.NewStore(
		store,
		savedoutadapter.NewFileExporter(cfg.ExportDir),
		clk,
		logger.Named("saved"),
	))
	authUC := authusecase.NewInteractor(authservice.NewAuthService(
		clk,
		id.UUID{},
		store,
		logger.Named("auth"),
	))

	logger.Debug("bootstrap complete",
		zap.String("api_base", cfg.APIBase),
		zap.String("db", cfg.DBPath),
	)
	return &App{
		Config:     cfg,
		Logger:     logger,
		StudiesCLI: studiesinadapter.NewCLIHandler(studiesUC),
		SavedCLI:   savedinadapter.NewCLIHandler(savedUC),
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		slots:      store,
	}, nil
}

// Close releases the slot store and flushes the logger.
func (a *App) Close() error {
	err := a.slots.Close()
	_ = a.Logger.Sync()
	return err
}

func RunTUI(app *App, query string) error {
	model := uiapp.NewModel(app.StudiesCLI, app.SavedCLI, app.AuthCLI, uiapp.Options{
		PageSize:     app.Config.PageSize,
		MinPaneWidth: app.Config.MinPaneWidth,
		PaneSplit:    app.Config.PaneSplit,
		Query:        query,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if err != nil {
		app.Logger.Error("tui exited", zap.Error(err))
	}
	return err
}
