package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	calendarinadapter "tempo/internal/modules/calendar/adapter/in"
	calendaroutadapter "tempo/internal/modules/calendar/adapter/out"
	calendarservice "tempo/internal/modules/calendar/service"
	calendarusecase "tempo/internal/modules/calendar/usecase"
	practiceinadapter "tempo/internal/modules/practice/adapter/in"
	practiceoutadapter "tempo/internal/modules/practice/adapter/out"
	practiceout "tempo/internal/modules/practice/port/out"
	practiceservice "tempo/internal/modules/practice/service"
	practiceusecase "tempo/internal/modules/practice/usecase"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/config"
	"tempo/internal/platform/id"
	uiapp "tempo/internal/ui/app"
)

type App struct {
	PracticeCLI practiceinadapter.CLIHandler
	CalendarCLI calendarinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	auth := calendaroutadapter.NewOAuthAuthorizer(cfg.Calendar.ClientID, cfg.Calendar.ClientSecret, cfg.TokenPath)
	calendarUC := calendarusecase.NewInteractor(
		calendarservice.NewCalendarService(calendaroutadapter.NewGoogleEventsAPI(auth), cfg.Calendar.Name),
		auth,
		ids,
	)

	dataset, err := newDatasetStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("new dataset store: %w", err)
	}
	practiceUC := practiceusecase.NewInteractor(
		practiceservice.NewPracticeService(clk, dataset),
		calendarUC,
		cfg.Cutoff,
	)

	return &App{
		PracticeCLI: practiceinadapter.NewCLIHandler(practiceUC),
		CalendarCLI: calendarinadapter.NewCLIHandler(calendarUC),
	}, nil
}

// newDatasetStore prefers the configured sqlite dataset and falls back to
// the builtin seed dataset when no file is configured or present.
func newDatasetStore(cfg config.Config) (practiceout.DatasetStore, error) {
	if cfg.DatasetPath == "" {
		return practiceoutadapter.NewBuiltinDatasetStore(), nil
	}
	if _, err := os.Stat(cfg.DatasetPath); err != nil {
		if os.IsNotExist(err) {
			return practiceoutadapter.NewBuiltinDatasetStore(), nil
		}
		return nil, err
	}
	return practiceoutadapter.NewSQLiteDatasetStore(cfg.DatasetPath)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.PracticeCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
