package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	authinadapter "studyhub/internal/modules/auth/adapter/in"
	authoutadapter "studyhub/internal/modules/auth/adapter/out"
	authservice "studyhub/internal/modules/auth/service"
	authusecase "studyhub/internal/modules/auth/usecase"
	moderationinadapter "studyhub/internal/modules/moderation/adapter/in"
	moderationoutadapter "studyhub/internal/modules/moderation/adapter/out"
	moderationout "studyhub/internal/modules/moderation/port/out"
	moderationservice "studyhub/internal/modules/moderation/service"
	moderationusecase "studyhub/internal/modules/moderation/usecase"
	motivationinadapter "studyhub/internal/modules/motivation/adapter/in"
	motivationoutadapter "studyhub/internal/modules/motivation/adapter/out"
	motivationusecase "studyhub/internal/modules/motivation/usecase"
	planinadapter "studyhub/internal/modules/plan/adapter/in"
	planoutadapter "studyhub/internal/modules/plan/adapter/out"
	planusecase "studyhub/internal/modules/plan/usecase"
	progressinadapter "studyhub/internal/modules/progress/adapter/in"
	progressoutadapter "studyhub/internal/modules/progress/adapter/out"
	progressservice "studyhub/internal/modules/progress/service"
	progressusecase "studyhub/internal/modules/progress/usecase"
	resourceinadapter "studyhub/internal/modules/resource/adapter/in"
	resourceoutadapter "studyhub/internal/modules/resource/adapter/out"
	resourceusecase "studyhub/internal/modules/resource/usecase"
	summarizeinadapter "studyhub/internal/modules/summarize/adapter/in"
	summarizeoutadapter "studyhub/internal/modules/summarize/adapter/out"
	summarizeservice "studyhub/internal/modules/summarize/service"
	summarizeusecase "studyhub/internal/modules/summarize/usecase"
	"studyhub/internal/platform/api"
	"studyhub/internal/platform/clock"
	"studyhub/internal/platform/config"
	"studyhub/internal/platform/id"
	uiapp "studyhub/internal/ui/app"
)

type App struct {
	AuthCLI       authinadapter.CLIHandler
	PlanCLI       planinadapter.CLIHandler
	ResourceCLI   resourceinadapter.CLIHandler
	MotivationCLI motivationinadapter.CLIHandler
	SummarizeCLI  summarizeinadapter.CLIHandler
	ProgressCLI   progressinadapter.CLIHandler
	FilterCLI     moderationinadapter.CLIHandler
}

func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	credStore := authoutadapter.NewFileCredentialStore(cfg.CredentialsPath(), clk)
	apiClient := api.New(cfg.APIBaseURL, cfg.RequestTimeout(), credStore, ids, log)

	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(clk, credStore),
		authoutadapter.NewAPIAuthClient(apiClient),
	)

	ledgerStore := progressoutadapter.NewFileLedgerStore(cfg.LedgerPath())
	historyProjector, err := progressoutadapter.NewSQLiteHistoryProjector(cfg.HistoryDBPath())
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	progressUC := progressusecase.NewInteractor(
		progressservice.NewProgressService(clk, ledgerStore, historyProjector),
	)

	planUC := planusecase.NewInteractor(
		planoutadapter.NewAPIPlannerClient(apiClient),
		progressUC,
	)

	var classifier moderationout.Classifier
	var manifestStore moderationout.ManifestStore
	var host moderationout.Host
	if cfg.Moderation.Mode == "plugin" {
		manifestStore = moderationoutadapter.NewFileManifestStore(cfg.DataDir)
		host = moderationoutadapter.NewGRPCHost()
		classifier = moderationoutadapter.NewPluginClassifier(manifestStore, host)
	} else {
		classifier = moderationoutadapter.NewKeywordClassifier()
	}
	moderationUC := moderationusecase.NewInteractor(
		moderationservice.NewModerationService(classifier, manifestStore, host),
	)

	resourceUC := resourceusecase.NewInteractor(
		resourceoutadapter.NewAPIResourceClient(apiClient),
		moderationUC,
	)
	motivationUC := motivationusecase.NewInteractor(
		motivationoutadapter.NewAPIMotivationClient(apiClient),
		moderationUC,
	)

	summarizeUC := summarizeusecase.NewInteractor(summarizeservice.NewSummarizeService(
		summarizeoutadapter.NewLocalPDFProber(),
		summarizeoutadapter.NewAPISummarizeClient(apiClient),
	))

	return &App{
		AuthCLI:       authinadapter.NewCLIHandler(authUC),
		PlanCLI:       planinadapter.NewCLIHandler(planUC),
		ResourceCLI:   resourceinadapter.NewCLIHandler(resourceUC),
		MotivationCLI: motivationinadapter.NewCLIHandler(motivationUC),
		SummarizeCLI:  summarizeinadapter.NewCLIHandler(summarizeUC),
		ProgressCLI:   progressinadapter.NewCLIHandler(progressUC),
		FilterCLI:     moderationinadapter.NewCLIHandler(moderationUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.AuthCLI,
		app.PlanCLI,
		app.ResourceCLI,
		app.MotivationCLI,
		app.ProgressCLI,
		app.FilterCLI,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
