package app

import (
	"os"

	"file-mover/internal/config"
	"file-mover/internal/controllers"
	"file-mover/internal/display"
	"file-mover/internal/journal"
	"file-mover/internal/logger"
	"file-mover/internal/mover"
	"file-mover/internal/registry"
	"file-mover/internal/sequencer"
	"file-mover/internal/shutdown"
	"file-mover/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName         = "File Mover"
	AppID           = "io.github.filemover"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 720
	MinWindowHeight = 480
)

// Options carries everything resolved before the window opens.
type Options struct {
	Config  *config.Config
	Logger  logger.Logger
	Session string
	// Source skips the folder picker when set.
	Source string
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	controller *controllers.MainController
	view       *views.MainView
	registry   *registry.Registry
	journal    *journal.Store
	shutdown   *shutdown.Manager
	source     string
}

// NewApplication opens the registry (fatal on failure) and the journal
// (optional) and wires the MVC components together.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	reg, err := registry.Open(cfg.RegistryPath, log)
	if err != nil {
		return nil, err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(reg)

	var store *journal.Store
	var recorder controllers.Journal
	if cfg.JournalEnabled() {
		store, err = journal.Open(cfg.JournalPath)
		if err != nil {
			log.Warning("Application", "journal disabled", map[string]interface{}{
				"path":  cfg.JournalPath,
				"error": err.Error(),
			})
		} else {
			shutdownManager.Register(store)
			recorder = store
		}
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	policy := sequencer.DismissPolicy(cfg.DismissAction)
	seq := sequencer.New(mover.New(mover.Options{Overwrite: cfg.OverwriteExisting}), policy, log)

	view := views.NewMainView(window, display.Elider{
		MaxLength: cfg.Display.MaxLength,
		Keep:      cfg.Display.Keep,
		Marker:    cfg.Display.Marker,
	})
	controller := controllers.NewMainController(reg, seq, recorder, log, opts.Session)
	controller.SetMainView(view)
	shutdownManager.Register(controller)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":        AppVersion,
		"registry":       reg.Path(),
		"destinations":   reg.Len(),
		"journal":        store != nil,
		"dismiss_action": string(seq.Policy()),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		registry:   reg,
		journal:    store,
		shutdown:   shutdownManager,
		source:     opts.Source,
	}, nil
}

// Run shows the window, resolves the source folder and blocks until the
// window is closed.
func (a *Application) Run() error {
	a.setupWindowEvents()
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	if a.source != "" {
		a.loadSource(a.source)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		a.view.PromptSourceFolder(cwd, func(dir string) {
			if dir == "" {
				dir = cwd
			}
			a.loadSource(dir)
		})
	}

	a.fyneApp.Run()
	a.shutdown.Shutdown()
	return nil
}

func (a *Application) loadSource(dir string) {
	if err := a.controller.LoadSource(dir); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{"source": dir})
	}
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)

		state := a.controller.State()
		if len(state.Files) == 0 || state.Done() {
			a.close()
			return
		}
		a.view.ShowConfirm(
			"Exit File Mover",
			"Some files are still waiting for a decision. Exit anyway?",
			func(confirmed bool) {
				if confirmed {
					a.close()
				}
			},
		)
	})
}

func (a *Application) close() {
	a.shutdown.Shutdown()
	a.window.Close()
}
