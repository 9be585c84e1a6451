// Command clocktui shows the floating clock in a terminal, sharing the
// desktop app's preferences database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wailsapp/wails/v2/pkg/logger"
	gormlogger "gorm.io/gorm/logger"

	"floatclock/internal/config"
	"floatclock/internal/database"
	"floatclock/internal/repositories"
	"floatclock/internal/services"
	"floatclock/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error reading configuration, using defaults:", err)
		cfg = config.Default()
	}

	// The terminal belongs to bubbletea, so logs go to a file.
	log := logger.NewFileLogger(cfg.LogFile)

	db, err := database.Init(database.Config{Path: cfg.DBPath, LogLevel: gormlogger.Warn, Log: log})
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	repo := repositories.NewStoreEntryRepository(db)
	prefs := services.NewPreferencesService(services.PreferencesDeps{
		Gateway: services.NewSettingsGateway(repo, cfg.StoreName, cfg.SettingsKey, log),
		Log:     log,
	})
	ready := prefs.Initialize(context.Background())

	p := tea.NewProgram(tui.New(prefs, ready), tea.WithAltScreen())
	_, runErr := p.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	prefs.Shutdown(ctx)
	if err := database.Close(db); err != nil {
		log.Error(fmt.Sprintf("close database: %v", err))
	}

	if runErr != nil {
		fmt.Printf("Alas, there's been an error: %v\n", runErr)
		os.Exit(1)
	}
}
