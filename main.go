package main

import (
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	gormlogger "gorm.io/gorm/logger"

	"floatclock/internal/config"
	"floatclock/internal/database"
	"floatclock/internal/platform"
	"floatclock/internal/platform/hotkeys"
	"floatclock/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

const (
	minWidth  = 120
	minHeight = 48
)

func main() {
	log := logger.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error reading configuration, using defaults:", err)
		cfg = config.Default()
	}

	gormLevel := gormlogger.Warn
	if cfg.LogLevel <= logger.DEBUG {
		gormLevel = gormlogger.Info
	}
	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: gormLevel,
		Log:      log,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	window := platform.NewWailsWindow(minWidth, minHeight)
	shortcuts := hotkeys.New()

	p := services.Platform{
		Window:  window,
		Hotkeys: shortcuts,
	}
	if autostart, err := platform.NewLoginAutostart("floatclock", "Floating Clock"); err != nil {
		log.Warning(fmt.Sprintf("launch on startup unavailable: %v", err))
	} else {
		p.Autostart = autostart
	}

	var tray platform.Tray
	p.NewTray = func(menu platform.TrayMenu) platform.Tray {
		tray = platform.NewSystrayTray(menu, log)
		return tray
	}

	svc := services.NewServices(db, cfg, p, log)
	app := NewApp(svc, window, shortcuts, tray, log)

	app.dbClose = func() error { return database.Close(db) }

	// Create application with options
	err = wails.Run(&options.App{
		Title:            "Clock",
		Width:            260,
		Height:           110,
		MinWidth:         minWidth,
		MinHeight:        minHeight,
		Frameless:        true,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:   log,
		LogLevel: cfg.LogLevel,
		Linux: &linux.Options{
			WindowIsTranslucent: true,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "floatclock",
		},
		Mac: &mac.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		OnStartup:  app.startup,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
