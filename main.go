package main

import (
	"templatedesk/internal/application"
	"templatedesk/internal/config"
	"templatedesk/internal/transport"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

func main() {
	// Configuration is needed before the window exists
	cfg := config.New()
	window := cfg.LoadWindow()

	app := application.NewApp(cfg)

	err := wails.Run(&options.App{
		Title:  window.Title,
		Width:  window.Width,
		Height: window.Height,

		AssetServer: &assetserver.Options{
			Handler: transport.NewAssetHandler(cfg, window.StartPage),
		},

		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		cfg.Logger.Error("Application exited with error", "error", err)
	}
}
