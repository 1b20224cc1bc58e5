package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/gogpu/gg"

	"LocalCanvas/internal/board"
	"LocalCanvas/internal/config"
	"LocalCanvas/internal/export"
	"LocalCanvas/internal/ui"
)

func main() {
	configPath := flag.String("config", config.Path(), "path to config.toml")
	debug := flag.Bool("debug", false, "log rasterizer diagnostics")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Using default config: %v", err)
	}
	if *debug || conf.Debug {
		gg.SetLogger(slog.Default())
	}

	log.Printf("Downloads go to %s", conf.DownloadDir)
	exporter := export.NewExporter(export.DirDownloader{Dir: conf.DownloadDir})
	b := board.New(conf.Tools(), exporter)

	ui.RunApp(b, float32(conf.WindowWidth), float32(conf.WindowHeight))
}
