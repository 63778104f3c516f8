package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cribtrain/internal/config"
	"github.com/jask/cribtrain/internal/database"
	"github.com/jask/cribtrain/internal/database/repository"
	"github.com/jask/cribtrain/internal/render"
	"github.com/jask/cribtrain/internal/session"
	"github.com/jask/cribtrain/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var results *repository.ResultRepo
	if cfg.History.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			log.Fatalf("mkdir db dir: %v", err)
		}
		if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()
		results = repository.NewResultRepo(db)
	}

	seed := cfg.Deck.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dealer := session.NewDealer(rand.New(rand.NewSource(seed)))

	var renderer render.Renderer = render.Color{}
	if !cfg.UI.Color {
		renderer = render.Plain{}
	}

	app := tui.New(ctx, dealer, &session.Stats{}, results, renderer)
	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Goodbye!")
}
