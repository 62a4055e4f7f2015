package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	cardgen "github.com/goliatone/go-cardgen"
	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/cardhtml"
	"github.com/goliatone/go-cardgen/pkg/store"
	"github.com/goliatone/go-cardgen/pkg/wizard"
)

func main() {
	configPath := flag.String("config", "", "card config path (JSON or YAML)")
	output := flag.String("output", "", "output file (stdout if empty)")
	assetBase := flag.String("asset-base", "/assets", "base URL for the stylesheet and sprites")
	initConfig := flag.Bool("init", false, "author a config interactively and write it to -output")
	serve := flag.String("serve", "", "serve the card API and rendered cards on this address")
	dbPath := flag.String("db", "cards.db", "sqlite database path for -serve")
	flag.Parse()

	ctx := context.Background()

	switch {
	case *initConfig:
		if err := runInit(ctx, *output); err != nil {
			log.Fatalf("init failed: %v", err)
		}
	case *serve != "":
		if err := runServe(*serve, *dbPath, *assetBase); err != nil {
			log.Fatalf("serve failed: %v", err)
		}
	default:
		if *configPath == "" {
			log.Fatal("missing -config (or use -init / -serve)")
		}
		if err := runRender(ctx, *configPath, *output, *assetBase); err != nil {
			log.Fatalf("render failed: %v", err)
		}
	}
}

func runInit(ctx context.Context, output string) error {
	cfg, err := wizard.New(nil).Run(ctx)
	if err != nil {
		if errors.Is(err, wizard.ErrAborted) {
			fmt.Println("Aborted, nothing written.")
			return nil
		}
		return err
	}

	data, err := card.Export(cfg)
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", output)
	return nil
}

func runRender(ctx context.Context, configPath, output, assetBase string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}
	cfg, err := card.Import(data)
	if err != nil {
		return err
	}

	html, err := cardgen.RenderHTML(ctx, cfg,
		cardgen.WithDocument(true),
		cardgen.WithAssetBase(assetBase),
	)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Println(string(html))
		return nil
	}
	if err := os.WriteFile(output, html, 0o644); err != nil {
		return err
	}
	fmt.Printf("Card written to %s\n", output)
	return nil
}

func runServe(addr, dbPath, assetBase string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	backend, err := store.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer backend.Close()

	service := store.NewService(backend, store.WithLogger(logger))
	renderer, err := cardhtml.New()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(store.CardPath, store.NewHandler(service, store.WithHandlerLogger(logger)))
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(cardhtml.AssetsFS())))
	mux.HandleFunc("/card/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/card/")
		if id == "" {
			http.Error(w, "missing card id", http.StatusBadRequest)
			return
		}

		cfg, err := service.Load(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			logger.Error("load card failed", zap.String("id", id), zap.Error(err))
			http.Error(w, "could not load card", http.StatusInternalServerError)
			return
		}

		html, err := renderer.Render(r.Context(), cfg, render.Options{
			Document:  true,
			AssetBase: assetBase,
		})
		if err != nil {
			logger.Error("render card failed", zap.String("id", id), zap.Error(err))
			http.Error(w, "could not render card", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		w.Write(html)
	})

	logger.Info("listening", zap.String("addr", addr), zap.String("db", dbPath))
	return http.ListenAndServe(addr, mux)
}
