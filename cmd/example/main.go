package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	sitenav "github.com/goliatone/go-sitenav"
)

func main() {
	ctx := context.Background()

	cfg := sitenav.DefaultConfig()
	cfg.Media.BaseURL = envOr("SITENAV_MEDIA_BASE_URL", "https://cdn.example.uz")
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "debug"

	if apiBase := os.Getenv("SITENAV_API_BASE_URL"); apiBase != "" {
		cfg.API.Enabled = true
		cfg.API.BaseURL = apiBase
		cfg.API.Token = os.Getenv("SITENAV_API_TOKEN")
	}

	if contentDir := os.Getenv("SITENAV_CONTENT_DIR"); contentDir != "" {
		cfg.Features.Markdown = true
		cfg.Markdown.ContentDir = contentDir
	}

	module, err := sitenav.New(cfg)
	if err != nil {
		log.Fatalf("sitenav: %v", err)
	}
	defer module.Close()

	if module.Importer() != nil {
		stats, err := module.SeedFromMarkdown(ctx)
		if err != nil {
			log.Fatalf("seed markdown: %v", err)
		}
		fmt.Printf("seeded %d nodes, %d records (%d skipped)\n", stats.Nodes, stats.Records, stats.Skipped)
	}

	for _, path := range []string{"/", "/about", "/about/press", "/missing"} {
		result := module.Navigate(ctx, path)
		fmt.Printf("%-16s -> %s\n", path, result.State)
		if result.State == sitenav.StateRendered {
			encoded, _ := json.MarshalIndent(result.View, "", "  ")
			fmt.Println(string(encoded))
		}
	}

	if addr := os.Getenv("SITENAV_LISTEN"); addr != "" {
		mux := http.NewServeMux()
		module.MountPublicAPI(mux, "api")
		fmt.Printf("listening on %s\n", addr)
		log.Fatal(http.ListenAndServe(addr, mux))
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
