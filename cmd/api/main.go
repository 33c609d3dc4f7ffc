package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chatbot-api/config"
	_ "chatbot-api/docs" // Swagger docs
	"chatbot-api/internal/httpserver"
	"chatbot-api/pkg/log"
	"chatbot-api/pkg/ollama"
	"chatbot-api/pkg/websearch"
)

// @title       Chatbot API
// @description LLM chat relay with file uploads and optional web search, backed by Ollama Cloud.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chatbot API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Outbound clients. A missing key disables that capability but
	// never blocks startup; the chat pipeline degrades per request.
	var llm ollama.IOllama
	if cfg.Ollama.APIKey != "" {
		llm, err = ollama.New(ollama.Config{
			APIKey:     cfg.Ollama.APIKey,
			Model:      cfg.Ollama.Model,
			BaseURL:    cfg.Ollama.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Ollama.Timeout},
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Ollama client: ", err)
			return
		}
		logger.Infof(ctx, "Ollama client initialized (model: %s)", llm.Model())
	} else {
		logger.Warn(ctx, "CLOUD_API_KEY is missing, chat requests will fail with a model error")
	}

	var searcher websearch.ISearcher
	if cfg.WebSearch.APIKey != "" {
		searcher, err = websearch.New(websearch.Config{
			APIKey:     cfg.WebSearch.APIKey,
			BaseURL:    cfg.WebSearch.BaseURL,
			MaxResults: cfg.WebSearch.MaxResults,
			HTTPClient: &http.Client{Timeout: cfg.WebSearch.Timeout},
			CacheSize:  cfg.WebSearch.CacheSize,
			CacheTTL:   cfg.WebSearch.CacheTTL,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize web search client: ", err)
			return
		}
		logger.Info(ctx, "Web search client initialized")
	} else {
		logger.Warn(ctx, "WEB_SEARCH_API_KEY is missing, web search will be skipped")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		LLM:         llm,
		Searcher:    searcher,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
