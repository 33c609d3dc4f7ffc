package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatbot-api/config"
	"chatbot-api/pkg/log"
	"chatbot-api/pkg/ollama"
	"chatbot-api/pkg/websearch"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Outbound clients. Either may be nil when its API key is
	// missing; the chat pipeline degrades instead of refusing to
	// start.
	llm      ollama.IOllama
	searcher websearch.ISearcher
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	LLM      ollama.IOllama
	Searcher websearch.ISearcher
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		llm:         cfg.LLM,
		searcher:    cfg.Searcher,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("config is required")
	}
	return nil
}
