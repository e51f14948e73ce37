package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/King0lightai/JT-Power-Tools-sub005/notetext"
	"github.com/King0lightai/JT-Power-Tools-sub005/tmpstore"
	"github.com/King0lightai/JT-Power-Tools-sub005/util"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

type Service struct {
	config util.Config
	store  db.Store
	cache  tmpstore.Store
	engine *notetext.Engine
	policy *bluemonday.Policy
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config, note store, preview cache and text engine.
func NewService(
	config util.Config,
	store db.Store,
	cache tmpstore.Store,
	engine *notetext.Engine,
) (*Service, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return nil, fmt.Errorf("cannot create service: %w", err)
	}

	if port == "" {
		port = "80"
	}

	if engine == nil {
		engine = notetext.New()
	}

	service := &Service{
		config: config,
		store:  store,
		cache:  cache,
		engine: engine,
		policy: newPreviewPolicy(),
	}

	server := &http.Server{
		Addr: net.JoinHostPort(host, port),
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
