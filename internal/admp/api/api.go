package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/admp/internal/admp/service"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	migration *Migration
	events    *EventsWS
}

func New(addr string, migrationService *service.MigrationService, events *service.EventBroker) (*API, error) {
	engine := gin.Default()
	api := &API{
		engine:    engine,
		migration: NewMigration(migrationService),
		events:    NewEventsWS(migrationService, events),
	}
	group := engine.Group("/api")
	api.migration.RegisterRoutes(group)
	api.events.RegisterRoutes(group)
	api.server = &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	return api, nil
}

func (a *API) Run(ctx context.Context) error {
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "ADMP API"
}
