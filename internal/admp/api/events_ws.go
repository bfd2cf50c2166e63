package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jimyag/admp/internal/admp/entity"
	"github.com/jimyag/admp/internal/admp/service"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// 允许所有来源 (生产环境应该检查 Origin)
		return true
	},
}

// EventsWS 通过 WebSocket 推送迁移进度事件
type EventsWS struct {
	migrationService MigrationServiceInterface
	events           *service.EventBroker
}

func NewEventsWS(migrationService *service.MigrationService, events *service.EventBroker) *EventsWS {
	return &EventsWS{
		migrationService: migrationService,
		events:           events,
	}
}

func (e *EventsWS) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/migrations/events/:migration_id", e.HandleEventsWebSocket)
}

// HandleEventsWebSocket 处理迁移事件 WebSocket 连接
// 订阅指定迁移的事件并逐条推送，收到 migration-finished 后关闭连接。
// 迁移已经处于终态时直接推送一条 migration-finished 再关闭
func (e *EventsWS) HandleEventsWebSocket(ctx *gin.Context) {
	logger := zerolog.Ctx(ctx.Request.Context())
	migrationID := ctx.Param("migration_id")

	logger.Info().
		Str("migration_id", migrationID).
		Msg("Migration events WebSocket connection request")

	if _, err := e.migrationService.GetMigration(ctx.Request.Context(), migrationID); err != nil {
		logger.Error().
			Err(err).
			Str("migration_id", migrationID).
			Msg("Failed to get migration")
		ctx.JSON(http.StatusNotFound, gin.H{"error": "migration not found"})
		return
	}

	ch, cancel := e.events.Subscribe(migrationID)
	defer cancel()

	wsConn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to upgrade WebSocket")
		return
	}
	defer wsConn.Close()

	// 订阅之后重新读取状态
	// 迁移在首次读取和订阅之间进入终态时 migration-finished 已经错过，
	// 用订阅后的状态补发一条再关闭
	migration, err := e.migrationService.GetMigration(ctx.Request.Context(), migrationID)
	if err != nil {
		logger.Error().
			Err(err).
			Str("migration_id", migrationID).
			Msg("Failed to get migration after subscribe")
		return
	}

	if migration.State == entity.MigrationStateSucceeded || migration.State == entity.MigrationStateFailed {
		_ = wsConn.WriteJSON(entity.MigrationEvent{
			MigrationID: migrationID,
			Type:        "migration-finished",
			Message:     migration.State,
			Timestamp:   migration.FinishedAt,
		})
		return
	}

	for event := range ch {
		if err := wsConn.WriteJSON(event); err != nil {
			logger.Warn().
				Err(err).
				Str("migration_id", migrationID).
				Msg("Failed to write event, closing connection")
			return
		}
		if event.Type == "migration-finished" {
			break
		}
	}

	logger.Info().
		Str("migration_id", migrationID).
		Msg("Migration events session ended")
}
