package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jimyag/admp/internal/admp/entity"
	"github.com/jimyag/admp/internal/admp/service"
	"github.com/jimyag/admp/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventsServer(t *testing.T, mockService *MockMigrationService, events *service.EventBroker) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	eventsWS := &EventsWS{migrationService: mockService, events: events}
	eventsWS.RegisterRoutes(engine.Group("/api"))
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server
}

func dialEvents(t *testing.T, server *httptest.Server, migrationID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/migrations/events/" + migrationID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestEventsWS_StreamUntilFinished(t *testing.T) {
	mockService := &MockMigrationService{}
	mockService.On("GetMigration", mock.Anything, "mig-123").
		Return(&entity.Migration{ID: "mig-123", State: entity.MigrationStateRunning}, nil)
	events := service.NewEventBroker()
	server := setupEventsServer(t, mockService, events)

	// 握手完成时服务端已经订阅，直接发布即可
	conn := dialEvents(t, server, "mig-123")

	events.Publish(entity.MigrationEvent{
		MigrationID: "mig-123",
		Type:        "disk-started",
		DiskName:    "testvm1-osdisk",
	})
	events.Publish(entity.MigrationEvent{
		MigrationID: "mig-123",
		Type:        "migration-finished",
		Message:     entity.MigrationStateSucceeded,
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first entity.MigrationEvent
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "disk-started", first.Type)
	assert.Equal(t, "testvm1-osdisk", first.DiskName)
	assert.NotEmpty(t, first.Timestamp)

	var last entity.MigrationEvent
	require.NoError(t, conn.ReadJSON(&last))
	assert.Equal(t, "migration-finished", last.Type)

	// migration-finished 之后服务端关闭连接
	err := conn.ReadJSON(&entity.MigrationEvent{})
	assert.Error(t, err)
}

func TestEventsWS_FinishedMigration(t *testing.T) {
	mockService := &MockMigrationService{}
	mockService.On("GetMigration", mock.Anything, "mig-done").
		Return(&entity.Migration{
			ID:         "mig-done",
			State:      entity.MigrationStateSucceeded,
			FinishedAt: "2026-01-02T15:04:05Z",
		}, nil)
	events := service.NewEventBroker()
	server := setupEventsServer(t, mockService, events)

	conn := dialEvents(t, server, "mig-done")
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var event entity.MigrationEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "migration-finished", event.Type)
	assert.Equal(t, entity.MigrationStateSucceeded, event.Message)
}

func TestEventsWS_FinishDuringHandshake(t *testing.T) {
	// 迁移在首次读取和订阅之间进入终态：
	// migration-finished 事件发布时还没有订阅者，
	// 连接建立后必须根据订阅后的状态补发，不能挂在空通道上
	mockService := &MockMigrationService{}
	mockService.On("GetMigration", mock.Anything, "mig-racy").
		Return(&entity.Migration{ID: "mig-racy", State: entity.MigrationStateRunning}, nil).Once()
	mockService.On("GetMigration", mock.Anything, "mig-racy").
		Return(&entity.Migration{
			ID:         "mig-racy",
			State:      entity.MigrationStateFailed,
			FinishedAt: "2026-01-02T15:04:05Z",
		}, nil)
	events := service.NewEventBroker()
	server := setupEventsServer(t, mockService, events)

	conn := dialEvents(t, server, "mig-racy")
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var event entity.MigrationEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "migration-finished", event.Type)
	assert.Equal(t, entity.MigrationStateFailed, event.Message)

	// 补发之后连接被关闭
	err := conn.ReadJSON(&entity.MigrationEvent{})
	assert.Error(t, err)
}

func TestEventsWS_MigrationNotFound(t *testing.T) {
	mockService := &MockMigrationService{}
	mockService.On("GetMigration", mock.Anything, "mig-missing").
		Return(nil, apierror.ErrMigrationNotFound.WithMessage("migration %q could not be found", "mig-missing"))
	events := service.NewEventBroker()
	server := setupEventsServer(t, mockService, events)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/migrations/events/mig-missing"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	if conn != nil {
		_ = conn.Close()
	}
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
