// Package admp 提供 ADMP 服务器的主入口和初始化逻辑
package admp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/admp/internal/admp/api"
	"github.com/jimyag/admp/internal/admp/config"
	"github.com/jimyag/admp/internal/admp/repository"
	"github.com/jimyag/admp/internal/admp/service"
	"github.com/jimyag/admp/pkg/azure"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 创建数据目录和迁移记录数据库
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	repo, err := repository.New(filepath.Join(cfg.DataDir, "admp.db"))
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}
	logger.Info().Str("dataDir", cfg.DataDir).Msg("Repository initialized")

	// 2. 创建 Azure Client（使用默认凭证链：环境变量、managed identity、az cli）
	azureClient, err := azure.New()
	if err != nil {
		return nil, fmt.Errorf("create azure client: %w", err)
	}

	// 3. 创建 Event Broker
	events := service.NewEventBroker()

	// 4. 创建 Migration Service
	migrationService := service.NewMigrationService(azureClient, repo, events)

	// 5. 创建 API
	apiInstance, err := api.New(cfg.Address, migrationService, events)
	if err != nil {
		return nil, err
	}

	server := &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}
	return server, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "ADMP Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
