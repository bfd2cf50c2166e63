package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/admp/internal/admp/entity"
	"github.com/jimyag/admp/internal/admp/service"
	"github.com/jimyag/admp/pkg/ginx"
	"github.com/rs/zerolog"
)

// MigrationServiceInterface 定义迁移服务的接口
type MigrationServiceInterface interface {
	PlanMigration(ctx context.Context, req *entity.PlanMigrationRequest) (*entity.MigrationPlan, error)
	StartMigration(ctx context.Context, req *entity.StartMigrationRequest) (*entity.Migration, error)
	GetMigration(ctx context.Context, migrationID string) (*entity.Migration, error)
	ListMigrations(ctx context.Context, req *entity.ListMigrationsRequest) ([]entity.Migration, error)
}

type Migration struct {
	migrationService MigrationServiceInterface
}

func NewMigration(migrationService *service.MigrationService) *Migration {
	return &Migration{
		migrationService: migrationService,
	}
}

func (m *Migration) RegisterRoutes(router *gin.RouterGroup) {
	migrationRouter := router.Group("/migrations")
	migrationRouter.POST("/plan", ginx.Adapt(m.PlanMigration))
	migrationRouter.POST("/start", ginx.Adapt(m.StartMigration))
	migrationRouter.POST("/list", ginx.Adapt(m.ListMigrations))
	migrationRouter.POST("/describe", ginx.Adapt(m.DescribeMigration))
}

func (m *Migration) PlanMigration(ctx *gin.Context, req *entity.PlanMigrationRequest) (*entity.PlanMigrationResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("subscriptionID", req.SubscriptionID).
		Str("resourceGroup", req.ResourceGroupName).
		Str("vmName", req.VMName).
		Msg("PlanMigration called")

	plan, err := m.migrationService.PlanMigration(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to plan migration")
		return nil, err
	}

	logger.Info().
		Str("vmName", plan.VMName).
		Int("disks", len(plan.Disks)).
		Int("skipped", len(plan.Skipped)).
		Msg("Migration planned successfully")

	return &entity.PlanMigrationResponse{
		Plan: plan,
	}, nil
}

func (m *Migration) StartMigration(ctx *gin.Context, req *entity.StartMigrationRequest) (*entity.StartMigrationResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("subscriptionID", req.SubscriptionID).
		Str("resourceGroup", req.ResourceGroupName).
		Str("vmName", req.VMName).
		Msg("StartMigration called")

	migration, err := m.migrationService.StartMigration(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to start migration")
		return nil, err
	}

	logger.Info().
		Str("migrationID", migration.ID).
		Str("state", migration.State).
		Msg("Migration finished")

	return &entity.StartMigrationResponse{
		Migration: migration,
	}, nil
}

func (m *Migration) ListMigrations(ctx *gin.Context, req *entity.ListMigrationsRequest) (*entity.ListMigrationsResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("ListMigrations called")

	migrations, err := m.migrationService.ListMigrations(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to list migrations")
		return nil, err
	}

	logger.Info().
		Int("count", len(migrations)).
		Msg("Migrations listed successfully")

	return &entity.ListMigrationsResponse{
		Migrations: migrations,
	}, nil
}

func (m *Migration) DescribeMigration(ctx *gin.Context, req *entity.DescribeMigrationRequest) (*entity.DescribeMigrationResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("migrationID", req.MigrationID).
		Msg("DescribeMigration called")

	migration, err := m.migrationService.GetMigration(ctx, req.MigrationID)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to describe migration")
		return nil, err
	}

	logger.Info().
		Str("migrationID", migration.ID).
		Msg("Migration described successfully")

	return &entity.DescribeMigrationResponse{
		Migration: migration,
	}, nil
}
