package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimyag/admp/internal/admp/entity"
	"github.com/jimyag/admp/internal/admp/repository"
	"github.com/jimyag/admp/internal/admp/repository/model"
	"github.com/jimyag/admp/pkg/apierror"
	"github.com/jimyag/admp/pkg/azure"
	"github.com/jimyag/admp/pkg/diskplan"
	"github.com/jimyag/admp/pkg/idgen"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// MigrationService 磁盘迁移服务
// 把虚拟机的托管磁盘（系统盘 + 数据盘）拷贝为新的托管磁盘，
// 支持跨资源组 / 跨订阅，保留位置和 SKU，容量提升到下一个档位
type MigrationService struct {
	azureClient   azure.Client
	migrationRepo repository.MigrationRepository
	diskCopyRepo  repository.DiskCopyRepository
	events        *EventBroker
	idGen         *idgen.Generator
}

// NewMigrationService 创建新的 Migration Service
func NewMigrationService(azureClient azure.Client, repo *repository.Repository, events *EventBroker) *MigrationService {
	return &MigrationService{
		azureClient:   azureClient,
		migrationRepo: repository.NewMigrationRepository(repo.DB()),
		diskCopyRepo:  repository.NewDiskCopyRepository(repo.DB()),
		events:        events,
		idGen:         idgen.New(),
	}
}

// PlanMigration 生成迁移计划（干跑）
// 完成全部校验并推导每块磁盘的新磁盘参数，不发起任何拷贝
//
// 校验顺序：
//  1. 源订阅存在
//  2. 跨订阅时目标订阅存在（在任何磁盘操作前校验）
//  3. 源资源组存在
//  4. 虚拟机存在
//
// 数据盘引用解析失败（非托管盘或磁盘查找 404）不算致命，
// 记录到 Skipped 并产生告警
func (s *MigrationService) PlanMigration(ctx context.Context, req *entity.PlanMigrationRequest) (*entity.MigrationPlan, error) {
	logger := zerolog.Ctx(ctx)

	target := diskplan.ResolveTarget(req.SubscriptionID, req.ResourceGroupName, req.TargetSubscriptionID, req.TargetResourceGroupName)

	exists, err := s.azureClient.SubscriptionExists(ctx, req.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("check source subscription: %w", err)
	}
	if !exists {
		return nil, apierror.ErrSubscriptionNotFound.WithMessage("source subscription %q could not be found", req.SubscriptionID)
	}

	if target.CrossSubscription(req.SubscriptionID) {
		exists, err := s.azureClient.SubscriptionExists(ctx, target.SubscriptionID)
		if err != nil {
			return nil, fmt.Errorf("check target subscription: %w", err)
		}
		if !exists {
			return nil, apierror.ErrSubscriptionNotFound.WithMessage("target subscription %q could not be found", target.SubscriptionID)
		}
	}

	exists, err = s.azureClient.ResourceGroupExists(ctx, req.SubscriptionID, req.ResourceGroupName)
	if err != nil {
		return nil, fmt.Errorf("check source resource group: %w", err)
	}
	if !exists {
		return nil, apierror.ErrResourceGroupNotFound.WithMessage("source resource group %q could not be found in subscription %q", req.ResourceGroupName, req.SubscriptionID)
	}

	vm, err := s.azureClient.GetVirtualMachine(ctx, req.SubscriptionID, req.ResourceGroupName, req.VMName)
	if err != nil {
		if azure.IsNotFound(err) {
			return nil, apierror.ErrVirtualMachineNotFound.WithMessage("virtual machine %q could not be found in resource group %q", req.VMName, req.ResourceGroupName)
		}
		return nil, fmt.Errorf("get virtual machine: %w", err)
	}

	plan := &entity.MigrationPlan{
		VMName:               req.VMName,
		SourceSubscriptionID: req.SubscriptionID,
		SourceResourceGroup:  req.ResourceGroupName,
		TargetSubscriptionID: target.SubscriptionID,
		TargetResourceGroup:  target.ResourceGroupName,
	}

	// 系统盘必须存在且是托管盘
	if vm.OSDisk.Name == "" {
		return nil, apierror.ErrDiskNotFound.WithMessage("virtual machine %q has no os disk", req.VMName)
	}
	osDisk, err := s.azureClient.GetManagedDisk(ctx, req.SubscriptionID, req.ResourceGroupName, vm.OSDisk.Name)
	if err != nil {
		if azure.IsNotFound(err) {
			return nil, apierror.ErrDiskNotFound.WithMessage("os disk %q could not be found", vm.OSDisk.Name)
		}
		return nil, fmt.Errorf("get os disk %s: %w", vm.OSDisk.Name, err)
	}
	osPlanned, err := planDisk(req.VMName, entity.DiskRoleOS, 0, osDisk)
	if err != nil {
		return nil, err
	}
	plan.Disks = append(plan.Disks, osPlanned)

	// 数据盘按挂载顺序处理，序号从 1 开始
	for i, ref := range vm.DataDisks {
		index := i + 1
		if !ref.Managed() {
			s.skipDisk(plan, ref.Name, index, "not a managed disk")
			logger.Warn().Str("disk", ref.Name).Int("index", index).Msg("Data disk skipped: not a managed disk")
			continue
		}
		disk, err := s.azureClient.GetManagedDisk(ctx, req.SubscriptionID, req.ResourceGroupName, ref.Name)
		if err != nil {
			if azure.IsNotFound(err) {
				s.skipDisk(plan, ref.Name, index, "managed disk could not be found")
				logger.Warn().Str("disk", ref.Name).Int("index", index).Msg("Data disk skipped: managed disk could not be found")
				continue
			}
			return nil, fmt.Errorf("get data disk %s: %w", ref.Name, err)
		}
		planned, err := planDisk(req.VMName, entity.DiskRoleData, index, disk)
		if err != nil {
			return nil, err
		}
		plan.Disks = append(plan.Disks, planned)
	}

	return plan, nil
}

// skipDisk 把数据盘记录为跳过并附加告警
func (s *MigrationService) skipDisk(plan *entity.MigrationPlan, name string, index int, reason string) {
	plan.Skipped = append(plan.Skipped, entity.SkippedDisk{
		Name:   name,
		Index:  index,
		Reason: reason,
	})
	plan.Warnings = append(plan.Warnings, fmt.Sprintf("data disk %q (index %d) skipped: %s", name, index, reason))
}

// planDisk 推导单块磁盘的新磁盘参数
func planDisk(vmName string, role entity.DiskRole, index int, disk *azure.ManagedDisk) (entity.PlannedDisk, error) {
	tier, err := diskplan.ResolveTier(disk.SizeGB)
	if err != nil {
		return entity.PlannedDisk{}, apierror.ErrDiskSizeOutOfRange.
			WithMessage("disk %q size %d GB is outside the supported tier range", disk.Name, disk.SizeGB).
			WithRawError(err)
	}

	var newDiskName, osType string
	switch role {
	case entity.DiskRoleOS:
		newDiskName = diskplan.OSDiskName(vmName)
		osType = disk.OSType
	default:
		newDiskName = diskplan.DataDiskName(vmName, index)
	}

	return entity.PlannedDisk{
		Descriptor: entity.DiskDescriptor{
			SourceID:   disk.ID,
			SourceName: disk.Name,
			Role:       role,
			Index:      index,
			SizeGB:     disk.SizeGB,
			Location:   disk.Location,
			SKUName:    disk.SKUName,
			OSType:     disk.OSType,
		},
		Spec: entity.NewDiskSpec{
			SourceResourceID: disk.ID,
			DiskName:         newDiskName,
			Location:         disk.Location,
			SKUName:          disk.SKUName,
			OSType:           osType,
			SizeGB:           tier,
		},
	}, nil
}

// StartMigration 发起迁移并执行到结束
// 先生成计划（含全部校验），再逐盘串行拷贝；
// 任何校验失败都在发起第一块盘拷贝之前返回。
// 拷贝中途失败会中止剩余磁盘，已拷贝的磁盘不回滚
func (s *MigrationService) StartMigration(ctx context.Context, req *entity.StartMigrationRequest) (*entity.Migration, error) {
	logger := zerolog.Ctx(ctx)

	plan, err := s.PlanMigration(ctx, &entity.PlanMigrationRequest{
		SubscriptionID:          req.SubscriptionID,
		ResourceGroupName:       req.ResourceGroupName,
		VMName:                  req.VMName,
		TargetSubscriptionID:    req.TargetSubscriptionID,
		TargetResourceGroupName: req.TargetResourceGroupName,
	})
	if err != nil {
		return nil, err
	}

	migrationID, err := s.idGen.GenerateMigrationID()
	if err != nil {
		return nil, fmt.Errorf("generate migration ID: %w", err)
	}

	migration := &entity.Migration{
		ID:                   migrationID,
		VMName:               plan.VMName,
		SourceSubscriptionID: plan.SourceSubscriptionID,
		SourceResourceGroup:  plan.SourceResourceGroup,
		TargetSubscriptionID: plan.TargetSubscriptionID,
		TargetResourceGroup:  plan.TargetResourceGroup,
		State:                entity.MigrationStateRunning,
		CreatedAt:            time.Now().Format(time.RFC3339),
	}
	migrationModel, err := migrationEntityToModel(migration)
	if err != nil {
		return nil, fmt.Errorf("convert migration: %w", err)
	}
	if err := s.migrationRepo.Create(ctx, migrationModel); err != nil {
		return nil, fmt.Errorf("create migration record: %w", err)
	}

	logger.Info().
		Str("migrationID", migrationID).
		Str("vmName", plan.VMName).
		Int("disks", len(plan.Disks)).
		Int("skipped", len(plan.Skipped)).
		Msg("Migration started")

	// 跳过的磁盘先落记录并告警
	for _, skipped := range plan.Skipped {
		if err := s.recordSkippedDisk(ctx, migrationID, skipped); err != nil {
			return nil, err
		}
	}

	runErr := s.copyDisks(ctx, migrationID, plan)

	finishedAt := time.Now()
	migrationModel.FinishedAt = &finishedAt
	if runErr != nil {
		migrationModel.State = entity.MigrationStateFailed
		migrationModel.Error = runErr.Error()
	} else {
		migrationModel.State = entity.MigrationStateSucceeded
	}
	if err := s.migrationRepo.Update(ctx, migrationModel); err != nil {
		return nil, fmt.Errorf("update migration record: %w", err)
	}

	s.events.Publish(entity.MigrationEvent{
		MigrationID: migrationID,
		Type:        "migration-finished",
		Message:     migrationModel.State,
	})

	result, err := s.GetMigration(ctx, migrationID)
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		logger.Error().Err(runErr).Str("migrationID", migrationID).Msg("Migration failed")
		return result, runErr
	}
	logger.Info().Str("migrationID", migrationID).Msg("Migration succeeded")
	return result, nil
}

// copyDisks 串行拷贝计划中的磁盘，第一次失败即中止
func (s *MigrationService) copyDisks(ctx context.Context, migrationID string, plan *entity.MigrationPlan) error {
	logger := zerolog.Ctx(ctx)
	target := diskplan.MigrationTarget{
		SubscriptionID:    plan.TargetSubscriptionID,
		ResourceGroupName: plan.TargetResourceGroup,
	}

	for _, planned := range plan.Disks {
		copyID, err := s.idGen.GenerateDiskCopyID()
		if err != nil {
			return fmt.Errorf("generate disk copy ID: %w", err)
		}

		diskCopy := &entity.DiskCopy{
			ID:             copyID,
			MigrationID:    migrationID,
			Role:           string(planned.Descriptor.Role),
			DiskIndex:      planned.Descriptor.Index,
			SourceDiskID:   planned.Descriptor.SourceID,
			SourceDiskName: planned.Descriptor.SourceName,
			NewDiskName:    planned.Spec.DiskName,
			SourceSizeGB:   planned.Descriptor.SizeGB,
			TargetSizeGB:   planned.Spec.SizeGB,
			Location:       planned.Spec.Location,
			SKUName:        planned.Spec.SKUName,
			OSType:         planned.Spec.OSType,
			State:          entity.DiskCopyStatePending,
			CreatedAt:      time.Now().Format(time.RFC3339),
		}
		diskCopyModel, err := diskCopyEntityToModel(diskCopy)
		if err != nil {
			return fmt.Errorf("convert disk copy: %w", err)
		}
		if err := s.diskCopyRepo.Create(ctx, diskCopyModel); err != nil {
			return fmt.Errorf("create disk copy record: %w", err)
		}

		s.events.Publish(entity.MigrationEvent{
			MigrationID: migrationID,
			Type:        "disk-started",
			DiskName:    planned.Spec.DiskName,
			Message:     fmt.Sprintf("copying %s (%d GB -> %d GB)", planned.Descriptor.SourceName, planned.Descriptor.SizeGB, planned.Spec.SizeGB),
		})

		// 每块盘拷贝前都确认目标资源组存在，不存在则用源磁盘位置创建
		if err := s.ensureTargetResourceGroup(ctx, migrationID, target, planned.Spec.Location); err != nil {
			s.finishDiskCopy(ctx, diskCopyModel, entity.DiskCopyStateFailed, "", err)
			return err
		}

		diskCopyModel.State = entity.DiskCopyStateCopying
		if err := s.diskCopyRepo.Update(ctx, diskCopyModel); err != nil {
			updateErr := fmt.Errorf("update disk copy record: %w", err)
			s.finishDiskCopy(ctx, diskCopyModel, entity.DiskCopyStateFailed, "", updateErr)
			s.events.Publish(entity.MigrationEvent{
				MigrationID: migrationID,
				Type:        "disk-failed",
				DiskName:    planned.Spec.DiskName,
				Message:     updateErr.Error(),
			})
			return updateErr
		}

		logger.Info().
			Str("migrationID", migrationID).
			Str("sourceDisk", planned.Descriptor.SourceName).
			Str("newDisk", planned.Spec.DiskName).
			Int32("sourceSizeGB", planned.Descriptor.SizeGB).
			Int32("targetSizeGB", planned.Spec.SizeGB).
			Msg("Copying disk")

		newDisk, err := s.azureClient.CreateManagedDiskCopy(ctx, target.SubscriptionID, target.ResourceGroupName, &azure.DiskCopySpec{
			Name:         planned.Spec.DiskName,
			SourceDiskID: planned.Spec.SourceResourceID,
			Location:     planned.Spec.Location,
			SKUName:      planned.Spec.SKUName,
			SizeGB:       planned.Spec.SizeGB,
			OSType:       planned.Spec.OSType,
		})
		if err != nil {
			copyErr := fmt.Errorf("copy disk %s: %w", planned.Spec.DiskName, err)
			s.finishDiskCopy(ctx, diskCopyModel, entity.DiskCopyStateFailed, "", copyErr)
			s.events.Publish(entity.MigrationEvent{
				MigrationID: migrationID,
				Type:        "disk-failed",
				DiskName:    planned.Spec.DiskName,
				Message:     copyErr.Error(),
			})
			return copyErr
		}

		s.finishDiskCopy(ctx, diskCopyModel, entity.DiskCopyStateSucceeded, newDisk.ID, nil)
		s.events.Publish(entity.MigrationEvent{
			MigrationID: migrationID,
			Type:        "disk-succeeded",
			DiskName:    planned.Spec.DiskName,
		})
	}

	return nil
}

// finishDiskCopy 更新磁盘拷贝的终态
func (s *MigrationService) finishDiskCopy(ctx context.Context, diskCopy *model.DiskCopy, state, newDiskID string, copyErr error) {
	logger := zerolog.Ctx(ctx)
	finishedAt := time.Now()
	diskCopy.State = state
	diskCopy.NewDiskID = newDiskID
	diskCopy.FinishedAt = &finishedAt
	if copyErr != nil {
		diskCopy.Error = copyErr.Error()
	}
	if err := s.diskCopyRepo.Update(ctx, diskCopy); err != nil {
		logger.Error().Err(err).Str("diskCopyID", diskCopy.ID).Msg("Failed to update disk copy record")
	}
}

// recordSkippedDisk 为跳过的数据盘落记录并发布告警事件
func (s *MigrationService) recordSkippedDisk(ctx context.Context, migrationID string, skipped entity.SkippedDisk) error {
	copyID, err := s.idGen.GenerateDiskCopyID()
	if err != nil {
		return fmt.Errorf("generate disk copy ID: %w", err)
	}
	finishedAt := time.Now()
	diskCopyModel := &model.DiskCopy{
		ID:             copyID,
		MigrationID:    migrationID,
		Role:           string(entity.DiskRoleData),
		DiskIndex:      skipped.Index,
		SourceDiskName: skipped.Name,
		State:          entity.DiskCopyStateSkipped,
		Error:          skipped.Reason,
		CreatedAt:      time.Now(),
		FinishedAt:     &finishedAt,
		UpdatedAt:      time.Now(),
	}
	if err := s.diskCopyRepo.Create(ctx, diskCopyModel); err != nil {
		return fmt.Errorf("create skipped disk record: %w", err)
	}

	s.events.Publish(entity.MigrationEvent{
		MigrationID: migrationID,
		Type:        "disk-skipped",
		DiskName:    skipped.Name,
		Message:     skipped.Reason,
	})
	return nil
}

// ensureTargetResourceGroup 确保目标资源组存在，不存在则创建
func (s *MigrationService) ensureTargetResourceGroup(ctx context.Context, migrationID string, target diskplan.MigrationTarget, location string) error {
	logger := zerolog.Ctx(ctx)

	exists, err := s.azureClient.ResourceGroupExists(ctx, target.SubscriptionID, target.ResourceGroupName)
	if err != nil {
		return fmt.Errorf("check target resource group: %w", err)
	}
	if exists {
		return nil
	}

	logger.Warn().
		Str("resourceGroup", target.ResourceGroupName).
		Str("subscriptionID", target.SubscriptionID).
		Str("location", location).
		Msg("Target resource group does not exist, creating")
	s.events.Publish(entity.MigrationEvent{
		MigrationID: migrationID,
		Type:        "warning",
		Message:     fmt.Sprintf("target resource group %q does not exist, creating in %s", target.ResourceGroupName, location),
	})

	if err := s.azureClient.CreateResourceGroup(ctx, target.SubscriptionID, target.ResourceGroupName, location); err != nil {
		return fmt.Errorf("create target resource group: %w", err)
	}
	return nil
}

// GetMigration 获取迁移详情（含磁盘拷贝记录）
func (s *MigrationService) GetMigration(ctx context.Context, migrationID string) (*entity.Migration, error) {
	migrationModel, err := s.migrationRepo.GetByID(ctx, migrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrMigrationNotFound.WithMessage("migration %q could not be found", migrationID)
		}
		return nil, fmt.Errorf("get migration: %w", err)
	}

	migration, err := migrationModelToEntity(migrationModel)
	if err != nil {
		return nil, fmt.Errorf("convert migration: %w", err)
	}

	diskCopyModels, err := s.diskCopyRepo.ListByMigrationID(ctx, migrationID)
	if err != nil {
		return nil, fmt.Errorf("list disk copies: %w", err)
	}
	for _, diskCopyModel := range diskCopyModels {
		diskCopy, err := diskCopyModelToEntity(diskCopyModel)
		if err != nil {
			return nil, fmt.Errorf("convert disk copy: %w", err)
		}
		migration.DiskCopies = append(migration.DiskCopies, *diskCopy)
	}

	return migration, nil
}

// ListMigrations 列出迁移记录（不含磁盘拷贝明细）
func (s *MigrationService) ListMigrations(ctx context.Context, req *entity.ListMigrationsRequest) ([]entity.Migration, error) {
	filters := make(map[string]interface{})
	if req.State != "" {
		filters["state"] = req.State
	}
	if req.VMName != "" {
		filters["vm_name"] = req.VMName
	}

	migrationModels, err := s.migrationRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]entity.Migration, 0, len(migrationModels))
	for _, migrationModel := range migrationModels {
		migration, err := migrationModelToEntity(migrationModel)
		if err != nil {
			return nil, fmt.Errorf("convert migration: %w", err)
		}
		migrations = append(migrations, *migration)
	}
	return migrations, nil
}
