package repository

import (
	"context"

	"github.com/jimyag/admp/internal/admp/repository/model"
	"gorm.io/gorm"
)

// DiskCopyRepository 磁盘拷贝仓库接口
type DiskCopyRepository interface {
	Create(ctx context.Context, diskCopy *model.DiskCopy) error
	GetByID(ctx context.Context, id string) (*model.DiskCopy, error)
	ListByMigrationID(ctx context.Context, migrationID string) ([]*model.DiskCopy, error)
	Update(ctx context.Context, diskCopy *model.DiskCopy) error
}

type diskCopyRepository struct {
	db *gorm.DB
}

// NewDiskCopyRepository 创建磁盘拷贝仓库
func NewDiskCopyRepository(db *gorm.DB) DiskCopyRepository {
	return &diskCopyRepository{db: db}
}

// Create 创建磁盘拷贝记录
func (r *diskCopyRepository) Create(ctx context.Context, diskCopy *model.DiskCopy) error {
	return r.db.WithContext(ctx).Create(diskCopy).Error
}

// GetByID 根据 ID 获取磁盘拷贝记录
func (r *diskCopyRepository) GetByID(ctx context.Context, id string) (*model.DiskCopy, error) {
	var diskCopy model.DiskCopy
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&diskCopy).Error; err != nil {
		return nil, err
	}
	return &diskCopy, nil
}

// ListByMigrationID 列出指定迁移的磁盘拷贝记录，按创建顺序
func (r *diskCopyRepository) ListByMigrationID(ctx context.Context, migrationID string) ([]*model.DiskCopy, error) {
	var diskCopies []*model.DiskCopy
	if err := r.db.WithContext(ctx).
		Where("migration_id = ?", migrationID).
		Order("created_at ASC, id ASC").
		Find(&diskCopies).Error; err != nil {
		return nil, err
	}
	return diskCopies, nil
}

// Update 更新磁盘拷贝记录
func (r *diskCopyRepository) Update(ctx context.Context, diskCopy *model.DiskCopy) error {
	return r.db.WithContext(ctx).Save(diskCopy).Error
}
