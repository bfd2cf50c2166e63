package repository

import (
	"context"

	"github.com/jimyag/admp/internal/admp/repository/model"
	"gorm.io/gorm"
)

// MigrationRepository 迁移仓库接口
type MigrationRepository interface {
	Create(ctx context.Context, migration *model.Migration) error
	GetByID(ctx context.Context, id string) (*model.Migration, error)
	List(ctx context.Context, filters map[string]interface{}) ([]*model.Migration, error)
	Update(ctx context.Context, migration *model.Migration) error
	Delete(ctx context.Context, id string) error
}

type migrationRepository struct {
	db *gorm.DB
}

// NewMigrationRepository 创建迁移仓库
func NewMigrationRepository(db *gorm.DB) MigrationRepository {
	return &migrationRepository{db: db}
}

// Create 创建迁移记录
func (r *migrationRepository) Create(ctx context.Context, migration *model.Migration) error {
	return r.db.WithContext(ctx).Create(migration).Error
}

// GetByID 根据 ID 获取迁移记录
func (r *migrationRepository) GetByID(ctx context.Context, id string) (*model.Migration, error) {
	var migration model.Migration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&migration).Error; err != nil {
		return nil, err
	}
	return &migration, nil
}

// List 列出迁移记录
func (r *migrationRepository) List(ctx context.Context, filters map[string]interface{}) ([]*model.Migration, error) {
	var migrations []*model.Migration
	query := r.db.WithContext(ctx).Model(&model.Migration{})

	// 应用过滤器
	if state, ok := filters["state"]; ok {
		query = query.Where("state = ?", state)
	}
	if vmName, ok := filters["vm_name"]; ok {
		query = query.Where("vm_name = ?", vmName)
	}

	if err := query.Order("created_at DESC").Find(&migrations).Error; err != nil {
		return nil, err
	}

	return migrations, nil
}

// Update 更新迁移记录
func (r *migrationRepository) Update(ctx context.Context, migration *model.Migration) error {
	return r.db.WithContext(ctx).Save(migration).Error
}

// Delete 软删除迁移记录
func (r *migrationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Migration{}, "id = ?", id).Error
}
