// Package service 提供业务逻辑层的服务实现
package service

import (
	"time"

	"github.com/jimyag/admp/internal/admp/entity"
	"github.com/jimyag/admp/internal/admp/repository/model"
	"github.com/jinzhu/copier"
)

// migrationEntityToModel 将 entity.Migration 转换为 model.Migration
func migrationEntityToModel(e *entity.Migration) (*model.Migration, error) {
	m := &model.Migration{}
	if err := copier.Copy(m, e); err != nil {
		return nil, err
	}

	// 处理时间字段
	if e.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			m.CreatedAt = t
		} else {
			m.CreatedAt = time.Now()
		}
	} else {
		m.CreatedAt = time.Now()
	}
	if e.FinishedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.FinishedAt); err == nil {
			m.FinishedAt = &t
		}
	}
	m.UpdatedAt = time.Now()

	return m, nil
}

// migrationModelToEntity 将 model.Migration 转换为 entity.Migration
func migrationModelToEntity(m *model.Migration) (*entity.Migration, error) {
	e := &entity.Migration{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	if m.FinishedAt != nil {
		e.FinishedAt = m.FinishedAt.Format(time.RFC3339)
	}

	return e, nil
}

// diskCopyEntityToModel 将 entity.DiskCopy 转换为 model.DiskCopy
func diskCopyEntityToModel(e *entity.DiskCopy) (*model.DiskCopy, error) {
	m := &model.DiskCopy{}
	if err := copier.Copy(m, e); err != nil {
		return nil, err
	}

	// 处理时间字段
	if e.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			m.CreatedAt = t
		} else {
			m.CreatedAt = time.Now()
		}
	} else {
		m.CreatedAt = time.Now()
	}
	if e.FinishedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.FinishedAt); err == nil {
			m.FinishedAt = &t
		}
	}
	m.UpdatedAt = time.Now()

	return m, nil
}

// diskCopyModelToEntity 将 model.DiskCopy 转换为 entity.DiskCopy
func diskCopyModelToEntity(m *model.DiskCopy) (*entity.DiskCopy, error) {
	e := &entity.DiskCopy{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	if m.FinishedAt != nil {
		e.FinishedAt = m.FinishedAt.Format(time.RFC3339)
	}

	return e, nil
}
