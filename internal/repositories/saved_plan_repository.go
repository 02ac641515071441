package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
)

type ISavedPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.SavedPlan) error
	ListByAccountId(ctx context.Context, accountID string) ([]db_models.SavedPlan, error)
	FindByIdForAccount(ctx context.Context, planID string, accountID string) (*db_models.SavedPlan, error)
}

type SavedPlanRepository struct {
	db *gorm.DB
}

func NewSavedPlanRepository(db *gorm.DB) ISavedPlanRepository {
	return &SavedPlanRepository{db: db}
}

func (p *SavedPlanRepository) Insert(ctx context.Context, plan *db_models.SavedPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *SavedPlanRepository) ListByAccountId(ctx context.Context, accountID string) ([]db_models.SavedPlan, error) {
	var plans []db_models.SavedPlan
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *SavedPlanRepository) FindByIdForAccount(ctx context.Context, planID string, accountID string) (*db_models.SavedPlan, error) {
	var plan db_models.SavedPlan
	err := p.db.WithContext(ctx).
		First(&plan, "id = ? AND account_id = ?", planID, accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
