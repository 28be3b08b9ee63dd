package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. Names are unique.
func (s *categoryService) CreateCategory(name, color string, budgetLimit *decimal.Decimal) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.Field("name", "The name field is required.")
	}
	if color == "" {
		color = models.DefaultCategoryColor
	}

	if err := s.ensureNameFree(name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        name,
		Color:       color,
		BudgetLimit: budgetLimit,
	}
	if err := s.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateCategory
		}
		return nil, internal(err)
	}
	return category, nil
}

// ListCategories returns every category ordered by name.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, internal(err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrCategoryNotFound)
	}
	return &category, nil
}

// UpdateCategory updates an existing category. Empty strings and a nil limit
// leave the field unchanged.
func (s *categoryService) UpdateCategory(id, name, color string, budgetLimit *decimal.Decimal) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" && name != category.Name {
		if err := s.ensureNameFree(name, id); err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if color != "" {
		updates["color"] = color
	}
	if budgetLimit != nil {
		updates["budget_limit"] = *budgetLimit
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrDuplicateCategory
			}
			return nil, internal(err)
		}
	}

	return s.GetCategoryByID(id)
}

// DeleteCategory removes a category. Subscriptions keep existing without a
// category and the category's budgets are removed with it.
func (s *categoryService) DeleteCategory(id string) error {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Model(&models.Subscription{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return internal(err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Budget{}).Error; err != nil {
			return internal(err)
		}
		if err := tx.Delete(category).Error; err != nil {
			return internal(err)
		}
		return nil
	})
}

func (s *categoryService) ensureNameFree(name, exceptID string) error {
	query := s.db.Model(&models.Category{}).Where("name = ?", name)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return internal(err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCategory
	}
	return nil
}
