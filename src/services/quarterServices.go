package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imoti/imoti-backend/src/models"
)

// ErrQuarterInUse signals a delete attempt on a quarter that properties
// still reference. Quarter deletion is restricted, never cascaded.
var ErrQuarterInUse = errors.New("quarter is referenced by existing properties")

type QuarterService struct {
	db *gorm.DB
}

// NewQuarterService creates a new instance of QuarterService
func NewQuarterService(db *gorm.DB) *QuarterService {
	return &QuarterService{db: db}
}

// GetAllQuarters retrieves all Quarter records from the database
func (s *QuarterService) GetAllQuarters() ([]models.QuarterModel, error) {
	var quarters []models.QuarterModel
	result := s.db.Order("name ASC").Find(&quarters)
	if result.Error != nil {
		return nil, result.Error
	}
	return quarters, nil
}

// GetQuarterByID retrieves a single quarter; (nil, nil) when absent.
func (s *QuarterService) GetQuarterByID(id uuid.UUID) (*models.QuarterModel, error) {
	var quarter models.QuarterModel
	err := s.db.First(&quarter, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quarter, nil
}

// CreateQuarter inserts a new quarter row.
func (s *QuarterService) CreateQuarter(quarter *models.QuarterModel) (*models.QuarterModel, error) {
	if err := s.db.Create(quarter).Error; err != nil {
		return nil, err
	}
	return quarter, nil
}

// DeleteQuarter removes an unreferenced quarter. Returns ErrQuarterInUse
// while any property still points at it, and (false, nil) when absent.
func (s *QuarterService) DeleteQuarter(id uuid.UUID) (bool, error) {
	found := true
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quarter models.QuarterModel
		err := tx.First(&quarter, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}

		var references int64
		if err := tx.Model(&models.PropertyModel{}).Where("quarter_id = ?", id).Count(&references).Error; err != nil {
			return err
		}
		if references > 0 {
			return ErrQuarterInUse
		}
		return tx.Delete(&quarter).Error
	})
	if err != nil {
		return false, err
	}
	if !found {
		log.Printf("Quarter %s not found\n", id)
		return false, nil
	}
	return true, nil
}
