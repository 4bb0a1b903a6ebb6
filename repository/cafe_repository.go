package repository

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"cafe-api/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("cafe not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUnknownColumn       = errors.New("unknown cafe column")
	ErrEmpty               = errors.New("no cafes stored")
)

type CafeRepository struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: db, validate: validator.New()}
}

// Insert stores a new cafe and sets its ID. Missing required fields and
// duplicate names are reported as ErrConstraintViolation.
func (r *CafeRepository) Insert(cafe *models.Cafe) error {
	if err := r.validate.Struct(cafe); err != nil {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	cafe.ID = 0
	if err := r.DB.Create(cafe).Error; err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return fmt.Errorf("insert cafe: %w", err)
	}
	return nil
}

// ListAll returns every stored cafe in no particular order.
func (r *CafeRepository) ListAll() ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := r.DB.Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}
	return cafes, nil
}

// FindByLocation matches location exactly and case-sensitively.
func (r *CafeRepository) FindByLocation(loc string) ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := r.DB.Where("location = ?", loc).Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("search cafes: %w", err)
	}
	return cafes, nil
}

func (r *CafeRepository) FindByID(id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := r.DB.First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cafe %d: %w", id, err)
	}
	return &cafe, nil
}

// UpdateField sets one column of an existing cafe and returns the stored
// result. The id column can never be changed.
func (r *CafeRepository) UpdateField(id uint, column string, value any) (*models.Cafe, error) {
	if !slices.Contains(models.Columns, column) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	res := r.DB.Model(&models.Cafe{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		if isConstraintError(res.Error) {
			return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, res.Error)
		}
		return nil, fmt.Errorf("update cafe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Delete removes a cafe and returns the row as it was before removal.
func (r *CafeRepository) Delete(id uint) (*models.Cafe, error) {
	cafe, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	res := r.DB.Delete(&models.Cafe{}, id)
	if res.Error != nil {
		return nil, fmt.Errorf("delete cafe %d: %w", id, res.Error)
	}
	// lost a race with another delete
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return cafe, nil
}

// Random picks one stored cafe uniformly.
func (r *CafeRepository) Random() (*models.Cafe, error) {
	cafes, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, ErrEmpty
	}
	return &cafes[rand.IntN(len(cafes))], nil
}

func isConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "NOT NULL constraint failed")
}
