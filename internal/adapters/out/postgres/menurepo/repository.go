package menurepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for foreign_key_violation.
const foreignKeyViolation = "23503"

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update overwrites the editable columns of an existing item.
func (r *GormMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{ID: item.ID().Bytes()}).
		Updates(map[string]any{
			"name":        item.Name(),
			"description": item.Description(),
			"price":       item.Price().Amount(),
			"category":    item.Category(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemId", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	return findByID(ctx, r.db, id)
}

// List retrieves every menu item, newest first.
func (r *GormMenuItemRepository) List(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a menu item. The store refuses items that order lines still
// reference; that refusal is reported as errs.ObjectIsInUseError.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return errs.NewObjectIsInUseErrorWithCause("menuItemId", id.String(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemId", id.String())
	}

	return nil
}

func findByID(ctx context.Context, db *gorm.DB, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItemId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
