package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// GormCountryRepository implements CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GORM country repository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByUserID retrieves the country owned by a user
func (r *GormCountryRepository) FindByUserID(ctx context.Context, userID shared.UserID) (*country.Country, error) {
	var model CountryModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID.Value()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("country", userID.Value())
		}
		return nil, fmt.Errorf("failed to find country: %w", result.Error)
	}

	return r.modelToCountry(&model)
}

// FindByID retrieves a country by ID, scoped to its owner
func (r *GormCountryRepository) FindByID(ctx context.Context, id string, userID shared.UserID) (*country.Country, error) {
	var model CountryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID.Value()).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("country", id)
		}
		return nil, fmt.Errorf("failed to find country: %w", result.Error)
	}

	return r.modelToCountry(&model)
}

// ExistsByName reports whether any country already uses the name
func (r *GormCountryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&CountryModel{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check country name: %w", result.Error)
	}
	return count > 0, nil
}

// Create inserts a newly founded country
func (r *GormCountryRepository) Create(ctx context.Context, c *country.Country) error {
	model, err := r.countryToModel(c)
	if err != nil {
		return fmt.Errorf("failed to convert country to model: %w", err)
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return r.duplicateReason(ctx, c)
		}
		return fmt.Errorf("failed to create country: %w", result.Error)
	}

	return nil
}

// Save writes the whole aggregate in one statement (last write wins)
func (r *GormCountryRepository) Save(ctx context.Context, c *country.Country) error {
	model, err := r.countryToModel(c)
	if err != nil {
		return fmt.Errorf("failed to convert country to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save country: %w", result.Error)
	}

	return nil
}

// Delete removes a country owned by the user
func (r *GormCountryRepository) Delete(ctx context.Context, id string, userID shared.UserID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID.Value()).
		Delete(&CountryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete country: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("country", id)
	}
	return nil
}

// duplicateReason tells apart the two unique constraints on countries
func (r *GormCountryRepository) duplicateReason(ctx context.Context, c *country.Country) error {
	var count int64
	result := r.db.WithContext(ctx).Model(&CountryModel{}).Where("user_id = ?", c.UserID().Value()).Count(&count)
	if result.Error != nil {
		return fmt.Errorf("failed to check duplicate country: %w", result.Error)
	}
	if count > 0 {
		return country.ErrAlreadyHasCountry
	}
	return country.ErrNameTaken
}

// modelToCountry converts database model to domain entity
func (r *GormCountryRepository) modelToCountry(model *CountryModel) (*country.Country, error) {
	userID, err := shared.NewUserID(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in database: %w", err)
	}

	var values []country.Value
	if err := unmarshalColumn(model.Values, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal values: %w", err)
	}
	var flag country.Flag
	if err := unmarshalColumn(model.Flag, &flag); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flag: %w", err)
	}
	var buildings []country.OwnedBuilding
	if err := unmarshalColumn(model.Buildings, &buildings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal buildings: %w", err)
	}
	var queue []country.ConstructionOrder
	if err := unmarshalColumn(model.ConstructionQueue, &queue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal construction queue: %w", err)
	}
	for i := range queue {
		queue[i].StartedAt = queue[i].StartedAt.UTC()
		queue[i].CompletesAt = queue[i].CompletesAt.UTC()
	}

	return country.ReconstructCountry(
		model.ID,
		userID,
		model.Name,
		country.Government(model.Government),
		values,
		flag,
		country.Resources{
			Population:  model.Population,
			Economy:     model.Economy,
			Environment: model.Environment,
		},
		buildings,
		queue,
		model.LastResourceUpdate.UTC(),
		model.CreatedAt.UTC(),
	), nil
}

// countryToModel converts domain entity to database model
func (r *GormCountryRepository) countryToModel(c *country.Country) (*CountryModel, error) {
	values, err := json.Marshal(c.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal values: %w", err)
	}
	flag, err := json.Marshal(c.Flag())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flag: %w", err)
	}
	buildings, err := json.Marshal(c.Buildings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal buildings: %w", err)
	}
	queue, err := json.Marshal(c.ConstructionQueue())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal construction queue: %w", err)
	}

	res := c.Resources()
	return &CountryModel{
		ID:                 c.ID(),
		UserID:             c.UserID().Value(),
		Name:               c.Name(),
		Government:         string(c.Government()),
		Values:             string(values),
		Flag:               string(flag),
		Population:         res.Population,
		Economy:            res.Economy,
		Environment:        res.Environment,
		Buildings:          string(buildings),
		ConstructionQueue:  string(queue),
		LastResourceUpdate: c.LastResourceUpdate(),
		CreatedAt:          c.CreatedAt(),
	}, nil
}

func unmarshalColumn(raw string, target interface{}) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), target)
}
