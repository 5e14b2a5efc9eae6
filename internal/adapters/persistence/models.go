package persistence

import (
	"time"
)

// CountryModel represents the countries table.
// The whole aggregate lives in one row so a save is a single atomic write.
type CountryModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	UserID             string    `gorm:"column:user_id;uniqueIndex;not null"`
	Name               string    `gorm:"column:name;uniqueIndex;not null"`
	Government         string    `gorm:"column:government;not null"`
	Values             string    `gorm:"column:value_tags;type:text;not null"` // JSON array as text
	Flag               string    `gorm:"column:flag;type:text;not null"`       // JSON object as text
	Population         int       `gorm:"column:population;not null"`
	Economy            int       `gorm:"column:economy;not null"`
	Environment        int       `gorm:"column:environment;not null"`
	Buildings          string    `gorm:"column:buildings;type:text;not null"`          // JSON array as text
	ConstructionQueue  string    `gorm:"column:construction_queue;type:text;not null"` // JSON array as text
	LastResourceUpdate time.Time `gorm:"column:last_resource_update;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (CountryModel) TableName() string {
	return "countries"
}

// UserModel represents the users table.
// Only the has-country flag is owned here; credentials belong to the auth service.
type UserModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	HasCountry bool      `gorm:"column:has_country;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// AllModels lists every model for AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&CountryModel{},
		&UserModel{},
	}
}
