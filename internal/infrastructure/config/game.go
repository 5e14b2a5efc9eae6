package config

// GameConfig holds game rule data sources
type GameConfig struct {
	// YAML building catalog replacing the embedded one; empty uses the built-in catalog
	CatalogPath string `mapstructure:"catalog_path" validate:"omitempty,file"`
}
