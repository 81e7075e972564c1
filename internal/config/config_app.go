package config

import "fmt"

// Default values applied by [GetAppConfig] when a setting is absent from all
// sources.
const (
	DefaultDSN       = "quotes.db"
	DefaultCurrency  = "£"
	DefaultExportDir = "."
)

// AppStorage groups the storage backend settings used at runtime.
type AppStorage struct {
	// DB holds local database settings.
	DB AppDB
}

// AppDB contains the local database connection settings.
type AppDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// AppExport contains PDF export settings.
type AppExport struct {
	// OutputDir is the directory exported PDFs are written to.
	OutputDir string
}

// AppConfig is the application configuration view assembled from
// [StructuredConfig], with defaults applied.
type AppConfig struct {
	// Currency is the money symbol used in the UI and in exported PDFs.
	Currency string
	// Version is the application version string.
	Version string
	// Storage contains persistence settings.
	Storage AppStorage
	// Export contains PDF export settings.
	Export AppExport
}

// GetAppConfig builds and validates the runtime config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields the
// runtime needs, fills in defaults for anything left empty, and validates the
// resulting [AppConfig].
func GetAppConfig() (*AppConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	appCfg := &AppConfig{
		Currency: cfg.App.Currency,
		Version:  cfg.App.Version,
		Storage: AppStorage{
			DB: AppDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Export: AppExport{
			OutputDir: cfg.Export.OutputDir,
		},
	}
	appCfg.applyDefaults()

	return appCfg, appCfg.validate()
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = DefaultExportDir
	}
}
