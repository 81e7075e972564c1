package config

import "errors"

// Validation errors returned by [AppConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty currency symbol).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidExportConfigs indicates invalid export settings
	// (for example, an empty output directory).
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
)
