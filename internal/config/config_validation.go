// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The raw merged config is permissive: any field may be empty because
// [AppConfig] fills in defaults afterwards.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *AppConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Currency == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Export.OutputDir == "" {
		return ErrInvalidExportConfigs
	}

	return nil
}
