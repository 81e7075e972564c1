// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_CURRENCY": "$",
		"APP_VERSION":  "1.2.3",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.quote-keeper/quotes.db",

		"EXPORT_OUTPUT_DIR": "/home/user/exports",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "$", cfg.App.Currency)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/home/user/.quote-keeper/quotes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/user/exports", cfg.Export.OutputDir)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_DB_DATABASE_URI": "quotes.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "quotes.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.Currency)
	assert.Empty(t, cfg.Export.OutputDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_NoEnvSet(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_CURRENCY",
		"APP_VERSION",
		"STORAGE_DB_DATABASE_URI",
		"EXPORT_OUTPUT_DIR",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
