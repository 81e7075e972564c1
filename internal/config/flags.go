package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path (SQLite)
//	-c/-config json file path with configs
//	-currency money symbol used in documents
//	-export-dir directory for exported PDF files
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var currency string
	var exportDir string

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&currency, "currency", "", "Currency symbol")
	flag.StringVar(&exportDir, "export-dir", "", "PDF export directory")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Currency: currency,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Export: Export{
			OutputDir: exportDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
