package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// TestNewStorages_MemoryDSN verifies the transient database mode: a DSN of
// ":memory:" yields a working repository without touching the filesystem.
func TestNewStorages_MemoryDSN(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := config.AppStorage{DB: config.AppDB{DSN: MemoryDSN}}
	storages, err := NewStorages(cfg, fixedClock{now: "2026-09-01T10:00:00.000Z"}, logger.Nop())
	require.NoError(t, err)

	saved, err := storages.InvoiceRepository.Save(t.Context(), newInvoice("inv-1", "00001"))
	require.NoError(t, err)

	got, ok := storages.InvoiceRepository.Get(t.Context(), "inv-1")
	require.True(t, ok)
	assert.Equal(t, saved, got)

	// no literal ":memory:" file may appear on disk
	_, err = os.Stat(MemoryDSN)
	assert.True(t, os.IsNotExist(err))
}
