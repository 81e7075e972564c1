package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type fakeRenderer struct {
	data []byte
	err  error

	rendered models.Invoice
}

func (r *fakeRenderer) Render(inv models.Invoice) ([]byte, error) {
	r.rendered = inv
	return r.data, r.err
}

func TestExportService_ExportPDF(t *testing.T) {
	dir := t.TempDir()
	renderer := &fakeRenderer{data: []byte("%PDF-1.3 fake")}
	svc := NewExportService(renderer, dir, logger.Nop())

	inv := models.Invoice{
		ID:          "inv-1",
		QuoteNumber: "00042",
		ClientInfo:  models.ClientInfo{Name: "Padel Club"},
		LineItems: []models.LineItem{
			{ID: "li-1", UnitPrice: 100, Quantity: 2, Amount: 200},
		},
	}

	path, err := svc.ExportPDF(inv)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Quote_00042_Padel Club.pdf"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, renderer.data, written)

	// Totals were recomputed before the invoice reached the renderer.
	assert.Equal(t, 200.0, renderer.rendered.Total)
}

func TestExportService_ExportPDF_RenderError(t *testing.T) {
	svc := NewExportService(&fakeRenderer{err: assert.AnError}, t.TempDir(), logger.Nop())

	_, err := svc.ExportPDF(models.Invoice{QuoteNumber: "00001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestExportService_ExportPDF_CreatesDir checks that a missing export
// directory is created on first export.
func TestExportService_ExportPDF_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	svc := NewExportService(&fakeRenderer{data: []byte("x")}, dir, logger.Nop())

	path, err := svc.ExportPDF(models.Invoice{QuoteNumber: "00001"})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

// TestExportFileName pins the exported file naming scheme.
func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		inv  models.Invoice
		want string
	}{
		{
			name: "with client name",
			inv: models.Invoice{
				QuoteNumber: "00007",
				ClientInfo:  models.ClientInfo{Name: "Padel Club"},
			},
			want: "Quote_00007_Padel Club.pdf",
		},
		{
			name: "empty client name falls back",
			inv:  models.Invoice{QuoteNumber: "00007"},
			want: "Quote_00007_client.pdf",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ExportFileName(test.inv))
		})
	}
}
