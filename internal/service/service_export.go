package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// PDFRenderer produces the printable quote document.
type PDFRenderer interface {
	Render(inv models.Invoice) ([]byte, error)
}

// ExportService writes invoices to PDF files on disk.
type ExportService interface {
	// ExportPDF renders the invoice and writes it to the export directory as
	// Quote_<quoteNumber>_<clientName>.pdf. The written file path is
	// returned. Totals are recomputed before rendering.
	ExportPDF(inv models.Invoice) (path string, err error)
}

type exportService struct {
	renderer  PDFRenderer
	outputDir string
	logger    *logger.Logger
}

func NewExportService(renderer PDFRenderer, outputDir string, logger *logger.Logger) ExportService {
	return &exportService{
		renderer:  renderer,
		outputDir: outputDir,
		logger:    logger,
	}
}

func (s *exportService) ExportPDF(inv models.Invoice) (string, error) {
	inv.Recompute()

	data, err := s.renderer.Render(inv)
	if err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	if err = os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(s.outputDir, ExportFileName(inv))
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf file: %w", err)
	}

	s.logger.Debug().
		Str("func", "exportService.ExportPDF").
		Str("path", path).
		Msg("pdf exported")

	return path, nil
}

// ExportFileName derives the PDF file name for an invoice. An invoice with no
// client name falls back to the literal "client".
func ExportFileName(inv models.Invoice) string {
	client := inv.ClientInfo.Name
	if client == "" {
		client = "client"
	}
	return fmt.Sprintf("Quote_%s_%s.pdf", inv.QuoteNumber, client)
}
