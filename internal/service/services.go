package service

import (
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

type Services struct {
	InvoiceService InvoiceService
	ExportService  ExportService
}

func NewServices(storages *store.Storages, renderer PDFRenderer, cfg config.AppConfig, logger *logger.Logger) *Services {
	clock := utils.NewISOClock()
	ids := utils.NewUUIDGenerator()

	return &Services{
		InvoiceService: NewInvoiceService(storages.InvoiceRepository, clock, ids, logger),
		ExportService:  NewExportService(renderer, cfg.Export.OutputDir, logger),
	}
}
