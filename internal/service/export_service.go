package service

import (
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
	"github.com/noah-isme/faculty-portal/pkg/export"
)

// ExportResult is a rendered download.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportService renders list datasets as CSV or PDF downloads.
type ExportService struct {
	enabled bool
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{enabled: enabled, logger: logger}
}

// Export renders data in the requested format. base names the downloaded file.
func (s *ExportService) Export(data export.Dataset, format, base string) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrFeatureDisabled, "exports are disabled")
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.Rewrap(appErrors.ErrValidation, err, "format must be csv or pdf")
	}
	body, err := export.RendererFor(f).Render(data)
	if err != nil {
		s.logger.Error("render export", zap.String("format", string(f)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportResult{Data: body, ContentType: f.ContentType(), Filename: f.Filename(base)}, nil
}
