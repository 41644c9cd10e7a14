package services

import (
	"context"
	"fmt"
	"log/slog"

	"requisitionprint/internal/domain"
)

const requisitionExportTemplate = "requisition_export"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRequisitionExport sends the exported PDF as an attachment using the "requisition_export" template.
func (s *emailService) SendRequisitionExport(ctx context.Context, data *domain.RequisitionExportEmailData) error {
	if data == nil {
		return fmt.Errorf("requisition export email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(requisitionExportTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", requisitionExportTemplate, err)
	}
	attachment := domain.Attachment{FileName: data.FileName, ContentType: "application/pdf", Data: data.PDF}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody, attachment); err != nil {
		return fmt.Errorf("failed to send requisition export email: %w", err)
	}
	s.logger.InfoContext(ctx, "requisition export emailed", "to", data.To, "file", data.FileName, "pages", data.Pages)
	return nil
}
