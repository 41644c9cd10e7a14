package domain

import "context"

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string, attachments ...Attachment) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RequisitionExportEmailData holds data for the exported requisition email.
type RequisitionExportEmailData struct {
	To          string
	Number      string
	Department  string
	RequestedBy string
	Pages       int
	Total       float64
	Note        string
	FileName    string
	PDF         []byte
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRequisitionExport(ctx context.Context, data *RequisitionExportEmailData) error
}
