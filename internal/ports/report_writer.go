package ports

import (
	"io"

	"wastewise-admin-service/internal/domain"
)

// ReportWriter renders a report as a downloadable document.
type ReportWriter interface {
	ContentType() string
	FileName(r *domain.Report) string
	Write(w io.Writer, r *domain.Report) error
}
