package interfaces

import (
	"io"

	"github.com/refinery-lab/groomctl/pkg/domain/model"
)

// ReportRenderer serializes a session report for human or machine consumption
type ReportRenderer interface {
	Render(w io.Writer, report *model.SessionReport) error
}
