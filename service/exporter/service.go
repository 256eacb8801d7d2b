package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/roomplan/model/calendar"
	"github.com/viant/roomplan/runtime/solve"
)

// Format names a granted-sequence rendering.
type Format string

const (
	// FormatText is the human-readable listing.
	FormatText Format = "text"

	// FormatCSV is the same `;`-delimited shape the loader reads.
	FormatCSV Format = "csv"

	// FormatJSON renders the granted reservations as a JSON array.
	FormatJSON Format = "json"
)

// Service renders a completed session's granted sequence and optionally
// writes the rendering to an afs location.
type Service struct {
	fs afs.Service
}

// New creates an exporter service.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Render produces the granted sequence in the requested format, preserving
// grant order.
func (s *Service) Render(session *solve.Session, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		buf := &bytes.Buffer{}
		buf.WriteString("Picked reservations:\n")
		for _, reservation := range session.Granted {
			fmt.Fprintf(buf, "    %s\n", reservation)
		}
		return buf.Bytes(), nil
	case FormatCSV:
		buf := &bytes.Buffer{}
		for _, reservation := range session.Granted {
			fmt.Fprintf(buf, "%s;%s;%q\n",
				calendar.FormatDay(reservation.Start),
				calendar.FormatDay(reservation.End),
				reservation.Name)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(session.Granted, "", "  ")
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// Export renders the session and uploads the result to URL.
func (s *Service) Export(ctx context.Context, session *solve.Session, format Format, URL string) error {
	data, err := s.Render(session, format)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", URL, err)
	}
	return nil
}
