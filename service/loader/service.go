package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/model/calendar"
	"github.com/viant/roomplan/policy"
	"github.com/viant/roomplan/service/loader/records"
	"github.com/viant/roomplan/service/meta"
)

// Service loads reservation requests from an afs location. Two formats are
// supported: `;`-delimited lines (start;end;name) and a YAML request
// document. An admission policy, when present, filters requests by name
// before they reach the resolver.
type Service struct {
	meta      *meta.Service
	admission *policy.Policy
}

// New creates a loader service.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.meta == nil {
		ret.meta = meta.New(nil, "")
	}
	return ret
}

// document is the YAML request file shape.
type document struct {
	Requests []entry `yaml:"requests"`
}

type entry struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Load reads, parses and admits the requests at the supplied location.
func (s *Service) Load(ctx context.Context, location string) ([]*model.Reservation, error) {
	var parsed []*records.Record
	var err error
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		parsed, err = s.loadDocument(ctx, location)
	default:
		parsed, err = s.loadDelimited(ctx, location)
	}
	if err != nil {
		return nil, err
	}

	admission := s.admission
	if admission == nil {
		admission = policy.FromContext(ctx)
	}
	var result []*model.Reservation
	for _, record := range parsed {
		if !admission.Admits(record.Name) {
			continue
		}
		reservation, err := model.NewReservation(record.Name, record.Start, record.End)
		if err != nil {
			return nil, err
		}
		result = append(result, reservation)
	}
	return result, nil
}

func (s *Service) loadDelimited(ctx context.Context, location string) ([]*records.Record, error) {
	data, err := s.meta.Download(ctx, location)
	if err != nil {
		return nil, err
	}
	var result []*records.Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := records.Parse([]byte(line))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s:%d: %w", location, i+1, err)
		}
		result = append(result, record)
	}
	return result, nil
}

func (s *Service) loadDocument(ctx context.Context, location string) ([]*records.Record, error) {
	doc := &document{}
	if err := s.meta.Load(ctx, location, doc); err != nil {
		return nil, err
	}
	var result []*records.Record
	for i, item := range doc.Requests {
		start, err := calendar.ParseDay(item.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid start in %s request %d: %w", location, i+1, err)
		}
		end, err := calendar.ParseDay(item.End)
		if err != nil {
			return nil, fmt.Errorf("invalid end in %s request %d: %w", location, i+1, err)
		}
		result = append(result, &records.Record{Name: item.Name, Start: start, End: end})
	}
	return result, nil
}
