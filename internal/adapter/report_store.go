package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/visualize/internal/model"
)

// ReportStore persists inspection reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
}

type reportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a ReportStore writing YAML through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

func (rs *reportStore) SaveReport(path m.Path, report m.Report) (err error) {
	w, err := rs.fs.Create(path)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save report %s: %w", path, cerr)
		}
	}()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}

	return enc.Close()
}
