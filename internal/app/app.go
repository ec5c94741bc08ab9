package app

import (
	"github.com/msesoft/zeitreport/internal/config"
	"github.com/msesoft/zeitreport/internal/event_bus"
	"github.com/msesoft/zeitreport/pkg/pipeline"
	"github.com/msesoft/zeitreport/pkg/timesheet"
	log "github.com/sirupsen/logrus"
)

// Analysis type codes of the CLI surface. Only Attendance is implemented.
const AnalysisAttendance = 1

// Application wires configuration, catalog, audit bus, and the pipeline.
type Application struct {
	cfg      config.Application
	pipeline *pipeline.Pipeline
}

// NewApplication constructs the full batch application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	renderer, err := buildRenderer(cfg.Report)
	if err != nil {
		return nil, err
	}

	bus := event_bus.NewEventBus()
	subscribeAudit(bus)

	p := pipeline.New(timesheet.NewExcelSheetSource(), cat, renderer, bus, cfg.SheetName)

	return &Application{cfg: cfg, pipeline: p}, nil
}

// Run executes one analysis of the given folder. Analysis types other than
// Attendance are acknowledged and skipped.
func (a *Application) Run(folder string, analysisType int) error {
	if analysisType != AnalysisAttendance {
		log.Infof("Analysis type %d is not implemented, nothing to do", analysisType)
		return nil
	}
	log.Info("Analysis type is - Attendance")

	result, err := a.pipeline.Run(folder)
	if err != nil {
		return err
	}

	log.Infof("Analysis finished: %d sheet(s), reports at %s and %s",
		len(result.Sheets), result.AttendancePath, result.SummaryPath)
	return nil
}
