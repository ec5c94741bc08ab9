package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/msesoft/zeitreport/internal/event_bus"
	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/matching"
	"github.com/msesoft/zeitreport/pkg/report"
	"github.com/msesoft/zeitreport/pkg/timesheet"
	log "github.com/sirupsen/logrus"
)

// Workbook extensions the discovery step picks up.
var workbookExtensions = map[string]struct{}{
	".xlsx": {},
	".xlsm": {},
	".xltx": {},
	".xltm": {},
}

const (
	attendanceSuffix = "TimesheetAnalysis"
	summarySuffix    = "ProjectSummary"
)

// Pipeline runs one batch analysis: discover timesheet workbooks, aggregate
// each into a sheet result, reconcile the merged records against the catalog,
// and write the attendance and project summary reports. It is sequential and
// deterministic: files in sorted name order, catalog in seed order.
type Pipeline struct {
	source    timesheet.SheetSource
	catalog   *catalog.Catalog
	renderer  report.Renderer
	bus       *event_bus.EventBus
	sheetName string
}

func New(
	source timesheet.SheetSource,
	cat *catalog.Catalog,
	renderer report.Renderer,
	bus *event_bus.EventBus,
	sheetName string,
) *Pipeline {
	return &Pipeline{
		source:    source,
		catalog:   cat,
		renderer:  renderer,
		bus:       bus,
		sheetName: sheetName,
	}
}

// Result summarizes one finished run.
type Result struct {
	Sheets         []timesheet.SheetResult
	Stats          matching.Stats
	AttendancePath string
	SummaryPath    string
}

// Run analyzes every workbook in folder. Structural problems in a single file
// (missing sheet, header, or column) skip that file and continue; anything
// else aborts the run.
func (p *Pipeline) Run(folder string) (Result, error) {
	runID := uuid.NewString()
	base := filepath.Base(filepath.Clean(folder))

	files, err := p.discover(folder, base)
	if err != nil {
		return Result{}, err
	}
	log.Infof("run %s: analyzing %d file(s) in %s", runID, len(files), folder)

	results := make([]timesheet.SheetResult, 0, len(files))
	for _, name := range files {
		path := filepath.Join(folder, name)
		employee := strings.SplitN(name, ".", 2)[0]

		result, err := p.processFile(path, employee)
		if err != nil {
			if isStructural(err) {
				log.Errorf("run %s: skipping %s: %v", runID, name, err)
				p.bus.Publish(event_bus.NewEvent(event_bus.FileSkipped, event_bus.FileSkippedEvent{
					Path:   path,
					Reason: err.Error(),
				}))
				continue
			}
			return Result{}, fmt.Errorf("analyze %s: %w", path, err)
		}

		results = append(results, result)
		p.bus.Publish(event_bus.NewEvent(event_bus.FileProcessed, event_bus.FileProcessedEvent{
			Path:    path,
			SheetID: result.SheetID,
			Records: len(result.Records),
		}))
	}
	if len(results) == 0 {
		log.Warnf("run %s: no processable timesheets in %s", runID, folder)
	}

	reconciler := matching.NewReconciler(p.catalog, p.bus)
	stats := reconciler.Reconcile(results)
	log.Infof("run %s: reconciled records: %d matched, %d via fallback, %d dropped",
		runID, stats.Matched, stats.Fallback, stats.Dropped)

	ext := p.renderer.Extension()
	attendancePath := filepath.Join(folder, base+attendanceSuffix+"."+ext)
	summaryPath := filepath.Join(folder, base+summarySuffix+"."+ext)

	title := strings.ToUpper(base) + " - Working Reports"
	if err := p.renderer.WriteAttendance(attendancePath, title, report.AssembleAttendance(results)); err != nil {
		return Result{}, fmt.Errorf("write attendance report: %w", err)
	}
	summaryTitle := strings.ToUpper(base) + " - Project Summary"
	if err := p.renderer.WriteSummary(summaryPath, summaryTitle, report.AssembleSummary(p.catalog)); err != nil {
		return Result{}, fmt.Errorf("write project summary: %w", err)
	}
	log.Infof("run %s: reports written: %s, %s", runID, attendancePath, summaryPath)

	return Result{
		Sheets:         results,
		Stats:          stats,
		AttendancePath: attendancePath,
		SummaryPath:    summaryPath,
	}, nil
}

// discover lists workbook files in sorted name order, leaving out temp files
// and reports of earlier runs so re-runs stay clean.
func (p *Pipeline) discover(folder string, base string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read input folder %s: %w", folder, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if _, ok := workbookExtensions[strings.ToLower(filepath.Ext(name))]; !ok {
			log.Debugf("ignoring non-workbook file %s", name)
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stem == base+attendanceSuffix || stem == base+summarySuffix {
			log.Debugf("ignoring report of a previous run: %s", name)
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func (p *Pipeline) processFile(path string, employee string) (timesheet.SheetResult, error) {
	log.Infof("starting file analysis - %s", filepath.Base(path))

	rows, err := p.source.Rows(path, p.sheetName)
	if err != nil {
		return timesheet.SheetResult{}, err
	}

	headerIdx, err := timesheet.FindHeaderRow(rows)
	if err != nil {
		return timesheet.SheetResult{}, err
	}
	columns := timesheet.MapColumns(rows[headerIdx])

	sheetID := employee + "-" + p.sheetName
	records, err := timesheet.Aggregate(sheetID, rows[headerIdx+1:], columns)
	if err != nil {
		return timesheet.SheetResult{}, err
	}

	return timesheet.SheetResult{SheetID: sheetID, Records: records}, nil
}

// isStructural reports whether an error belongs to the per-file taxonomy:
// log, skip the file, continue the run.
func isStructural(err error) bool {
	return errors.Is(err, timesheet.ErrSheetNotFound) ||
		errors.Is(err, timesheet.ErrNoHeaderRow) ||
		errors.Is(err, timesheet.ErrMissingColumn)
}
