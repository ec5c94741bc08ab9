package app

import (
	"fmt"

	"github.com/msesoft/zeitreport/internal/config"
	"github.com/msesoft/zeitreport/internal/event_bus"
	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/report"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// buildCatalog turns the configured seed into the run's project catalog,
// preserving entry order.
func buildCatalog(cfg config.Catalog) (*catalog.Catalog, error) {
	seeds := make([]catalog.Seed, 0, len(cfg.Projects))
	for _, p := range cfg.Projects {
		seeds = append(seeds, catalog.Seed{
			Name:        p.Name,
			OrderAmount: decimal.NewFromFloat(p.OrderAmount),
		})
	}

	buckets := make([]catalog.RateBucket, 0, len(cfg.Rates.Overrides))
	for _, o := range cfg.Rates.Overrides {
		buckets = append(buckets, catalog.RateBucket{
			Rate:     decimal.NewFromFloat(o.Rate),
			Projects: o.Projects,
		})
	}
	rates := catalog.RateTable{
		Default: decimal.NewFromFloat(cfg.Rates.Default),
		Buckets: buckets,
	}

	return catalog.New(seeds, rates, cfg.Fallback)
}

// buildRenderer selects the report renderer from configuration.
func buildRenderer(cfg config.Report) (report.Renderer, error) {
	switch cfg.Format {
	case "xlsx":
		return report.NewExcelRenderer(), nil
	case "csv":
		return report.NewCsvRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", cfg.Format)
	}
}

// subscribeAudit attaches log subscribers to the audit events so that skipped
// files and dropped contributions are always visible in the run output.
func subscribeAudit(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.FileProcessed, func(e event_bus.Event) {
		if data, ok := e.Data.(event_bus.FileProcessedEvent); ok {
			log.Infof("Processed %s (%d records)", data.SheetID, data.Records)
		}
	})
	bus.Subscribe(event_bus.FileSkipped, func(e event_bus.Event) {
		if data, ok := e.Data.(event_bus.FileSkippedEvent); ok {
			log.Warnf("Skipped %s: %s", data.Path, data.Reason)
		}
	})
	bus.Subscribe(event_bus.ContributionMatched, func(e event_bus.Event) {
		if data, ok := e.Data.(event_bus.ContributionMatchedEvent); ok {
			if data.Fallback {
				log.Debugf("Credited %s day(s) of %q to fallback bucket %s", data.Days.StringFixed(2), data.Label, data.Project)
			} else {
				log.Debugf("Credited %s day(s) of %q to %s", data.Days.StringFixed(2), data.Label, data.Project)
			}
		}
	})
	bus.Subscribe(event_bus.ContributionDropped, func(e event_bus.Event) {
		if data, ok := e.Data.(event_bus.ContributionDroppedEvent); ok {
			log.Warnf("Dropped %s day(s) of unmatched project %q", data.Days.StringFixed(2), data.Label)
		}
	})
}
