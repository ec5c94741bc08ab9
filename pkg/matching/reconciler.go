package matching

import (
	"github.com/msesoft/zeitreport/internal/event_bus"
	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/timesheet"
	log "github.com/sirupsen/logrus"
)

// Stats counts how the merged attendance records were resolved against the
// catalog. Dropped must stay zero whenever a fallback bucket is configured.
type Stats struct {
	Matched  int
	Fallback int
	Dropped  int
}

// Reconciler credits attendance days to catalog projects. It is the single
// writer of CompletedWorkingDays; the fold runs after all per-file
// aggregation has completed and must never be interleaved with it.
type Reconciler struct {
	catalog *catalog.Catalog
	bus     *event_bus.EventBus
}

func NewReconciler(cat *catalog.Catalog, bus *event_bus.EventBus) *Reconciler {
	return &Reconciler{catalog: cat, bus: bus}
}

// Reconcile folds every non-"Total" record of the merged sheet results into
// the catalog's CompletedWorkingDays accumulators. Records that match no
// project are credited to the fallback bucket; without a fallback they are
// dropped, counted, and published so the loss is auditable.
func (r *Reconciler) Reconcile(results []timesheet.SheetResult) Stats {
	var stats Stats
	for _, result := range results {
		for _, record := range result.Records {
			if record.IsTotal() {
				continue
			}

			project, ok := MatchLabel(record.Project, r.catalog)
			if ok {
				project.AddCompleted(record.Days)
				stats.Matched++
				r.bus.Publish(event_bus.NewEvent(event_bus.ContributionMatched, event_bus.ContributionMatchedEvent{
					Label:   record.Project,
					Project: project.Name,
					Days:    record.Days,
				}))
				continue
			}

			if fallback, hasFallback := r.catalog.Fallback(); hasFallback {
				fallback.AddCompleted(record.Days)
				stats.Fallback++
				r.bus.Publish(event_bus.NewEvent(event_bus.ContributionMatched, event_bus.ContributionMatchedEvent{
					Label:    record.Project,
					Project:  fallback.Name,
					Days:     record.Days,
					Fallback: true,
				}))
				continue
			}

			stats.Dropped++
			log.Warnf("no catalog match for %q and no fallback bucket, dropping %s days", record.Project, record.Days.StringFixed(2))
			r.bus.Publish(event_bus.NewEvent(event_bus.ContributionDropped, event_bus.ContributionDroppedEvent{
				Label: record.Project,
				Days:  record.Days,
			}))
		}
	}
	return stats
}
