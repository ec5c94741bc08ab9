package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrEmptyCatalog = errors.New("project catalog is empty")

// Project is one canonical project of the catalog. CompletedWorkingDays is the
// only field mutated after construction; it accumulates matched attendance
// contributions over a single run.
type Project struct {
	Name                 string
	OrderAmount          decimal.Decimal
	CompletedWorkingDays decimal.Decimal

	dailyRate decimal.Decimal
}

// DailyRate returns the contractual day rate resolved for this project at seed time.
func (p *Project) DailyRate() decimal.Decimal {
	return p.dailyRate
}

// AvailableWorkingDays converts the contracted order amount into working days
// using the project's day rate. Projects without a rate (or a zero rate) have
// no available days.
func (p *Project) AvailableWorkingDays() decimal.Decimal {
	if p.dailyRate.IsZero() {
		return decimal.Zero
	}
	return p.OrderAmount.Div(p.dailyRate)
}

// AddCompleted credits days of matched attendance to this project.
func (p *Project) AddCompleted(days decimal.Decimal) {
	p.CompletedWorkingDays = p.CompletedWorkingDays.Add(days)
}

// Seed is one configured catalog entry.
type Seed struct {
	Name        string
	OrderAmount decimal.Decimal
}

// RateBucket assigns a flat day rate to an explicit list of project names.
// Membership is exact and case-sensitive against the configured name.
type RateBucket struct {
	Rate     decimal.Decimal
	Projects []string
}

// RateTable is the full rate classification: a default rate plus override buckets.
type RateTable struct {
	Default decimal.Decimal
	Buckets []RateBucket
}

func (t RateTable) rateFor(name string) decimal.Decimal {
	for _, bucket := range t.Buckets {
		for _, p := range bucket.Projects {
			if p == name {
				return bucket.Rate
			}
		}
	}
	return t.Default
}

// Catalog is the ordered set of canonical projects for one run. Iteration
// order is the seed order; label matching is first-match-wins over it, so the
// order is part of the external contract.
type Catalog struct {
	projects []*Project
	fallback *Project
}

// New builds a catalog from the configured seed list. The fallback name
// designates the bucket absorbing unmatched contributions; an empty name or a
// name not present in the seed leaves the catalog without a fallback.
func New(seeds []Seed, rates RateTable, fallbackName string) (*Catalog, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{projects: make([]*Project, 0, len(seeds))}
	for _, seed := range seeds {
		project := &Project{
			Name:        seed.Name,
			OrderAmount: seed.OrderAmount,
			dailyRate:   rates.rateFor(seed.Name),
		}
		c.projects = append(c.projects, project)
		if fallbackName != "" && strings.EqualFold(seed.Name, fallbackName) && c.fallback == nil {
			c.fallback = project
		}
	}
	return c, nil
}

// Projects returns all catalog entries in seed order.
func (c *Catalog) Projects() []*Project {
	return c.projects
}

// Fallback returns the configured fallback project, if any.
func (c *Catalog) Fallback() (*Project, bool) {
	return c.fallback, c.fallback != nil
}
