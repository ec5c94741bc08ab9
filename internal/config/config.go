package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	// SheetName is the workbook sheet carrying the timesheet rows.
	SheetName string  `koanf:"sheetname"`
	Report    Report  `koanf:"report"`
	Catalog   Catalog `koanf:"catalog"`
}

type Report struct {
	// Format selects the report renderer: "xlsx" or "csv".
	Format string `koanf:"format"`
}

// Catalog is the canonical project seed. Entry order is the matching order
// and therefore part of the contract; the rate lists and their values mirror
// the contractual day rates and must not be re-derived.
type Catalog struct {
	Fallback string    `koanf:"fallback"`
	Projects []Project `koanf:"projects"`
	Rates    Rates     `koanf:"rates"`
}

type Project struct {
	Name        string  `koanf:"name"`
	OrderAmount float64 `koanf:"orderamount"`
}

type Rates struct {
	Default   float64        `koanf:"default"`
	Overrides []RateOverride `koanf:"overrides"`
}

type RateOverride struct {
	Rate     float64  `koanf:"rate"`
	Projects []string `koanf:"projects"`
}

func defaults() Application {
	return Application{
		SheetName: "2025",
		Report: Report{
			Format: "xlsx",
		},
		Catalog: Catalog{
			Fallback: "OTHERS",
			Projects: []Project{
				{Name: "MBAG", OrderAmount: 220000},
				{Name: "DTAG", OrderAmount: 180000},
				{Name: "FUSO", OrderAmount: 56000},
				{Name: "RAD-DB", OrderAmount: 110000},
				{Name: "RAD-DB WARTUNG", OrderAmount: 44000},
				{Name: "RAD-DB (AMG)", OrderAmount: 33000},
				{Name: "QMSR", OrderAmount: 66000},
				{Name: "SOLARSCHMIEDE", OrderAmount: 30000},
				{Name: "VESUV", OrderAmount: 89760},
				{Name: "VESUV WARTUNG", OrderAmount: 60000},
				{Name: "OTHERS", OrderAmount: 0},
			},
			Rates: Rates{
				Default: 1122,
				Overrides: []RateOverride{
					{Rate: 1100, Projects: []string{"MBAG", "RAD-DB WARTUNG", "RAD-DB", "RAD-DB (AMG)", "QMSR"}},
					{Rate: 600, Projects: []string{"SOLARSCHMIEDE"}},
					{Rate: 2000, Projects: []string{"VESUV WARTUNG"}},
					{Rate: 1120, Projects: []string{"FUSO"}},
				},
			},
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "ZEITREPORT_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "ZEITREPORT_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
