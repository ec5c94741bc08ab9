package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/msesoft/zeitreport/internal/app"
	log "github.com/sirupsen/logrus"
)

var (
	cli          = kingpin.New("zeitreport", "Aggregates timesheet workbooks and reconciles them against the project catalog.")
	folderArg    = cli.Arg("folder", "Folder containing the timesheet workbooks.").String()
	analysisType = cli.Arg("analysis", "Analysis type code (1 = Attendance).").Int()
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	log.Info("Application started")
	if *folderArg == "" || *analysisType == 0 {
		log.Info("Please provide folder path for analysis and Operation Type")
		return
	}

	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := application.Run(*folderArg, *analysisType); err != nil {
		log.Fatal(err)
	}
}
