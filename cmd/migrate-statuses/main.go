// Command migrate-statuses rewrites applicant statuses written by the older
// three-state board (pending, approved, interview) onto the current pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/config"
	"github.com/linskybing/hris-cloud/internal/config/db"
	"github.com/linskybing/hris-cloud/internal/repository"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report the rewrites without applying them")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	repos := repository.NewRepositories(db.DB)
	report, err := application.MigrateLegacyStatuses(repos.Applicant, *dryRun)
	if report != nil {
		printDistribution("Current status distribution", report.Before)
		for _, r := range report.Rewrites {
			fmt.Printf("   %s -> %s: %d\n", r.From, r.To, r.Count)
		}
		for _, s := range report.Unknown {
			fmt.Printf("   ! %s has no mapping, left unchanged\n", s)
		}
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if *dryRun {
		fmt.Println("\nDry run, nothing written.")
		return
	}
	printDistribution("New status distribution", report.After)
}

func printDistribution(title string, dist map[string]int64) {
	fmt.Printf("\n%s:\n", title)
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("   - %s: %d\n", k, dist[k])
	}
}
