package application

import (
	"log"
	"sort"

	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
)

// StatusRewrite is one legacy value mapped onto the canonical pipeline.
type StatusRewrite struct {
	From  string          `json:"from"`
	To    pipeline.Status `json:"to"`
	Count int64           `json:"count"`
}

type StatusMigrationReport struct {
	Before   map[string]int64 `json:"before"`
	After    map[string]int64 `json:"after"`
	Rewrites []StatusRewrite  `json:"rewrites"`
	// Unknown lists stored values that have no canonical mapping.
	Unknown []string `json:"unknown,omitempty"`
}

// MigrateLegacyStatuses rewrites statuses left by the three-state board.
// With dryRun set the rewrites are computed but not applied.
func MigrateLegacyStatuses(repo repository.ApplicantRepo, dryRun bool) (*StatusMigrationReport, error) {
	before, err := repo.StatusDistribution()
	if err != nil {
		return nil, err
	}
	report := &StatusMigrationReport{Before: before}

	legacy := make([]string, 0, len(before))
	for s := range before {
		if !pipeline.Status(s).Valid() {
			legacy = append(legacy, s)
		}
	}
	sort.Strings(legacy)

	for _, from := range legacy {
		to := pipeline.MigrateLegacy(from)
		if !to.Valid() {
			report.Unknown = append(report.Unknown, from)
			continue
		}
		count := before[from]
		if !dryRun {
			count, err = repo.RewriteStatus(from, to)
			if err != nil {
				return report, err
			}
			log.Printf("[migrate] %s -> %s: %d applicants", from, to, count)
		}
		report.Rewrites = append(report.Rewrites, StatusRewrite{From: from, To: to, Count: count})
	}

	if dryRun {
		report.After = before
		return report, nil
	}
	report.After, err = repo.StatusDistribution()
	if err != nil {
		return report, err
	}
	return report, nil
}
