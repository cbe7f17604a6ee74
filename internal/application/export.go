package application

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	applicantsSheet = "Applicants"
	summarySheet    = "Summary"
)

var applicantColumns = []string{"Name", "Email", "Status", "AI Score", "AI Reasoning", "Applied At"}

// Export renders a project's applicants, best score first, as an XLSX
// workbook and returns it with a suggested file name.
func (s *ApplicantService) Export(projectID uuid.UUID) ([]byte, string, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProjectNotFound
		}
		return nil, "", err
	}
	list, err := s.Repos.Applicant.ListApplicantsByProject(projectID)
	if err != nil {
		return nil, "", err
	}

	data, err := BuildWorkbook(p.Name, list, time.Now())
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("applicants-%s-%s.xlsx", slug(p.Name), time.Now().Format("20060102"))
	return data, name, nil
}

func BuildWorkbook(projectName string, list []applicant.Applicant, generated time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", applicantsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range applicantColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(applicantsSheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(applicantColumns), 1)
	f.SetCellStyle(applicantsSheet, "A1", lastHeader, headerStyle)
	f.SetColWidth(applicantsSheet, "A", "B", 28)
	f.SetColWidth(applicantsSheet, "E", "E", 60)

	for i, a := range list {
		row := i + 2
		score := ""
		if a.AIScore != nil {
			score = fmt.Sprintf("%d", *a.AIScore)
		}
		reasoning := ""
		if a.AIReasoning != nil {
			reasoning = *a.AIReasoning
		}
		values := []interface{}{a.Name, a.Email, string(a.Status), score, reasoning, a.CreatedAt.Format("2006-01-02 15:04")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(applicantsSheet, cell, v)
		}
	}

	counts := pipeline.Count(list)
	summary := [][]interface{}{
		{"Project", projectName},
		{"Generated", generated.Format("2006-01-02 15:04:05")},
		{"Total", counts.Total},
		{"Priority (score >= 70)", counts.Priority},
		{"CV Inbox", counts.Inbox},
		{"Interview", counts.Interview},
		{"Verification", counts.Verification},
		{"Hired", counts.Hired},
		{"Rejected", counts.Rejected},
	}
	for i, row := range summary {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(summarySheet, "A", "A", 25)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "project"
	}
	return out
}
