package application_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	score := 88
	reasoning := "Strong Go background"
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	list := []applicant.Applicant{
		{Name: "Jane Doe", Email: "jane@x.io", Status: pipeline.StatusProcessing, AIScore: &score, AIReasoning: &reasoning, CreatedAt: created},
		{Name: "John Roe", Email: "john@x.io", Status: pipeline.StatusRejected, CreatedAt: created},
	}

	data, err := application.BuildWorkbook("Backend Engineer", list, created)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Applicants")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Status", "AI Score", "AI Reasoning", "Applied At"}, rows[0])
	assert.Equal(t, []string{"Jane Doe", "jane@x.io", "processing", "88", "Strong Go background", "2024-05-01 09:30"}, rows[1])
	assert.Equal(t, "", rows[2][3])

	total, err := f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
	priority, _ := f.GetCellValue("Summary", "B4")
	assert.Equal(t, "1", priority)
}

func TestExportFileName(t *testing.T) {
	f := setupApplicantMocks(t)
	id := uuid.New()
	f.projects.EXPECT().GetProjectByID(id).Return(project.Project{ID: id, Name: "Senior Go / Backend"}, nil)
	f.apps.EXPECT().ListApplicantsByProject(id).Return(nil, nil)

	data, name, err := f.svc.Export(id)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(name, "applicants-senior-go-backend-"), name)
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
}
