package mail

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

func TestRenderDigest(t *testing.T) {
	event := models.ApplicationDigestEvent{
		JobID:         uuid.New(),
		JobTitle:      "Senior Gopher",
		CompanyName:   "Acme Corp",
		EmployerEmail: "boss@acme.example",
		EmployerName:  "Erin Employer",
		TotalForJob:   5,
		Applicants: []models.Applicant{
			{FullName: "First Applicant", Email: "first@example.com", Phone: "555-0100"},
			{FullName: "Second Applicant", Email: "second@example.com", CoverNote: "Hire me"},
		},
	}

	subject, body, err := RenderDigest(event)
	require.NoError(t, err)

	assert.Equal(t, "2 new applications for Senior Gopher", subject)
	assert.Contains(t, body, "Acme Corp")
	assert.Contains(t, body, "First Applicant")
	assert.Contains(t, body, "second@example.com")
	assert.Contains(t, body, "Hire me")
}

func TestRenderDigest_EscapesHTML(t *testing.T) {
	event := models.ApplicationDigestEvent{
		JobTitle:     "QA <script>alert(1)</script>",
		EmployerName: "Erin",
		Applicants:   []models.Applicant{{FullName: "<b>Bold</b>", Email: "a@b.c"}},
	}

	_, body, err := RenderDigest(event)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.NotContains(t, body, "<b>Bold</b>")
}
