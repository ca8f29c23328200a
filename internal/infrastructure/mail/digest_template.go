package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

var digestTmpl = template.Must(template.New("application_digest").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New applications for {{.JobTitle}}</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>{{.CompanyName}}: new applications</h1>
    <p>Hello {{.EmployerName}},</p>
    <p>Your posting <strong>{{.JobTitle}}</strong> has reached {{.TotalForJob}} applications.
       Here are the latest {{len .Applicants}}, oldest first:</p>
    <table width="100%" cellpadding="6" style="border-collapse: collapse;">
        <tr style="background-color: #f0f0f0;">
            <th align="left">Name</th>
            <th align="left">Email</th>
            <th align="left">Phone</th>
            <th align="left">Cover note</th>
        </tr>
        {{range .Applicants}}
        <tr style="border-bottom: 1px solid #eee;">
            <td>{{.FullName}}</td>
            <td>{{.Email}}</td>
            <td>{{if .Phone}}{{.Phone}}{{else}}&mdash;{{end}}</td>
            <td>{{if .CoverNote}}{{.CoverNote}}{{else}}&mdash;{{end}}</td>
        </tr>
        {{end}}
    </table>
    <p style="margin-top: 20px; font-size: 12px; color: #777;">
        This is an automated message; please do not reply.
    </p>
</body>
</html>
`))

// RenderDigest produces the subject and HTML body of an applicant digest.
func RenderDigest(event models.ApplicationDigestEvent) (subject, body string, err error) {
	subject = fmt.Sprintf("%d new applications for %s", len(event.Applicants), event.JobTitle)

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, event); err != nil {
		return "", "", fmt.Errorf("failed to render digest template: %w", err)
	}
	return subject, buf.String(), nil
}
