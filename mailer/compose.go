// Package mailer turns a generated lesson into a finished HTML email and
// delivers it over SMTP.
package mailer

import (
	"html/template"
	"strings"
	"time"

	"daily_finance_mailer/generator"
)

// bodyPlaceholder appears when the model produced no body at all; an email
// with a visible error beats a silently empty one.
const bodyPlaceholder = "<p>Error: No body content generated.</p>"

var emailTmpl = template.Must(template.New("email").Parse(`<html>
<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #ffffff; padding: 20px; border: 1px solid #e1e1e1; border-radius: 8px;">
    <div style="border-bottom: 2px solid #4CAF50; padding-bottom: 10px; margin-bottom: 20px;">
      <h1 style="color: #2E7D32; margin: 0; font-size: 24px;">&#128200; Daily Finance Byte</h1>
      <p style="color: #666; font-size: 14px; margin: 5px 0 0 0;">{{.Date}}</p>
    </div>
{{if .ChartURL}}    <div style="margin: 20px 0; text-align: center;">
      <img src="{{.ChartURL}}" alt="{{.Topic}} Chart" style="max-width: 100%; height: auto; border: 1px solid #ddd; border-radius: 8px;">
    </div>
{{end}}    <div style="font-size: 16px;">
      {{.Body}}
    </div>
    <hr style="border: 0; border-top: 1px solid #eee; margin: 30px 0;">
    <p style="font-size: 12px; color: #999; text-align: center;">
      This email was generated automatically by a language model.
    </p>
  </div>
</body>
</html>
`))

type emailData struct {
	Date     string
	Topic    string
	ChartURL string
	Body     template.HTML
}

// Compose renders the full email document. chartURL may be empty, in which
// case the image block is omitted entirely.
func Compose(lesson generator.Lesson, chartURL string, now time.Time) (string, error) {
	body := strings.TrimSpace(lesson.HTMLBody)
	if body == "" {
		body = bodyPlaceholder
	}

	var sb strings.Builder
	err := emailTmpl.Execute(&sb, emailData{
		Date:     now.Format("January 2, 2006"),
		Topic:    lesson.Topic,
		ChartURL: chartURL,
		Body:     template.HTML(body),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
