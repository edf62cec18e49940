package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// CleanFence strips a single outer Markdown code fence, which models often
// wrap JSON payloads in despite being told not to. Only fences at the very
// start and end of the text are touched; interior content is never altered,
// and nested fences are left alone.
func CleanFence(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}

	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}

	return strings.TrimSpace(text)
}

// ParseLesson turns the model's raw response into a Lesson. Missing topic,
// subject, or body are tolerated here; the composer substitutes placeholders
// downstream. A body with no HTML tags at all is assumed to be Markdown and
// converted, since some models ignore the html_body instruction.
func ParseLesson(raw string) (Lesson, error) {
	cleaned := CleanFence(raw)
	if cleaned == "" {
		return Lesson{}, errors.New("model returned empty response")
	}

	var lesson Lesson
	if err := json.Unmarshal([]byte(cleaned), &lesson); err != nil {
		return Lesson{}, fmt.Errorf("parse lesson json: %w", err)
	}

	if body := strings.TrimSpace(lesson.HTMLBody); body != "" && !strings.Contains(body, "<") {
		html, err := mdToHTML(body)
		if err == nil {
			lesson.HTMLBody = html
		}
	}

	return lesson, nil
}

func mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
