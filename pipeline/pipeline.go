// Package pipeline wires one run of the mailer: load history, generate a
// lesson, render the chart, compose, deliver, record the topic.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"daily_finance_mailer/generator"
	"daily_finance_mailer/history"
	"daily_finance_mailer/mailer"
)

// ContentGenerator produces the next lesson from history.
type ContentGenerator interface {
	NextLesson(ctx context.Context, recs []history.Record) (generator.Lesson, error)
}

// ChartRenderer converts a chart config into a hosted image URL, best-effort.
type ChartRenderer interface {
	Render(ctx context.Context, cfg json.RawMessage) (string, bool)
}

// Sender delivers a composed email.
type Sender interface {
	Send(ctx context.Context, subject, html string, recipients []string) error
}

// HistoryStore loads and appends the topic log.
type HistoryStore interface {
	Load() []history.Record
	Append(topic string, recs []history.Record) error
}

// Deps carries everything a run needs. Construction happens once in main;
// tests substitute stubs.
type Deps struct {
	Store     HistoryStore
	Generator ContentGenerator
	Charts    ChartRenderer
	Sender    Sender

	// Recipients is the raw comma-separated address list from configuration.
	Recipients string

	Now func() time.Time

	// DryRunOut, when set, receives the composed HTML instead of it being
	// sent; nothing is delivered and no history is written.
	DryRunOut io.Writer
}

// Run executes one full mailer cycle. Generation and delivery failures abort
// the run; chart and history trouble never do. The topic is appended to
// history only after a successful send, so a failed delivery leaves it
// eligible for the next run.
func Run(ctx context.Context, d Deps) error {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	recs := d.Store.Load()
	log.Info().Int("past_topics", len(recs)).Msg("querying model for today's lesson")

	lesson, err := d.Generator.NextLesson(ctx, recs)
	if err != nil {
		return fmt.Errorf("generate lesson: %w", err)
	}

	// Defaults cover a model that omits topic or subject; the defaulted
	// topic also flows into composition (chart alt text) and history.
	if lesson.Topic == "" {
		lesson.Topic = "Finance Topic"
	}
	topic := lesson.Topic
	subject := lesson.Subject
	if subject == "" {
		subject = "Daily Finance: " + topic
	}
	log.Info().Str("topic", topic).Msg("lesson generated")

	var chartURL string
	if lesson.HasChart() {
		if url, ok := d.Charts.Render(ctx, lesson.ChartConfig); ok {
			chartURL = url
			log.Info().Str("url", chartURL).Msg("chart rendered")
		}
	}

	html, err := mailer.Compose(lesson, chartURL, now())
	if err != nil {
		return fmt.Errorf("compose email: %w", err)
	}

	if d.DryRunOut != nil {
		_, err := io.WriteString(d.DryRunOut, html)
		return err
	}

	recipients := mailer.SplitRecipients(d.Recipients)
	if err := d.Sender.Send(ctx, subject, html, recipients); err != nil {
		return fmt.Errorf("deliver email: %w", err)
	}
	log.Info().Int("recipients", len(recipients)).Msg("email sent")

	if err := d.Store.Append(topic, recs); err != nil {
		// The email already went out; losing one history entry is not
		// worth failing the run over.
		log.Warn().Err(err).Msg("could not record topic in history")
	}
	return nil
}
