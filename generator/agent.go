package generator

import (
	"context"
	"errors"

	"daily_finance_mailer/history"
)

// Agent produces the next lesson from the topic history.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// NextLesson asks the model for the next lesson. Any failure, transport or
// an unparsable response alike, is returned to the caller, which treats it
// as fatal for the run: better no email than a half-formed one.
func (a *Agent) NextLesson(ctx context.Context, recs []history.Record) (Lesson, error) {
	prompt := BuildLessonPrompt(recs)

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Lesson{}, err
	}
	return ParseLesson(raw)
}
