package generator

import "encoding/json"

// Lesson is the model's output for one daily email. Only Topic outlives the
// run (it is folded into history); everything else feeds the composer.
type Lesson struct {
	Topic    string `json:"topic"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	// ChartConfig is kept raw and handed to the chart renderer unmodified,
	// so the model may use any Chart.js option we never heard of.
	ChartConfig json.RawMessage `json:"chart_config,omitempty"`
}

// HasChart reports whether the model supplied a usable chart description.
func (l Lesson) HasChart() bool {
	trimmed := string(l.ChartConfig)
	return len(trimmed) > 0 && trimmed != "null" && trimmed != "{}"
}
