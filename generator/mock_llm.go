package generator

import "context"

// MockLLM returns a canned lesson without touching the network, for local
// runs and tests.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, _ string) (string, error) {
	return "```json\n" + `{
  "topic": "Compound Interest",
  "subject": "The Snowball That Builds Wealth: Compound Interest",
  "html_body": "<h2>What Is Compound Interest?</h2><p>Compound interest is interest earned on interest. Leave money invested and the growth itself starts growing.</p><ul><li>Year 1: you earn interest on your deposit.</li><li>Year 2: you earn interest on the deposit plus last year's interest.</li></ul>",
  "chart_config": {
    "type": "bar",
    "data": {
      "labels": ["Year 1", "Year 5", "Year 10"],
      "datasets": [{"label": "Balance ($)", "data": [1050, 1276, 1629]}]
    },
    "options": {"title": {"display": true, "text": "Growth of $1,000 at 5%"}}
  }
}` + "\n```", nil
}
