package generator

import (
	"fmt"
	"strings"

	"daily_finance_mailer/history"
)

// recencyWindow bounds how much history goes into the prompt. Older topics
// fall out of the window and may in principle be taught again.
const recencyWindow = 10

type stage struct {
	Name   string
	Topics []string
}

// syllabus is the fixed curriculum roadmap. It is guidance text for the
// model, not a state machine: the code never checks that the chosen topic
// actually comes from this list or follows the order.
var syllabus = []stage{
	{"Money Foundations", []string{
		"What Money Is and How It Works", "Income vs. Wealth", "Inflation and Purchasing Power", "The Time Value of Money",
	}},
	{"Budgeting & Saving", []string{
		"Building Your First Budget", "The 50/30/20 Rule", "Emergency Funds", "Paying Yourself First", "High-Yield Savings Accounts",
	}},
	{"Banking Basics", []string{
		"Checking vs. Savings Accounts", "How Banks Make Money", "Bank Fees and How to Avoid Them", "FDIC Insurance",
	}},
	{"Debt & Credit", []string{
		"How Credit Scores Work", "Credit Cards: Grace Periods and APR", "Good Debt vs. Bad Debt", "The Debt Snowball and Avalanche Methods", "Student Loans",
	}},
	{"Investing Fundamentals", []string{
		"Stocks, Bonds, and Funds", "Compound Interest", "Index Funds and Diversification", "Dollar-Cost Averaging", "Risk Tolerance",
	}},
	{"Retirement Planning", []string{
		"401(k) Basics and Employer Matching", "Traditional vs. Roth IRA", "The 4% Rule", "Social Security Basics",
	}},
	{"Taxes", []string{
		"How Tax Brackets Actually Work", "Deductions vs. Credits", "Capital Gains Tax", "Tax-Advantaged Accounts",
	}},
	{"Insurance & Risk", []string{
		"Why Insurance Exists", "Health Insurance Terms Decoded", "Term vs. Whole Life Insurance", "Deductibles and Premiums",
	}},
	{"Money Psychology", []string{
		"Loss Aversion", "Lifestyle Inflation", "The Sunk Cost Fallacy", "FOMO Investing and Market Timing",
	}},
}

// BuildLessonPrompt assembles the full generation request: the last taught
// topic, a bounded window of recent topics, the syllabus roadmap, and the
// output contract. Topic uniqueness is requested here and nowhere enforced.
func BuildLessonPrompt(recs []history.Record) string {
	lastTopic := "none yet (this is the first lesson)"
	if len(recs) > 0 {
		lastTopic = recs[len(recs)-1].Topic
	}

	window := recs
	if len(window) > recencyWindow {
		window = window[len(window)-recencyWindow:]
	}
	recent := make([]string, 0, len(window))
	for _, r := range window {
		recent = append(recent, r.Topic)
	}

	var sb strings.Builder
	sb.WriteString("You are a friendly financial educator writing a daily email that teaches one specific beginner finance concept in US English.\n\n")
	sb.WriteString(fmt.Sprintf("Last topic taught: %s\n", lastTopic))
	sb.WriteString(fmt.Sprintf("Recently covered topics (do NOT repeat any of these): [%s]\n\n", strings.Join(recent, ", ")))

	sb.WriteString("Curriculum roadmap (follow it loosely, in order):\n")
	for i, st := range syllabus {
		sb.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, st.Name, strings.Join(st.Topics, "; ")))
	}

	sb.WriteString(`
Constraint checklist:
1. Pick the next topic in the roadmap adjacent to the last topic taught that has not been covered yet.
2. Length: 800-1200 words.
3. Tone: beginner-friendly, encouraging.
4. Output: VALID JSON ONLY. No preamble.

JSON structure required:
{
  "topic": "Short Topic Name",
  "subject": "Catchy Email Subject",
  "html_body": "The full article in HTML (use <h2>, <p>, <ul>, <li>; no <html> or <body> tags; inline CSS only)",
  "chart_config": {
    "type": "bar",
    "data": { "labels": ["A","B"], "datasets": [{ "label": "Example", "data": [10, 20] }] },
    "options": { "title": { "display": true, "text": "Chart Title" } }
  }
}
`)
	return sb.String()
}
