package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/clearing"
)

func TestSummaryMarkdown(t *testing.T) {
	views := []clearing.AccountView{
		{Client: 1, Available: clearing.M(2.0), Held: clearing.M(0), Total: clearing.M(2.0)},
		{Client: 2, Available: clearing.M(0), Held: clearing.M(0), Total: clearing.M(0), Frozen: true},
	}
	summary := clearing.Summary{
		Accounts:     2,
		Frozen:       1,
		OpenDisputes: 1,
		Available:    clearing.M(2.0),
		Held:         clearing.M(0),
		Total:        clearing.M(2.0),
	}

	got := SummaryMarkdown(summary, views, "")
	wantLines := []string{
		"# Clearing Summary",
		"2 account(s), 1 locked, 1 open dispute(s).",
		"| Available | 2.0000 |",
		"| Held | 0.0000 |",
		"| Total | 2.0000 |",
		"## Accounts",
		"| 1 | 2.0000 | 0.0000 | 2.0000 | open |",
		"| 2 | 0.0000 | 0.0000 | 0.0000 | locked |",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing line %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("SummaryMarkdown() reported a template error:\n%s", got)
	}
}

func TestSummaryMarkdown_Currency(t *testing.T) {
	views := []clearing.AccountView{
		{Client: 1, Available: clearing.M(1234.5678), Held: clearing.M(0), Total: clearing.M(1234.5678)},
	}
	summary := clearing.Summary{Accounts: 1, Available: clearing.M(1234.5678), Held: clearing.M(0), Total: clearing.M(1234.5678)}

	got := SummaryMarkdown(summary, views, "USD")
	if !strings.Contains(got, "| Available | $1,234.57 |") {
		t.Errorf("SummaryMarkdown() did not format with USD rules:\n%s", got)
	}
}
