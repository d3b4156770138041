package renderer

import (
	"strconv"

	"github.com/etnz/clearing"
)

// summaryData is the template model for the clearing summary report. All
// monetary cells are pre-formatted so the templates stay dumb.
type summaryData struct {
	Accounts     int
	Frozen       int
	OpenDisputes int
	Available    string
	Held         string
	Total        string
	Rows         []accountRow
}

type accountRow struct {
	Client    string
	Available string
	Held      string
	Total     string
	Status    string
}

// SummaryMarkdown renders the aggregate summary and the per-account table
// to a markdown string. When currency is set, amounts are formatted with
// that currency's display rules instead of the raw 4-digit values.
func SummaryMarkdown(s clearing.Summary, views []clearing.AccountView, currency string) string {
	amount := func(m clearing.Money) string { return m.Display(currency) }

	data := summaryData{
		Accounts:     s.Accounts,
		Frozen:       s.Frozen,
		OpenDisputes: s.OpenDisputes,
		Available:    amount(s.Available),
		Held:         amount(s.Held),
		Total:        amount(s.Total),
	}
	for _, v := range views {
		status := "open"
		if v.Frozen {
			status = "locked"
		}
		data.Rows = append(data.Rows, accountRow{
			Client:    strconv.FormatUint(uint64(v.Client), 10),
			Available: amount(v.Available),
			Held:      amount(v.Held),
			Total:     amount(v.Total),
			Status:    status,
		})
	}

	partials := map[string]string{
		"summary_accounts": "summary_accounts.md",
	}
	return renderTemplate("summary", "summary.md", partials, data)
}
