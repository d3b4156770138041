package clearing

// Summary aggregates the state of every account in a registry, for the
// at-a-glance report.
type Summary struct {
	Accounts     int   // number of known accounts
	Frozen       int   // number of locked accounts
	OpenDisputes int   // transactions currently flagged disputed
	Available    Money // sum of available funds over all accounts
	Held         Money // sum of held funds over all accounts
	Total        Money // sum of total funds over all accounts
}

// NewSummary computes the aggregate over all accounts of the registry.
func NewSummary(r *Registry) Summary {
	var s Summary
	for a := range r.Accounts() {
		s.Accounts++
		if a.Frozen() {
			s.Frozen++
		}
		s.OpenDisputes += a.OpenDisputes()
		s.Available = s.Available.Add(a.Available())
		s.Held = s.Held.Add(a.Held())
		s.Total = s.Total.Add(a.Total())
	}
	return s
}
