package clearing

// AccountView is the read-only projection of an account handed to the
// reporting layer: one line of the output format.
type AccountView struct {
	Client    ClientID
	Available Money
	Held      Money
	Total     Money
	Frozen    bool
}

// View returns the account's current snapshot.
func (a *Account) View() AccountView {
	return AccountView{
		Client:    a.client,
		Available: a.available,
		Held:      a.held,
		Total:     a.total,
		Frozen:    a.frozen,
	}
}
