package models

// EconomyAccount representa la cartera y el banco de un usuario
type EconomyAccount struct {
	Balance int `json:"balance"`
	Bank    int `json:"bank"`
}

// NewEconomyAccount returns the account assigned on first access
func NewEconomyAccount() EconomyAccount {
	return EconomyAccount{Balance: 1000, Bank: 0}
}

// Total returns wallet plus bank, the leaderboard metric
func (a EconomyAccount) Total() int {
	return a.Balance + a.Bank
}
