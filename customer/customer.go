// Package customer is the user and wallet ledger. Balances are signed
// integer cents: a debit may push a balance negative, and a negative
// balance is what blocks the next rental, not the debit itself.
package customer

import "math"

// User is a demo account. Password is stored as plain text on purpose;
// the server only runs with the plaintext-credentials flag enabled, which
// keeps the missing hashing an explicit configuration choice.
type User struct {
	ID           string
	Name         string
	Password     string
	BalanceCents int64
}

// Seed returns the fixed demo accounts created at process start.
func Seed() []User {
	return []User{
		{ID: "u123", Name: "Maya Holt", Password: "scooter4life", BalanceCents: 2000},
		{ID: "u124", Name: "Dev Okafor", Password: "snowbike", BalanceCents: 1200},
		{ID: "u125", Name: "Riley Fox", Password: "campus125", BalanceCents: 500},
	}
}

// DollarsToCents converts a decimal dollar amount to cents, rounding
// half-up so fractional cents never reach the ledger.
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
