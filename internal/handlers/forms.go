package handlers

import (
	"net/mail"
	"strconv"

	"store-console/internal/models"
)

const (
	msgRequired      = "This field is required"
	msgEmail         = "Please enter a valid email address"
	msgMobile        = "Mobile number must be exactly 10 digits"
	msgPasswordShort = "Password must be at least 8 characters long"
	msgPasswordMatch = "Passwords must match"
	msgNumeric       = "Enter a number"
)

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func validMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// planOption is one entry of a plan selector, labelled "Name - ₹Price" with
// the first option preselected by callers.
type planOption struct {
	ID    string
	Label string
	Price float64
}

func planOptions(subs []models.Subscription) []planOption {
	options := make([]planOption, 0, len(subs))
	for _, sub := range subs {
		options = append(options, planOption{
			ID:    sub.ID,
			Label: sub.Name + " - ₹" + formatAmount(float64(sub.Price)),
			Price: float64(sub.Price),
		})
	}
	return options
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
