package models

import (
	"strconv"
	"strings"
)

// Billing modes a subscription plan may combine. Submission order is fixed:
// Slot, Minute, Countdown.
const (
	BillingSlot      = "Slot Billing"
	BillingMinute    = "Minute Billing"
	BillingCountdown = "Countdown Billing"
)

// ClientPages are the named capabilities a plan's access list may grant.
var ClientPages = []string{
	"Dashboard",
	"Devices",
	"Bookings",
	"Reports",
	"Billing",
	"Settings",
}

// Number tolerates both the numeric and quoted forms the backend emits for
// price and validity fields. It marshals as a plain number.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

type Subscription struct {
	ID          string   `json:"_id"`
	Name        string   `json:"subscriptionName"`
	Description string   `json:"subscriptionDescription"`
	Price       Number   `json:"subscriptionPrice"`
	GlobalPrice Number   `json:"subscriptionGlobalPrice,omitempty"`
	Validity    Number   `json:"subscriptionValidity"`
	Access      []string `json:"access"`
	Billings    []string `json:"billings"`
	IsYearly    bool     `json:"isYearly"`
}

// SubscriptionRequest is the create/update payload; the backend assigns _id.
type SubscriptionRequest struct {
	Name        string   `json:"subscriptionName"`
	Description string   `json:"subscriptionDescription"`
	Price       float64  `json:"subscriptionPrice"`
	Validity    float64  `json:"subscriptionValidity"`
	Access      []string `json:"access"`
	Billings    []string `json:"billings"`
	IsYearly    bool     `json:"isYearly"`
}
