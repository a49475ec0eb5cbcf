package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"store-console/internal/models"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("admin@example.com"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("a b@example.com"))
}

func TestValidMobile(t *testing.T) {
	assert.True(t, validMobile("9876543210"))
	assert.False(t, validMobile("987654321"))   // nine digits
	assert.False(t, validMobile("98765432101")) // eleven digits
	assert.False(t, validMobile("98765x3210"))
	assert.False(t, validMobile(""))
}

func TestPlanOptionLabel(t *testing.T) {
	opts := planOptions([]models.Subscription{
		{ID: "p1", Name: "Basic", Price: 499},
		{ID: "p2", Name: "Premium", Price: 1499.5},
	})
	assert.Equal(t, "Basic - ₹499", opts[0].Label)
	assert.Equal(t, "Premium - ₹1499.5", opts[1].Label)
}

func TestQuoteForAppliesFlatTax(t *testing.T) {
	quote := quoteFor(1000)
	assert.Equal(t, "1000", quote.Amount)
	assert.Equal(t, "180", quote.Tax)
	assert.Equal(t, "1180.00", quote.NetPay)

	quote = quoteFor(250)
	assert.Equal(t, "45", quote.Tax)
	assert.Equal(t, "295.00", quote.NetPay)

	quote = quoteFor(0)
	assert.Equal(t, "0", quote.Amount)
	assert.Equal(t, "0.00", quote.NetPay)
}

func TestBillingSelectionKeepsFixedOrder(t *testing.T) {
	assert.Equal(t, []string{}, billingSelection(false, false, false))
	assert.Equal(t, []string{"Minute Billing"}, billingSelection(false, true, false))
	assert.Equal(t,
		[]string{"Slot Billing", "Minute Billing", "Countdown Billing"},
		billingSelection(true, true, true))
	// countdown before slot in the UI still comes out slot first
	assert.Equal(t,
		[]string{"Slot Billing", "Countdown Billing"},
		billingSelection(true, false, true))
}

func TestSubscriptionFormRequest(t *testing.T) {
	form := subscriptionForm{
		Name:          "Basic",
		Description:   "Entry plan",
		Price:         "499.5",
		Validity:      "30",
		MinuteBilling: true,
		IsYearly:      true,
	}
	req := form.request()
	assert.Equal(t, 499.5, req.Price)
	assert.Equal(t, float64(30), req.Validity)
	assert.Equal(t, []string{"Minute Billing"}, req.Billings)
	assert.NotNil(t, req.Access) // empty selection still marshals as []
	assert.True(t, req.IsYearly)
}

func TestSubscriptionFormValidate(t *testing.T) {
	form := subscriptionForm{Price: "abc", Validity: "30", Name: "x", Description: "y"}
	errs := form.validate()
	assert.Equal(t, msgNumeric, errs["subscriptionPrice"])
	assert.Empty(t, errs["subscriptionValidity"])

	errs = (&subscriptionForm{}).validate()
	assert.Equal(t, msgRequired, errs["subscriptionName"])
	assert.Equal(t, msgRequired, errs["subscriptionPrice"])
}

func TestSubscriptionFormFromChecksBillings(t *testing.T) {
	form := subscriptionFormFrom(models.Subscription{
		Name:     "Pro",
		Price:    999,
		Validity: 90,
		Billings: []string{"Slot Billing", "Countdown Billing"},
	})
	assert.True(t, form.SlotBilling)
	assert.False(t, form.MinuteBilling)
	assert.True(t, form.CountdownBilling)
	assert.Equal(t, "999", form.Price)
}

func TestClientFormValidateRegistration(t *testing.T) {
	form := clientForm{FullName: "A Admin", Mobile: "9876543210", Email: "a@example.com"}
	errs := form.validate(true)
	assert.Equal(t, msgRequired, errs["password"])

	form.Password = "short"
	form.ConfirmPassword = "short"
	errs = form.validate(true)
	assert.Equal(t, msgPasswordShort, errs["password"])

	form.Password = "longenough"
	form.ConfirmPassword = "different1"
	errs = form.validate(true)
	assert.Equal(t, msgPasswordMatch, errs["confirmPassword"])

	form.ConfirmPassword = "longenough"
	assert.Empty(t, form.validate(true))
}

func TestClientFormValidateEditAllowsBlankPassword(t *testing.T) {
	form := clientForm{FullName: "A Admin", Mobile: "9876543210", Email: "a@example.com"}
	assert.Empty(t, form.validate(false))

	// once a new password is typed the usual rules apply
	form.Password = "longenough"
	errs := form.validate(false)
	assert.Equal(t, msgRequired, errs["confirmPassword"])
}

func TestStoreFormJoinedAddress(t *testing.T) {
	form := storeForm{Address: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"}
	assert.Equal(t, "12 MG Road, Pune, Maharashtra, 411001", form.joinedAddress())
}

func TestStoreFormFromSplitsAddress(t *testing.T) {
	form := storeFormFrom(models.Store{
		StoreName:    "Acme Retail",
		Email:        "acme@example.com",
		Contact:      "9876543210",
		Address:      "12 MG Road, Sector 5, Pune, Maharashtra, 411001",
		Subscription: "p1",
	})
	assert.Equal(t, "12 MG Road, Sector 5", form.Address) // street keeps its own commas
	assert.Equal(t, "Pune", form.City)
	assert.Equal(t, "Maharashtra", form.State)
	assert.Equal(t, "411001", form.Pincode)
	assert.Equal(t, "p1", form.SubscriptionID)
	assert.Equal(t, defaultValidDays, form.ValidDays)

	// free-form addresses stay whole in the street field
	form = storeFormFrom(models.Store{Address: "Somewhere 42"})
	assert.Equal(t, "Somewhere 42", form.Address)
	assert.Empty(t, form.City)
}

func TestStoreFormValidate(t *testing.T) {
	form := storeForm{
		StoreName: "Acme",
		Email:     "acme@example.com",
		Contact:   "9876543210",
		ValidDays: 30,
		Address:   "12 MG Road",
		Pincode:   "411001",
		City:      "Pune",
		State:     "Maharashtra",
	}
	assert.Empty(t, form.validate())

	form.ValidDays = 0
	form.Email = "nope"
	errs := form.validate()
	assert.Contains(t, errs, "validDays")
	assert.Equal(t, msgEmail, errs["email"])
}
