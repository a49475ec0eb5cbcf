package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"store-console/internal/database"
	"store-console/internal/middleware"
	"store-console/internal/models"
	"store-console/internal/table"
)

func subscriptionColumns() []table.Column[models.Subscription] {
	return []table.Column[models.Subscription]{
		{Key: "name", Title: "Name", Value: func(s models.Subscription) string { return s.Name }},
		{Key: "description", Title: "Description", Value: func(s models.Subscription) string { return s.Description }},
		{Key: "price", Title: "Price", Value: func(s models.Subscription) string { return formatAmount(float64(s.Price)) }},
		{Key: "validity", Title: "Validity", Value: func(s models.Subscription) string { return formatAmount(float64(s.Validity)) }},
		{Key: "billings", Title: "Billings", Value: func(s models.Subscription) string { return strings.Join(s.Billings, ", ") }},
		{Key: "yearly", Title: "Yearly", Value: func(s models.Subscription) string {
			if s.IsYearly {
				return "Yes"
			}
			return "No"
		}},
		{Key: "actions", Title: "Actions", NoSort: true},
	}
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	cols := subscriptionColumns()
	st := table.FromQuery(c.Request.URL.Query())

	subs, err := h.gw.ListSubscriptions(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusOK, "subscriptions_list.html", gin.H{
			"Errors":      []string{errMessage(err)},
			"Headers":     table.Headers("/subscriptions", cols, st),
			"Pager":       table.NewPager("/subscriptions", st, table.Info{PageSize: st.PageSize}),
			"Query":       st.Query,
			"ColumnCount": len(cols),
		})
		return
	}

	page := table.Apply(subs, cols, st)
	render(c, http.StatusOK, "subscriptions_list.html", gin.H{
		"Subscriptions": page.Rows,
		"Headers":       table.Headers("/subscriptions", cols, st),
		"Pager":         table.NewPager("/subscriptions", st, page.Info),
		"Query":         st.Query,
		"ColumnCount":   len(cols),
	})
}

type subscriptionForm struct {
	Name             string   `form:"subscriptionName"`
	Description      string   `form:"subscriptionDescription"`
	Price            string   `form:"subscriptionPrice"`
	Validity         string   `form:"subscriptionValidity"`
	Access           []string `form:"access"`
	SlotBilling      bool     `form:"slotBilling"`
	MinuteBilling    bool     `form:"minuteBilling"`
	CountdownBilling bool     `form:"countdownBilling"`
	IsYearly         bool     `form:"isYearly"`
}

func (f *subscriptionForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = strings.TrimSpace(f.Price)
	f.Validity = strings.TrimSpace(f.Validity)
}

func (f *subscriptionForm) validate() map[string]string {
	errs := map[string]string{}
	if f.Name == "" {
		errs["subscriptionName"] = msgRequired
	}
	if f.Description == "" {
		errs["subscriptionDescription"] = msgRequired
	}
	if f.Price == "" {
		errs["subscriptionPrice"] = msgRequired
	} else if _, err := strconv.ParseFloat(f.Price, 64); err != nil {
		errs["subscriptionPrice"] = msgNumeric
	}
	if f.Validity == "" {
		errs["subscriptionValidity"] = msgRequired
	} else if _, err := strconv.ParseFloat(f.Validity, 64); err != nil {
		errs["subscriptionValidity"] = msgNumeric
	}
	return errs
}

func (f *subscriptionForm) request() models.SubscriptionRequest {
	price, _ := strconv.ParseFloat(f.Price, 64)
	validity, _ := strconv.ParseFloat(f.Validity, 64)
	access := f.Access
	if access == nil {
		access = []string{}
	}
	return models.SubscriptionRequest{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Validity:    validity,
		Access:      access,
		Billings:    billingSelection(f.SlotBilling, f.MinuteBilling, f.CountdownBilling),
		IsYearly:    f.IsYearly,
	}
}

// billingSelection assembles the billing-mode list in the fixed submission
// order: Slot, Minute, Countdown.
func billingSelection(slot, minute, countdown bool) []string {
	billings := []string{}
	if slot {
		billings = append(billings, models.BillingSlot)
	}
	if minute {
		billings = append(billings, models.BillingMinute)
	}
	if countdown {
		billings = append(billings, models.BillingCountdown)
	}
	return billings
}

func subscriptionFormFrom(sub models.Subscription) subscriptionForm {
	has := func(mode string) bool {
		for _, b := range sub.Billings {
			if b == mode {
				return true
			}
		}
		return false
	}
	return subscriptionForm{
		Name:             sub.Name,
		Description:      sub.Description,
		Price:            formatAmount(float64(sub.Price)),
		Validity:         formatAmount(float64(sub.Validity)),
		Access:           sub.Access,
		SlotBilling:      has(models.BillingSlot),
		MinuteBilling:    has(models.BillingMinute),
		CountdownBilling: has(models.BillingCountdown),
		IsYearly:         sub.IsYearly,
	}
}

func (h *Handler) ShowNewSubscription(c *gin.Context) {
	render(c, http.StatusOK, "subscriptions_new.html", gin.H{
		"Form":        subscriptionForm{},
		"ClientPages": models.ClientPages,
	})
}

func (h *Handler) CreateSubscription(c *gin.Context) {
	var form subscriptionForm
	_ = c.ShouldBind(&form)
	form.trim()

	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		render(c, http.StatusBadRequest, "subscriptions_new.html", gin.H{
			"Form":        form,
			"FieldErrors": fieldErrors,
			"ClientPages": models.ClientPages,
		})
		return
	}

	reqID, err := h.gw.CreateSubscription(c.Request.Context(), middleware.Token(c), form.request())
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusBadGateway, "subscriptions_new.html", gin.H{
			"Form":        form,
			"Errors":      []string{errMessage(err)},
			"ClientPages": models.ClientPages,
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "subscription", "", "create", "Created subscription: "+form.Name, reqID)
	flashSuccess(c, "Subscription created successfully")
	c.Redirect(http.StatusFound, "/subscriptions")
}

func (h *Handler) ShowEditSubscription(c *gin.Context) {
	sub, ok := h.findSubscription(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "subscriptions_edit.html", gin.H{
		"Form":        subscriptionFormFrom(sub),
		"ID":          sub.ID,
		"ClientPages": models.ClientPages,
	})
}

func (h *Handler) UpdateSubscription(c *gin.Context) {
	id := c.Param("id")
	var form subscriptionForm
	_ = c.ShouldBind(&form)
	form.trim()

	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		render(c, http.StatusBadRequest, "subscriptions_edit.html", gin.H{
			"Form":        form,
			"ID":          id,
			"FieldErrors": fieldErrors,
			"ClientPages": models.ClientPages,
		})
		return
	}

	reqID, err := h.gw.UpdateSubscription(c.Request.Context(), middleware.Token(c), id, form.request())
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusBadGateway, "subscriptions_edit.html", gin.H{
			"Form":        form,
			"ID":          id,
			"Errors":      []string{errMessage(err)},
			"ClientPages": models.ClientPages,
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "subscription", id, "update", "Updated subscription: "+form.Name, reqID)
	flashSuccess(c, "Subscription info updated successfully")
	c.Redirect(http.StatusFound, "/subscriptions")
}

func (h *Handler) ShowDeleteSubscription(c *gin.Context) {
	sub, ok := h.findSubscription(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Target":     fmt.Sprintf("subscription (%s)", sub.Name),
		"ConfirmURL": "/subscriptions/" + sub.ID + "/delete",
		"CancelURL":  "/subscriptions",
	})
}

func (h *Handler) DeleteSubscription(c *gin.Context) {
	id := c.Param("id")
	reqID, err := h.gw.DeleteSubscription(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusBadGateway, "confirm_delete.html", gin.H{
			"Target":     "subscription",
			"ConfirmURL": "/subscriptions/" + id + "/delete",
			"CancelURL":  "/subscriptions",
			"Errors":     []string{errMessage(err)},
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "subscription", id, "delete", "Deleted subscription", reqID)
	flashSuccess(c, "Subscription deleted successfully")
	c.Redirect(http.StatusFound, "/subscriptions")
}

// findSubscription resolves :id through the collection; the backend exposes
// no single-subscription endpoint.
func (h *Handler) findSubscription(c *gin.Context) (models.Subscription, bool) {
	id := c.Param("id")
	subs, err := h.gw.ListSubscriptions(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return models.Subscription{}, false
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, "/subscriptions")
		return models.Subscription{}, false
	}
	for _, sub := range subs {
		if sub.ID == id {
			return sub, true
		}
	}
	c.String(http.StatusNotFound, "subscription not found")
	return models.Subscription{}, false
}
