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

const defaultValidDays = 30

func storeColumns() []table.Column[models.Store] {
	return []table.Column[models.Store]{
		{Key: "onboarding", Title: "Registration Date", Value: func(s models.Store) string { return s.Onboarding }},
		{Key: "id", Title: "Store Id", Value: func(s models.Store) string { return s.ID }},
		{Key: "storeName", Title: "Store Name", Value: func(s models.Store) string { return s.StoreName }},
		{Key: "contact", Title: "Contact", Value: func(s models.Store) string { return s.Contact }},
		{Key: "email", Title: "Email", Value: func(s models.Store) string { return s.Email }},
		{Key: "address", Title: "Address", Value: func(s models.Store) string { return s.Address }},
		{Key: "validTill", Title: "Expiring On", Value: func(s models.Store) string { return s.ValidTill }},
		{Key: "actions", Title: "Actions", NoSort: true},
	}
}

func (h *Handler) ListStores(c *gin.Context) {
	cols := storeColumns()
	st := table.FromQuery(c.Request.URL.Query())

	stores, err := h.gw.ListStores(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusOK, "stores_list.html", gin.H{
			"Errors":      []string{errMessage(err)},
			"Headers":     table.Headers("/stores", cols, st),
			"Pager":       table.NewPager("/stores", st, table.Info{PageSize: st.PageSize}),
			"Query":       st.Query,
			"ColumnCount": len(cols),
		})
		return
	}

	page := table.Apply(stores, cols, st)
	render(c, http.StatusOK, "stores_list.html", gin.H{
		"Stores":      page.Rows,
		"Headers":     table.Headers("/stores", cols, st),
		"Pager":       table.NewPager("/stores", st, page.Info),
		"Query":       st.Query,
		"ColumnCount": len(cols),
	})
}

type storeForm struct {
	StoreName      string `form:"storeName"`
	Email          string `form:"email"`
	Contact        string `form:"contact"`
	ValidDays      int    `form:"validDays"`
	Address        string `form:"address"`
	Pincode        string `form:"pincode"`
	City           string `form:"city"`
	State          string `form:"state"`
	SubscriptionID string `form:"subscriptionId"`
}

func (f *storeForm) trim() {
	f.StoreName = strings.TrimSpace(f.StoreName)
	f.Email = strings.TrimSpace(f.Email)
	f.Contact = strings.TrimSpace(f.Contact)
	f.Address = strings.TrimSpace(f.Address)
	f.Pincode = strings.TrimSpace(f.Pincode)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
}

func (f *storeForm) validate() map[string]string {
	errs := map[string]string{}
	if f.StoreName == "" {
		errs["storeName"] = msgRequired
	}
	if !validEmail(f.Email) {
		errs["email"] = msgEmail
	}
	if f.Contact == "" {
		errs["contact"] = msgRequired
	}
	if f.ValidDays <= 0 {
		errs["validDays"] = "Enter a positive number of days"
	}
	if f.Address == "" {
		errs["address"] = msgRequired
	}
	if f.Pincode == "" {
		errs["pincode"] = msgRequired
	}
	if f.City == "" {
		errs["city"] = msgRequired
	}
	if f.State == "" {
		errs["state"] = msgRequired
	}
	return errs
}

// joinedAddress composes the single address the backend stores.
func (f *storeForm) joinedAddress() string {
	return strings.Join([]string{f.Address, f.City, f.State, f.Pincode}, ", ")
}

func (h *Handler) ShowNewStore(c *gin.Context) {
	plans, ok := h.fetchPlanOptions(c, "/stores")
	if !ok {
		return
	}
	render(c, http.StatusOK, "stores_new.html", gin.H{
		"Form":  storeForm{ValidDays: defaultValidDays},
		"Plans": plans,
	})
}

func (h *Handler) CreateStore(c *gin.Context) {
	var form storeForm
	_ = c.ShouldBind(&form)
	form.trim()

	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		plans, ok := h.fetchPlanOptions(c, "/stores")
		if !ok {
			return
		}
		render(c, http.StatusBadRequest, "stores_new.html", gin.H{
			"Form":        form,
			"FieldErrors": fieldErrors,
			"Plans":       plans,
		})
		return
	}

	req := models.NewStoreRequest{
		StoreName:      form.StoreName,
		Email:          form.Email,
		Contact:        form.Contact,
		Address:        form.joinedAddress(),
		ValidDays:      form.ValidDays,
		SubscriptionID: form.SubscriptionID,
	}
	reqID, err := h.gw.CreateStore(c.Request.Context(), middleware.Token(c), req)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		plans, ok := h.fetchPlanOptions(c, "/stores")
		if !ok {
			return
		}
		render(c, http.StatusBadGateway, "stores_new.html", gin.H{
			"Form":   form,
			"Errors": []string{errMessage(err)},
			"Plans":  plans,
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "store", "", "create", "Registered store: "+form.StoreName, reqID)
	flashSuccess(c, "Store added successfully")
	c.Redirect(http.StatusFound, "/stores")
}

// storeFormFrom splits the stored single-line address back into its street,
// city, state and pincode fields when it follows the submission format;
// anything else lands whole in the street field.
func storeFormFrom(store models.Store) storeForm {
	form := storeForm{
		StoreName:      store.StoreName,
		Email:          store.Email,
		Contact:        store.Contact,
		ValidDays:      defaultValidDays,
		Address:        store.Address,
		SubscriptionID: store.Subscription,
	}
	parts := strings.Split(store.Address, ", ")
	if len(parts) >= 4 {
		form.Pincode = parts[len(parts)-1]
		form.State = parts[len(parts)-2]
		form.City = parts[len(parts)-3]
		form.Address = strings.Join(parts[:len(parts)-3], ", ")
	}
	return form
}

func (h *Handler) ShowEditStore(c *gin.Context) {
	store, ok := h.findStore(c)
	if !ok {
		return
	}
	plans, ok := h.fetchPlanOptions(c, "/stores")
	if !ok {
		return
	}
	render(c, http.StatusOK, "stores_edit.html", gin.H{
		"Form":  storeFormFrom(store),
		"ID":    store.ID,
		"Plans": plans,
	})
}

func (h *Handler) UpdateStore(c *gin.Context) {
	id := c.Param("id")
	var form storeForm
	_ = c.ShouldBind(&form)
	form.trim()

	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		plans, ok := h.fetchPlanOptions(c, "/stores")
		if !ok {
			return
		}
		render(c, http.StatusBadRequest, "stores_edit.html", gin.H{
			"Form":        form,
			"ID":          id,
			"FieldErrors": fieldErrors,
			"Plans":       plans,
		})
		return
	}

	req := models.NewStoreRequest{
		StoreName:      form.StoreName,
		Email:          form.Email,
		Contact:        form.Contact,
		Address:        form.joinedAddress(),
		ValidDays:      form.ValidDays,
		SubscriptionID: form.SubscriptionID,
	}
	reqID, err := h.gw.UpdateStore(c.Request.Context(), middleware.Token(c), id, req)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		plans, ok := h.fetchPlanOptions(c, "/stores")
		if !ok {
			return
		}
		render(c, http.StatusBadGateway, "stores_edit.html", gin.H{
			"Form":   form,
			"ID":     id,
			"Errors": []string{errMessage(err)},
			"Plans":  plans,
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "store", id, "update", "Updated store: "+form.StoreName, reqID)
	flashSuccess(c, "Store info updated successfully")
	c.Redirect(http.StatusFound, "/stores")
}

func (h *Handler) ShowDeleteStore(c *gin.Context) {
	store, ok := h.findStore(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Target":     fmt.Sprintf("store (%s)", store.StoreName),
		"ConfirmURL": "/stores/" + store.ID + "/delete",
		"CancelURL":  "/stores",
	})
}

func (h *Handler) DeleteStore(c *gin.Context) {
	id := c.Param("id")
	reqID, err := h.gw.DeleteStore(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusBadGateway, "confirm_delete.html", gin.H{
			"Target":     "store",
			"ConfirmURL": "/stores/" + id + "/delete",
			"CancelURL":  "/stores",
			"Errors":     []string{errMessage(err)},
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "store", id, "delete", "Deleted store", reqID)
	flashSuccess(c, "Store deleted successfully")
	c.Redirect(http.StatusFound, "/stores")
}

// planQuote is the renew-plan price breakdown: flat 18% tax on the plan
// price, net pay shown with two decimals.
type planQuote struct {
	Amount string
	Tax    string
	NetPay string
}

func quoteFor(price float64) planQuote {
	tax := price * 18 / 100
	return planQuote{
		Amount: formatAmount(price),
		Tax:    formatAmount(tax),
		NetPay: strconv.FormatFloat(price+tax, 'f', 2, 64),
	}
}

func (h *Handler) ShowRenewPlan(c *gin.Context) {
	store, ok := h.findStore(c)
	if !ok {
		return
	}
	plans, ok := h.fetchPlanOptions(c, "/stores")
	if !ok {
		return
	}

	selected := c.Query("plan")
	var current *planOption
	for i := range plans {
		if plans[i].ID == selected {
			current = &plans[i]
			break
		}
	}
	if current == nil && len(plans) > 0 {
		current = &plans[0]
	}

	data := gin.H{
		"Store": store,
		"Plans": plans,
	}
	if current != nil {
		data["Selected"] = current.ID
		data["Quote"] = quoteFor(current.Price)
	}
	render(c, http.StatusOK, "stores_renew.html", data)
}

func (h *Handler) RenewPlan(c *gin.Context) {
	storeID := c.Param("id")
	planID := strings.TrimSpace(c.PostForm("subscriptionId"))
	if planID == "" {
		flashError(c, "Choose a plan first")
		c.Redirect(http.StatusFound, "/stores/"+storeID+"/plan")
		return
	}

	req := models.AssignPlanRequest{StoreID: storeID, SubscriptionID: planID}
	reqID, err := h.gw.AssignPlan(c.Request.Context(), middleware.Token(c), req)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, "/stores/"+storeID+"/plan?plan="+planID)
		return
	}

	database.RecordAudit(middleware.Actor(c), "store", storeID, "plan_change", "Assigned plan "+planID, reqID)
	flashSuccess(c, "Plan updated successfully")
	c.Redirect(http.StatusFound, "/stores")
}

// findStore resolves the :id route parameter against the store collection.
// The backend has no single-store endpoint, so this goes through the list.
func (h *Handler) findStore(c *gin.Context) (models.Store, bool) {
	id := c.Param("id")
	stores, err := h.gw.ListStores(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return models.Store{}, false
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, "/stores")
		return models.Store{}, false
	}
	for _, store := range stores {
		if store.ID == id {
			return store, true
		}
	}
	c.String(http.StatusNotFound, "store not found")
	return models.Store{}, false
}

// fetchPlanOptions loads the plan selector; on failure the user is sent back
// to the caller's list page with an error flash, signalled by ok=false.
func (h *Handler) fetchPlanOptions(c *gin.Context, fallback string) ([]planOption, bool) {
	subs, err := h.gw.ListSubscriptions(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return nil, false
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, fallback)
		return nil, false
	}
	return planOptions(subs), true
}
