package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"store-console/internal/database"
	"store-console/internal/middleware"
	"store-console/internal/models"
	"store-console/internal/table"
)

func clientColumns() []table.Column[models.Client] {
	return []table.Column[models.Client]{
		{Key: "fullName", Title: "Full Name", Value: func(cl models.Client) string { return cl.FullName }},
		{Key: "mobile", Title: "Mobile", Value: func(cl models.Client) string { return cl.Mobile }},
		{Key: "email", Title: "Email", Value: func(cl models.Client) string { return cl.Email }},
		{Key: "designation", Title: "Designation", Value: func(cl models.Client) string { return cl.UserDesignation }},
		{Key: "onboarding", Title: "Registration Date", Value: func(cl models.Client) string { return cl.OnBoardingDate }},
		{Key: "actions", Title: "Actions", NoSort: true},
	}
}

func (h *Handler) ListClients(c *gin.Context) {
	cols := clientColumns()
	st := table.FromQuery(c.Request.URL.Query())

	clients, err := h.gw.ListClients(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusOK, "clients_list.html", gin.H{
			"Errors":      []string{errMessage(err)},
			"Headers":     table.Headers("/clients", cols, st),
			"Pager":       table.NewPager("/clients", st, table.Info{PageSize: st.PageSize}),
			"Query":       st.Query,
			"ColumnCount": len(cols),
		})
		return
	}

	page := table.Apply(clients, cols, st)
	render(c, http.StatusOK, "clients_list.html", gin.H{
		"Clients":     page.Rows,
		"Headers":     table.Headers("/clients", cols, st),
		"Pager":       table.NewPager("/clients", st, page.Info),
		"Query":       st.Query,
		"ColumnCount": len(cols),
	})
}

type clientForm struct {
	FullName        string `form:"fullName"`
	Mobile          string `form:"mobile"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	StoreID         string `form:"storeId"`
}

func (f *clientForm) trim() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Mobile = strings.TrimSpace(f.Mobile)
	f.Email = strings.TrimSpace(f.Email)
}

// validate checks the shared fields plus the password rules. On registration
// a password is mandatory; on edit a blank password means "keep the current
// one" and the confirmation is only demanded when a new password was typed.
func (f *clientForm) validate(passwordRequired bool) map[string]string {
	errs := map[string]string{}
	if f.FullName == "" {
		errs["fullName"] = msgRequired
	}
	if !validMobile(f.Mobile) {
		errs["mobile"] = msgMobile
	}
	if !validEmail(f.Email) {
		errs["email"] = msgEmail
	}

	switch {
	case f.Password == "" && passwordRequired:
		errs["password"] = msgRequired
	case f.Password != "":
		if len(f.Password) < 8 {
			errs["password"] = msgPasswordShort
		}
		if f.ConfirmPassword == "" {
			errs["confirmPassword"] = msgRequired
		} else if f.ConfirmPassword != f.Password {
			errs["confirmPassword"] = msgPasswordMatch
		}
	}
	return errs
}

func (h *Handler) ShowNewClient(c *gin.Context) {
	stores, ok := h.fetchStoreOptions(c, "/clients")
	if !ok {
		return
	}
	render(c, http.StatusOK, "clients_new.html", gin.H{
		"Form":   clientForm{},
		"Stores": stores,
	})
}

func (h *Handler) CreateClient(c *gin.Context) {
	var form clientForm
	_ = c.ShouldBind(&form)
	form.trim()

	if fieldErrors := form.validate(true); len(fieldErrors) > 0 {
		stores, ok := h.fetchStoreOptions(c, "/clients")
		if !ok {
			return
		}
		render(c, http.StatusBadRequest, "clients_new.html", gin.H{
			"Form":        form,
			"FieldErrors": fieldErrors,
			"Stores":      stores,
		})
		return
	}

	req := models.RegisterClientRequest{
		FullName:        form.FullName,
		Mobile:          form.Mobile,
		Email:           form.Email,
		Password:        form.Password,
		StoreID:         form.StoreID,
		UserDesignation: models.DefaultDesignation,
		ProfileImage:    models.DefaultProfileImage,
	}
	reqID, err := h.gw.RegisterClient(c.Request.Context(), middleware.Token(c), req)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		stores, ok := h.fetchStoreOptions(c, "/clients")
		if !ok {
			return
		}
		render(c, http.StatusBadGateway, "clients_new.html", gin.H{
			"Form":   form,
			"Errors": []string{errMessage(err)},
			"Stores": stores,
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "client", "", "create", "Registered client: "+form.Email, reqID)
	flashSuccess(c, "Client added successfully")
	c.Redirect(http.StatusFound, "/clients")
}

func (h *Handler) ShowEditClient(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "clients_edit.html", gin.H{
		"Form": clientForm{
			FullName: client.FullName,
			Mobile:   client.Mobile,
			Email:    client.Email,
		},
		"ID": client.ID,
	})
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id := c.Param("id")
	var form clientForm
	_ = c.ShouldBind(&form)
	form.trim()

	if fieldErrors := form.validate(false); len(fieldErrors) > 0 {
		render(c, http.StatusBadRequest, "clients_edit.html", gin.H{
			"Form":        form,
			"ID":          id,
			"FieldErrors": fieldErrors,
		})
		return
	}

	// A blank password stays out of the payload so the stored credential
	// survives the edit.
	req := models.UpdateClientRequest{
		FullName:        form.FullName,
		Mobile:          form.Mobile,
		Email:           form.Email,
		Password:        form.Password,
		UserDesignation: models.DefaultDesignation,
		ProfileImage:    models.DefaultProfileImage,
	}
	reqID, err := h.gw.UpdateClient(c.Request.Context(), middleware.Token(c), id, req)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusBadGateway, "clients_edit.html", gin.H{
			"Form":   form,
			"ID":     id,
			"Errors": []string{errMessage(err)},
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "client", id, "update", "Updated client: "+form.Email, reqID)
	flashSuccess(c, "Client info updated successfully")
	c.Redirect(http.StatusFound, "/clients")
}

func (h *Handler) findClient(c *gin.Context) (models.Client, bool) {
	id := c.Param("id")
	clients, err := h.gw.ListClients(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return models.Client{}, false
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, "/clients")
		return models.Client{}, false
	}
	for _, client := range clients {
		if client.ID == id {
			return client, true
		}
	}
	c.String(http.StatusNotFound, "client not found")
	return models.Client{}, false
}
