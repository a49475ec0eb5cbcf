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

func deviceColumns() []table.Column[models.Device] {
	status := func(d models.Device) string {
		if d.IsActive {
			return "Active"
		}
		return "Inactive"
	}
	return []table.Column[models.Device]{
		{Key: "onboarding", Title: "Registration Date", Value: func(d models.Device) string { return d.Onboarding }},
		{Key: "deviceId", Title: "Device Id", Value: func(d models.Device) string { return d.DeviceID }},
		{Key: "serialNumber", Title: "Serial Number", Value: func(d models.Device) string { return d.SerialNumber }},
		{Key: "ipAddress", Title: "IP Address", Value: func(d models.Device) string { return d.IPAddress }},
		{Key: "storeId", Title: "Store Id", Value: func(d models.Device) string { return d.StoreID }},
		{Key: "warranty", Title: "Warranty Expiry", Value: func(d models.Device) string { return d.WarrantyExpiryDate }},
		{Key: "status", Title: "Status", Value: status},
		{Key: "actions", Title: "Actions", NoSort: true},
	}
}

func (h *Handler) ListDevices(c *gin.Context) {
	cols := deviceColumns()
	st := table.FromQuery(c.Request.URL.Query())

	devices, err := h.gw.ListDevices(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		render(c, http.StatusOK, "devices_list.html", gin.H{
			"Errors":      []string{errMessage(err)},
			"Headers":     table.Headers("/devices", cols, st),
			"Pager":       table.NewPager("/devices", st, table.Info{PageSize: st.PageSize}),
			"Query":       st.Query,
			"ColumnCount": len(cols),
		})
		return
	}

	page := table.Apply(devices, cols, st)
	render(c, http.StatusOK, "devices_list.html", gin.H{
		"Devices":     page.Rows,
		"Headers":     table.Headers("/devices", cols, st),
		"Pager":       table.NewPager("/devices", st, page.Info),
		"Query":       st.Query,
		"ColumnCount": len(cols),
	})
}

type deviceForm struct {
	DeviceID string `form:"deviceId"`
	StoreID  string `form:"storeId"`
}

func (f *deviceForm) validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.DeviceID) == "" {
		errs["deviceId"] = msgRequired
	}
	if f.StoreID == "" {
		errs["storeId"] = msgRequired
	}
	return errs
}

func (h *Handler) ShowNewDevice(c *gin.Context) {
	stores, ok := h.fetchStoreOptions(c, "/devices")
	if !ok {
		return
	}
	render(c, http.StatusOK, "devices_new.html", gin.H{
		"Form":   deviceForm{},
		"Stores": stores,
	})
}

func (h *Handler) CreateDevice(c *gin.Context) {
	var form deviceForm
	_ = c.ShouldBind(&form)
	form.DeviceID = strings.TrimSpace(form.DeviceID)

	if fieldErrors := form.validate(); len(fieldErrors) > 0 {
		stores, ok := h.fetchStoreOptions(c, "/devices")
		if !ok {
			return
		}
		render(c, http.StatusBadRequest, "devices_new.html", gin.H{
			"Form":        form,
			"FieldErrors": fieldErrors,
			"Stores":      stores,
		})
		return
	}

	req := models.NewDeviceRequest{
		DeviceID:   form.DeviceID,
		StoreID:    form.StoreID,
		DeviceType: models.DefaultDeviceType,
	}
	reqID, err := h.gw.CreateDevice(c.Request.Context(), middleware.Token(c), req)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		stores, ok := h.fetchStoreOptions(c, "/devices")
		if !ok {
			return
		}
		render(c, http.StatusBadGateway, "devices_new.html", gin.H{
			"Form":   form,
			"Errors": []string{errMessage(err)},
			"Stores": stores,
		})
		return
	}

	database.RecordAudit(middleware.Actor(c), "device", "", "create", "Added device "+form.DeviceID, reqID)
	flashSuccess(c, "Device added successfully")
	c.Redirect(http.StatusFound, "/devices")
}

// SetDeviceStatus flips a device between active and inactive. This is a
// direct row action: no confirmation step, and devices are never deleted.
func (h *Handler) SetDeviceStatus(c *gin.Context) {
	id := c.Param("id")
	active := c.PostForm("active") == "true"

	reqID, err := h.gw.SetDeviceStatus(c.Request.Context(), middleware.Token(c), id, active)
	if err != nil {
		if h.redirectAuth(c, err) {
			return
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, "/devices")
		return
	}

	action := "deactivate"
	if active {
		action = "activate"
	}
	database.RecordAudit(middleware.Actor(c), "device", id, "status_change", "Device "+action+"d", reqID)
	c.Redirect(http.StatusFound, "/devices")
}

// storeOption is one entry of a store selector; the first store returned by
// the backend is the default selection.
type storeOption struct {
	ID   string
	Name string
}

func (h *Handler) fetchStoreOptions(c *gin.Context, fallback string) ([]storeOption, bool) {
	stores, err := h.gw.ListStores(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if h.redirectAuth(c, err) {
			return nil, false
		}
		flashError(c, errMessage(err))
		c.Redirect(http.StatusFound, fallback)
		return nil, false
	}
	options := make([]storeOption, 0, len(stores))
	for _, store := range stores {
		options = append(options, storeOption{ID: store.ID, Name: store.StoreName})
	}
	return options, true
}
