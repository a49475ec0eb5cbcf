package models

// DefaultDeviceType is injected on device creation and never shown to the user.
const DefaultDeviceType = "8node"

type Device struct {
	ID                   string   `json:"_id"`
	DeviceID             string   `json:"deviceId"`
	SerialNumber         string   `json:"serialNumber,omitempty"`
	IPAddress            string   `json:"ipAddress,omitempty"`
	StoreID              string   `json:"storeId"`
	Onboarding           string   `json:"onboarding,omitempty"`
	WarrantyExpiryDate   string   `json:"warrantyExpiryDate,omitempty"`
	WarrantyAvailingDate []string `json:"warrantyAvailingDate,omitempty"`
	IsActive             bool     `json:"isActive"`
}

type NewDeviceRequest struct {
	DeviceID   string `json:"deviceId"`
	StoreID    string `json:"storeId"`
	DeviceType string `json:"deviceType"`
}

// DeviceStatusRequest is the PATCH /devices/{id} payload for the
// activate/deactivate row action.
type DeviceStatusRequest struct {
	IsActive bool `json:"isActive"`
}
