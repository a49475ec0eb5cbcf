package models

// Store is the backend's store record. Field names follow the wire contract;
// the string _id is the authoritative key.
type Store struct {
	ID           string `json:"_id"`
	StoreName    string `json:"storeName"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Onboarding   string `json:"onboarding"` // registration date, ISO 8601
	ValidTill    string `json:"validTill"`
	Subscription string `json:"subscription,omitempty"`
}

// NewStoreRequest is the POST /store payload. Address arrives already joined
// as "street, city, state, pincode".
type NewStoreRequest struct {
	StoreName      string `json:"storeName"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	Address        string `json:"address"`
	ValidDays      int    `json:"valid_days"`
	SubscriptionID string `json:"subscriptionId"`
}

// AssignPlanRequest is the POST /storeSubscription payload.
type AssignPlanRequest struct {
	StoreID        string `json:"storeId"`
	SubscriptionID string `json:"subscriptionId"`
}
