package models

// Defaults injected into client payloads; the forms never expose them.
const (
	DefaultDesignation  = "Admin"
	DefaultProfileImage = "-"
)

// Client is an admin account on the backend.
type Client struct {
	ID              string `json:"_id"`
	FullName        string `json:"fullName"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	UserStatus      bool   `json:"userStatus"`
	OnBoardingDate  string `json:"onBoardingDate,omitempty"`
	ProfileImage    string `json:"profileImage,omitempty"`
	UserDesignation string `json:"userDesignation"`
}

type RegisterClientRequest struct {
	FullName        string `json:"fullName"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	StoreID         string `json:"storeId"`
	UserDesignation string `json:"userDesignation"`
	ProfileImage    string `json:"profileImage"`
}

// UpdateClientRequest PATCHes an account. A blank password is omitted from
// the payload entirely so the stored credential is never overwritten.
type UpdateClientRequest struct {
	FullName        string `json:"fullName"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	Password        string `json:"password,omitempty"`
	UserDesignation string `json:"userDesignation"`
	ProfileImage    string `json:"profileImage"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
