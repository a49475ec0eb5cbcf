package gateway

import (
	"context"

	"store-console/internal/models"
)

// Typed wrappers over the backend surface. Paths are kept verbatim from the
// backend contract, trailing slashes included.

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	_, err := c.Post(ctx, "", "/user/login", req, &resp)
	return resp, err
}

func (c *Client) ListStores(ctx context.Context, token string) ([]models.Store, error) {
	var stores []models.Store
	err := c.Get(ctx, token, "/store/", &stores)
	return stores, err
}

func (c *Client) CreateStore(ctx context.Context, token string, req models.NewStoreRequest) (string, error) {
	return c.Post(ctx, token, "/store", req, nil)
}

func (c *Client) UpdateStore(ctx context.Context, token, id string, req models.NewStoreRequest) (string, error) {
	return c.Patch(ctx, token, "/store/"+id, req, nil)
}

func (c *Client) DeleteStore(ctx context.Context, token, id string) (string, error) {
	return c.Delete(ctx, token, "/store/"+id)
}

func (c *Client) AssignPlan(ctx context.Context, token string, req models.AssignPlanRequest) (string, error) {
	return c.Post(ctx, token, "/storeSubscription", req, nil)
}

func (c *Client) ListDevices(ctx context.Context, token string) ([]models.Device, error) {
	var devices []models.Device
	err := c.Get(ctx, token, "/devices/", &devices)
	return devices, err
}

func (c *Client) CreateDevice(ctx context.Context, token string, req models.NewDeviceRequest) (string, error) {
	return c.Post(ctx, token, "/devices", req, nil)
}

func (c *Client) SetDeviceStatus(ctx context.Context, token, id string, active bool) (string, error) {
	return c.Patch(ctx, token, "/devices/"+id, models.DeviceStatusRequest{IsActive: active}, nil)
}

func (c *Client) ListSubscriptions(ctx context.Context, token string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := c.Get(ctx, token, "/subscription", &subs)
	return subs, err
}

func (c *Client) CreateSubscription(ctx context.Context, token string, req models.SubscriptionRequest) (string, error) {
	return c.Post(ctx, token, "/subscription/", req, nil)
}

func (c *Client) UpdateSubscription(ctx context.Context, token, id string, req models.SubscriptionRequest) (string, error) {
	return c.Patch(ctx, token, "/subscription/"+id, req, nil)
}

func (c *Client) DeleteSubscription(ctx context.Context, token, id string) (string, error) {
	return c.Delete(ctx, token, "/subscription/"+id)
}

func (c *Client) ListClients(ctx context.Context, token string) ([]models.Client, error) {
	var clients []models.Client
	err := c.Get(ctx, token, "/user/", &clients)
	return clients, err
}

func (c *Client) RegisterClient(ctx context.Context, token string, req models.RegisterClientRequest) (string, error) {
	return c.Post(ctx, token, "/user/register", req, nil)
}

func (c *Client) UpdateClient(ctx context.Context, token, id string, req models.UpdateClientRequest) (string, error) {
	return c.Patch(ctx, token, "/user/"+id, req, nil)
}
