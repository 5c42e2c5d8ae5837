package admin

import (
	"context"
	"net/http"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

// Login exchanges credentials for a token and signs the session in.
func (c *Client) Login(ctx context.Context, login, password string) error {
	var out apicontract.LoginResponse
	err := c.callJSON(ctx, http.MethodPost, loginEndpoint, apicontract.LoginRequest{Login: login, Password: password}, &out)
	if err != nil {
		return err
	}
	c.auth.SignIn(out.AccessToken)
	return nil
}

func (c *Client) Categories(ctx context.Context) ([]apicontract.Category, error) {
	var out []apicontract.Category
	if err := c.callJSON(ctx, http.MethodGet, "admin/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in apicontract.CategoryInput) (*apicontract.CreatedCategory, error) {
	var out apicontract.CreatedCategory
	if err := c.callJSON(ctx, http.MethodPost, "admin/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID string, patch apicontract.CategoryPatch) error {
	var out apicontract.IDResponse
	return c.callJSON(ctx, http.MethodPut, endpoint("admin/categories", categoryID), patch, &out)
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/categories", categoryID), nil, &out)
}

func (c *Client) Settings(ctx context.Context) (*apicontract.Settings, error) {
	var out apicontract.Settings
	if err := c.callJSON(ctx, http.MethodGet, "admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSettings(ctx context.Context, patch apicontract.SettingsPatch) (*apicontract.Settings, error) {
	var out apicontract.Settings
	if err := c.callJSON(ctx, http.MethodPut, "admin/settings", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadBackground(ctx context.Context, f File) (*apicontract.UploadedFile, error) {
	return c.upload(ctx, "admin/settings/background-image", f, nil)
}

func (c *Client) DeleteBackground(ctx context.Context) error {
	var out apicontract.DeletedFlag
	return c.callJSON(ctx, http.MethodDelete, "admin/settings/background-image", nil, &out)
}
