package critiqapi

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/pkg/errors"
)

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p RegisterParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 0)),
	)
}

// Register creates a new account and logs it in, in one go
func (c *Client) Register(params RegisterParams) (*AuthResponse, error) {
	r := &AuthResponse{}

	err := c.postJSON(c.MakePath("auth/register"), &params, r, "Registration failed")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p LoginParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(params LoginParams) (*AuthResponse, error) {
	r := &AuthResponse{}

	err := c.postJSON(c.MakePath("auth/login"), &params, r, "Login failed")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// Logout tells the server to invalidate our bearer token.
// Local session teardown never depends on this succeeding.
func (c *Client) Logout() error {
	err := c.RequestResponse("POST", c.MakePath("auth/logout"), nil, "", nil, "Logout failed")
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) postJSON(url string, params interface{}, dst interface{}, fallback string) error {
	body, err := json.Marshal(params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.RequestResponse("POST", url, bytes.NewReader(body), "application/json", dst, fallback)
}
