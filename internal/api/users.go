package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// User is a library member record.
type User struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserType   string `json:"userType"`
	Department string `json:"department,omitempty"`
}

// NewUser is the payload for registering a member.
type NewUser struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	UserType   string  `json:"userType"`
	Department *string `json:"department"`
}

// UserQuery filters and paginates the member list.
type UserQuery struct {
	Page     int
	Limit    int
	UserType string
}

func (q UserQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	v.Set("limit", strconv.Itoa(defaultLimit(q.Limit)))
	if q.UserType != "" {
		v.Set("userType", q.UserType)
	}
	return v
}

// ListUsers fetches a page of members, optionally filtered by user type.
func (c *Client) ListUsers(ctx context.Context, q UserQuery) ([]User, error) {
	env, err := c.do(ctx, http.MethodGet, "/users", q.values(), nil)
	if err != nil {
		return nil, err
	}
	var users []User
	if err := decodeData(env, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserTypes returns the closed set of member types the service accepts.
func (c *Client) UserTypes(ctx context.Context) ([]string, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/types", nil, nil)
	if err != nil {
		return nil, err
	}
	var types []string
	if err := decodeData(env, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// AddUser registers a new member and returns the stored record.
func (c *Client) AddUser(ctx context.Context, user NewUser) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, "/users", nil, user)
	if err != nil {
		return nil, err
	}
	var created User
	if err := decodeData(env, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
