package api

import (
	"context"

	"github.com/jagamangrove/jagamangrove/internal/client/localstore"
	"github.com/jagamangrove/jagamangrove/internal/domain/users"
)

// Login tukar kredensial dengan token lalu simpan token & role di store
func (c *Client) Login(ctx context.Context, username, password string) (users.User, error) {
	var out struct {
		Token string     `json:"token"`
		User  users.User `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.doJSON(ctx, "POST", "/login", body, &out); err != nil {
		return users.User{}, err
	}
	if err := c.Store.Set(localstore.KeyToken, out.Token); err != nil {
		return users.User{}, err
	}
	if err := c.Store.Set(localstore.KeyRole, string(out.User.Role)); err != nil {
		return users.User{}, err
	}
	if err := c.Store.Set(localstore.KeyUserID, string(out.User.ID)); err != nil {
		return users.User{}, err
	}
	return out.User, nil
}

func (c *Client) Register(ctx context.Context, username, password, namaLengkap, role string) (users.User, error) {
	var out users.User
	body := map[string]string{
		"username":     username,
		"password":     password,
		"nama_lengkap": namaLengkap,
		"role":         role,
	}
	if err := c.doJSON(ctx, "POST", "/register", body, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context) (users.User, error) {
	var out users.User
	if err := c.doJSON(ctx, "GET", "/profile", nil, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

// Logout bersihkan seluruh state lokal, termasuk nama tamu
func (c *Client) Logout() error {
	return c.Store.Clear()
}

// Role role tersimpan, "" untuk pengunjung anonim (masyarakat)
func (c *Client) Role() string {
	return c.Store.Get(localstore.KeyRole)
}

// SudahLogin true bila ada token tersimpan
func (c *Client) SudahLogin() bool {
	return c.token() != ""
}
