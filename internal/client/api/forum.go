package api

import (
	"context"

	"github.com/jagamangrove/jagamangrove/internal/client/localstore"
	"github.com/jagamangrove/jagamangrove/internal/domain/forum"
)

func (c *Client) ListForum(ctx context.Context) ([]forum.Pesan, error) {
	var out []forum.Pesan
	if err := c.doJSON(ctx, "GET", "/forum", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// KirimForum kirim pesan. Tanpa token, nama tamu diambil dari
// store dan dikirim sebagai guest_name.
func (c *Client) KirimForum(ctx context.Context, isi string) (forum.Pesan, error) {
	body := map[string]string{"isi": isi}
	if !c.SudahLogin() {
		body["guest_name"] = c.Store.Get(localstore.KeyGuestName)
	}
	var out forum.Pesan
	if err := c.doJSON(ctx, "POST", "/forum", body, &out); err != nil {
		return forum.Pesan{}, err
	}
	return out, nil
}

// SetGuestName simpan nama tamu untuk pesan forum anonim
func (c *Client) SetGuestName(nama string) error {
	return c.Store.Set(localstore.KeyGuestName, nama)
}

func (c *Client) HapusForum(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/forum/"+id, nil, nil)
}
