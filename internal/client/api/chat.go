package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/jagamangrove/jagamangrove/internal/client/localstore"
)

// Chat tanya jawab dengan asisten mangrove. Server membalas 200
// dengan status "error" bila AI gagal, jadi status dicek di sini.
func (c *Client) Chat(ctx context.Context, pertanyaan string) (string, error) {
	body := map[string]string{
		"user_id":    c.userID(),
		"pertanyaan": pertanyaan,
	}
	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Jawaban string `json:"jawaban"`
		} `json:"data"`
	}
	if err := c.doJSON(ctx, "POST", "/chat", body, &out); err != nil {
		return "", err
	}
	if out.Status != "success" {
		msg := out.Message
		if msg == "" {
			msg = "asisten sedang tidak bisa menjawab"
		}
		return "", &DomainError{Message: msg}
	}
	return out.Data.Jawaban, nil
}

// userID id pengguna login, atau id tamu yang dibuat sekali dan
// disimpan supaya percakapan tamu tetap satu identitas
func (c *Client) userID() string {
	if id := c.Store.Get(localstore.KeyUserID); id != "" {
		return id
	}
	id := "tamu-" + uuid.NewString()
	// gagal simpan tidak fatal, id tetap dipakai untuk request ini
	_ = c.Store.Set(localstore.KeyUserID, id)
	return id
}
