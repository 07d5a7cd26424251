package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jagamangrove/jagamangrove/internal/client/localstore"
)

// ErrKoneksi ditampilkan apa adanya ke pengguna ketika request
// tidak sampai ke server sama sekali
var ErrKoneksi = errors.New("periksa koneksi internet Anda")

// HTTPError respons non-2xx dari server, pesannya diambil dari
// body JSON {"message": ...} bila ada
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("permintaan gagal (%d)", e.Status)
}

// DomainError respons 2xx tetapi server menolak operasinya
// (success:false atau status:"error")
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Client klien REST untuk backend JagaMangrove. Semua method
// menerima context supaya layar bisa membatalkan request.
type Client struct {
	BaseURL   string
	ImageBase string
	HTTP      *http.Client
	Store     localstore.Store
}

func NewClient(baseURL, imageBase string, store localstore.Store) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ImageBase: strings.TrimRight(imageBase, "/"),
		HTTP:      &http.Client{Timeout: 90 * time.Second},
		Store:     store,
	}
}

// FotoURL URL absolut untuk path foto relatif dari server
func (c *Client) FotoURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.ImageBase + "/storage/" + strings.TrimLeft(path, "/")
}

func (c *Client) token() string {
	if c.Store == nil {
		return ""
	}
	return c.Store.Get(localstore.KeyToken)
}

// doJSON kirim request JSON dan decode respons ke out (boleh nil)
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart kirim form multipart, fields teks dulu baru file
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		// gagal sebelum sampai server: pesan generik untuk pengguna
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Message: pesanDariBody(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("respons server tidak dimengerti: %w", err)
	}
	return nil
}

// pesanDariBody ambil "message" dari body error, kosong bila bukan JSON
func pesanDariBody(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Message
}
