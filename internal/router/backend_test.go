package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/washboard/internal/api"
	"github.com/wellywell/washboard/internal/handlers"
	"github.com/wellywell/washboard/internal/session"
)

const (
	adminPassword = "secret1"
	adminToken    = "tok-admin"
)

type backendCall struct {
	method string
	path   string
	body   map[string]any
}

// fakeBackend plays the laundry REST API.
type fakeBackend struct {
	mu      sync.Mutex
	expired bool
	orders  []map[string]any
	calls   []backendCall
}

func newFakeBackend() *fakeBackend {
	today := time.Now().UTC().Format(time.RFC3339)
	return &fakeBackend{
		orders: []map[string]any{
			{"id": 1, "bagNo": "B-001", "studentName": "Asha Rao", "numberOfClothes": 4, "status": "pending", "createdAt": today},
			{"id": 2, "bagNo": "G-002", "studentName": "Meera Nair", "noOfClothes": 7, "status": "inprogress", "createdAt": today},
			{"id": 3, "bagNo": "B-003", "studentName": "Rohit Das", "numberOfClothes": 2, "status": "complete", "createdAt": "2023-01-05T10:00:00Z"},
		},
	}
}

func (b *fakeBackend) setExpired(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = v
}

func (b *fakeBackend) callsTo(method, path string) []backendCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []backendCall
	for _, c := range b.calls {
		if c.method == method && c.path == path {
			out = append(out, c)
		}
	}
	return out
}

func reply(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func (b *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := backendCall{method: r.Method, path: r.URL.Path}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &call.body)
		}
		b.mu.Lock()
		b.calls = append(b.calls, call)
		b.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) authorized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		expired := b.expired
		b.mu.Unlock()
		if expired || r.Header.Get("Authorization") != "Bearer "+adminToken {
			reply(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Token expired"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) handler() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)

	r.Post("/auth/washerman/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != adminPassword {
			reply(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		reply(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"username": body.Username, "name": "Admin", "token": adminToken},
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(b.authorized)

		r.Get("/orders/all", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			reply(w, http.StatusOK, map[string]any{"success": true, "data": b.orders})
		})
		r.Get("/orders/pending", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			var pending []map[string]any
			for _, o := range b.orders {
				if o["status"] == "pending" {
					pending = append(pending, o)
				}
			}
			reply(w, http.StatusOK, map[string]any{"success": true, "data": pending})
		})
		r.Get("/admin/students", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, map[string]any{"success": true, "data": []map[string]any{
				{"bagNo": "B-001", "name": "Asha Rao", "email": "asha@campus.edu"},
				{"bagNo": "G-002", "name": "Meera Nair", "email": "meera@campus.edu"},
			}})
		})
		r.Get("/admin/washermen", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, map[string]any{"success": true, "data": []map[string]any{{"id": 1, "username": "ravi"}}})
		})
		r.Post("/orders/create", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			body["id"] = 10
			body["status"] = "pending"
			reply(w, http.StatusCreated, map[string]any{"success": true, "data": body})
		})
		r.Put("/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			id, _ := strconv.Atoi(chi.URLParam(r, "id"))
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			reply(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": id, "status": body["status"]}})
		})
		r.Put("/admin/washermen/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, _ := strconv.Atoi(chi.URLParam(r, "id"))
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			reply(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": id, "username": body["username"]}})
		})
		r.Delete("/admin/students/{bagNo}", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusNotFound, map[string]any{"success": false, "error": fmt.Sprintf("Student %s not found", chi.URLParam(r, "bagNo"))})
		})
	})
	return r
}

// newTestServer wires the dashboard against a fake backend and returns a
// cookie-keeping client pointed at it.
func newTestServer(t *testing.T, store session.Store) (*resty.Client, *fakeBackend) {
	t.Helper()

	backend := newFakeBackend()
	backendSrv := httptest.NewServer(backend.handler())
	t.Cleanup(backendSrv.Close)

	client := api.NewClient(backendSrv.URL, 2*time.Second)
	manager := session.NewManager(store, []byte("test-secret"), time.Hour)
	r := NewRouter("", handlers.NewHandlerSet(client), manager)

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL), backend
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, resp *resty.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body(), &env), string(resp.Body()))
	return env
}

func login(t *testing.T, c *resty.Client) {
	t.Helper()
	resp, err := c.R().SetBody(map[string]string{"username": "admin", "password": adminPassword}).Post("/api/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), string(resp.Body()))
}
