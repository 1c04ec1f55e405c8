package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	require.NoError(t, client.Get(context.Background(), "/api/cart", staticToken("tok-123"), nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_AnonymousSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	require.NoError(t, client.Get(context.Background(), "/api/restaurants", Anonymous, nil))

	assert.Empty(t, gotAuth)
	assert.False(t, hasHeader)
}

func TestClient_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"_id":"l1","menuItem":{"_id":"m1","name":"Biryani","price":30},"quantity":2}],"deliveryFee":5,"serviceFee":2}`))
	}))
	defer server.Close()

	var out struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
		DeliveryFee float64 `json:"deliveryFee"`
	}
	client := NewClient(server.URL, time.Second)
	require.NoError(t, client.Get(context.Background(), "/api/cart", Anonymous, &out))

	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.Equal(t, 5.0, out.DeliveryFee)
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		class  error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"token expired"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"error":"admins only"}`, ErrUnauthorized},
		{"not found", http.StatusNotFound, `{"error":"no such restaurant"}`, ErrNotFound},
		{"validation", http.StatusBadRequest, `{"errors":[{"field":"email","message":"Invalid email address"}]}`, ErrValidation},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, ErrUpstream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			err := client.Get(context.Background(), "/x", Anonymous, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.class)
		})
	}
}

func TestClient_ValidationFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"field":"email","message":"Invalid email address"},{"field":"password","message":"Password must be at least 6 characters"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Post(context.Background(), "/api/auth/register", Anonymous, map[string]string{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]string{
		"email":    "Invalid email address",
		"password": "Password must be at least 6 characters",
	}, apiErr.FieldMessages())
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, time.Second)
	err := client.Get(context.Background(), "/api/cart", Anonymous, nil)

	assert.ErrorIs(t, err, ErrTransport)
}
