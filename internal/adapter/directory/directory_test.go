package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/customers/c-personal", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c-personal","documentNumber":"12345678","type":"PERSONAL","profile":"VIP","firstName":"Ana","lastName":"Diaz"}`))
	})
	mux.HandleFunc("/customers/c-business", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"c-business","type":"BUSINESS","profile":"PYME","businessName":"Acme SAC"}`))
	})
	mux.HandleFunc("/customers/c-broken", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	mux.HandleFunc("/credit-cards/customer/c-personal/exists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`true`))
	})
	mux.HandleFunc("/credit-cards/customer/c-business/exists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`false`))
	})
	mux.HandleFunc("/credit-cards/customer/c-down/exists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T) *Client {
	srv := newDirectoryServer(t)
	return NewClient(srv.URL+"/", srv.URL, srv.Client(), zerolog.Nop())
}

func TestClient_GetCustomerDetails(t *testing.T) {
	c := newTestClient(t)

	cust, ok := c.GetCustomerDetails(context.Background(), "c-personal")
	require.True(t, ok)
	assert.Equal(t, domain.CustomerTypePersonal, cust.Type)
	assert.Equal(t, domain.ProfileVIP, cust.Profile)
	assert.Equal(t, "12345678", cust.DocumentNumber)
	assert.Equal(t, "Ana Diaz", cust.Name)

	cust, ok = c.GetCustomerDetails(context.Background(), "c-business")
	require.True(t, ok)
	assert.Equal(t, "Acme SAC", cust.Name)
}

func TestClient_FailuresReadAsAbsent(t *testing.T) {
	c := newTestClient(t)

	_, ok := c.GetCustomerDetails(context.Background(), "unknown")
	assert.False(t, ok, "404 is absent")

	_, ok = c.GetCustomerDetails(context.Background(), "c-broken")
	assert.False(t, ok, "undecodable body is absent")

	assert.True(t, c.CustomerExists(context.Background(), "c-personal"))
	assert.False(t, c.CustomerExists(context.Background(), "unknown"))
}

func TestClient_HasCreditCard(t *testing.T) {
	c := newTestClient(t)

	assert.True(t, c.HasCreditCard(context.Background(), "c-personal"))
	assert.False(t, c.HasCreditCard(context.Background(), "c-business"))
	assert.False(t, c.HasCreditCard(context.Background(), "c-down"))
}

type failingHTTP struct{}

func (failingHTTP) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_TransportErrorIsSwallowed(t *testing.T) {
	c := NewClient("http://directory.invalid", "http://cards.invalid", failingHTTP{}, zerolog.Nop())

	_, ok := c.GetCustomerDetails(context.Background(), "c1")
	assert.False(t, ok)
	assert.False(t, c.HasCreditCard(context.Background(), "c1"))
}

func TestCachedDirectory_HitSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCustomerDirectory(ctrl)
	cache := mocks.NewMockCustomerCache(ctrl)

	cust := &domain.Customer{ID: "c1", Type: domain.CustomerTypePersonal}
	cache.EXPECT().Get(gomock.Any(), "c1").Return(cust, nil)

	d := NewCachedDirectory(next, cache, time.Minute, zerolog.Nop())
	got, ok := d.GetCustomerDetails(context.Background(), "c1")
	require.True(t, ok)
	assert.Same(t, cust, got)
}

func TestCachedDirectory_MissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCustomerDirectory(ctrl)
	cache := mocks.NewMockCustomerCache(ctrl)

	cust := &domain.Customer{ID: "c1"}
	cache.EXPECT().Get(gomock.Any(), "c1").Return(nil, nil)
	next.EXPECT().GetCustomerDetails(gomock.Any(), "c1").Return(cust, true)
	cache.EXPECT().Set(gomock.Any(), cust, 5*time.Minute).Return(nil)

	d := NewCachedDirectory(next, cache, 5*time.Minute, zerolog.Nop())
	assert.True(t, d.CustomerExists(context.Background(), "c1"))
}

func TestCachedDirectory_CacheErrorsFallThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCustomerDirectory(ctrl)
	cache := mocks.NewMockCustomerCache(ctrl)

	cust := &domain.Customer{ID: "c1"}
	cache.EXPECT().Get(gomock.Any(), "c1").Return(nil, errors.New("redis down"))
	next.EXPECT().GetCustomerDetails(gomock.Any(), "c1").Return(cust, true)
	cache.EXPECT().Set(gomock.Any(), cust, time.Minute).Return(errors.New("redis down"))

	d := NewCachedDirectory(next, cache, time.Minute, zerolog.Nop())
	got, ok := d.GetCustomerDetails(context.Background(), "c1")
	require.True(t, ok)
	assert.Equal(t, "c1", got.ID)
}

func TestCachedDirectory_AbsentIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCustomerDirectory(ctrl)
	cache := mocks.NewMockCustomerCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "ghost").Return(nil, nil)
	next.EXPECT().GetCustomerDetails(gomock.Any(), "ghost").Return(nil, false)

	d := NewCachedDirectory(next, cache, time.Minute, zerolog.Nop())
	_, ok := d.GetCustomerDetails(context.Background(), "ghost")
	assert.False(t, ok)
}

func TestCachedDirectory_CreditCardIsLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCustomerDirectory(ctrl)
	cache := mocks.NewMockCustomerCache(ctrl)

	next.EXPECT().HasCreditCard(gomock.Any(), "c1").Return(true).Times(2)

	d := NewCachedDirectory(next, cache, time.Minute, zerolog.Nop())
	assert.True(t, d.HasCreditCard(context.Background(), "c1"))
	assert.True(t, d.HasCreditCard(context.Background(), "c1"))
}
