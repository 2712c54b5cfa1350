// Package directory talks to the external customer and credit-card services.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bank-account-service/internal/core/domain"
	"bank-account-service/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	kindCustomer   = "customer"
	kindCreditCard = "credit_card"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// customerPayload is the customer service's JSON shape.
type customerPayload struct {
	ID             string                 `json:"id"`
	DocumentNumber string                 `json:"documentNumber"`
	Type           domain.CustomerType    `json:"type"`
	Profile        domain.CustomerProfile `json:"profile"`
	FirstName      string                 `json:"firstName"`
	LastName       string                 `json:"lastName"`
	BusinessName   string                 `json:"businessName"`
}

func (p customerPayload) toDomain() *domain.Customer {
	name := p.BusinessName
	if name == "" {
		name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	return &domain.Customer{
		ID:             p.ID,
		DocumentNumber: p.DocumentNumber,
		Type:           p.Type,
		Profile:        p.Profile,
		Name:           name,
	}
}

// Client implements ports.CustomerDirectory over HTTP. Every failure is
// logged and read as "absent" or false; callers never see transport errors.
type Client struct {
	customerURL   string
	creditCardURL string
	http          HTTPClient
	log           zerolog.Logger
}

// NewClient creates a directory client. Base URLs must not carry a trailing path.
func NewClient(customerURL, creditCardURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		customerURL:   strings.TrimRight(customerURL, "/"),
		creditCardURL: strings.TrimRight(creditCardURL, "/"),
		http:          httpClient,
		log:           log,
	}
}

// CustomerExists reports whether the customer service knows the id.
func (c *Client) CustomerExists(ctx context.Context, customerID string) bool {
	_, ok := c.GetCustomerDetails(ctx, customerID)
	return ok
}

// GetCustomerDetails fetches the customer record.
func (c *Client) GetCustomerDetails(ctx context.Context, customerID string) (*domain.Customer, bool) {
	var payload customerPayload
	endpoint := c.customerURL + "/customers/" + url.PathEscape(customerID)

	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		metrics.DirectoryLookups.WithLabelValues(kindCustomer, "error").Inc()
		c.log.Error().Err(err).Str("customer_id", customerID).Msg("directory: customer lookup failed")
		return nil, false
	}
	if payload.ID == "" {
		payload.ID = customerID
	}
	metrics.DirectoryLookups.WithLabelValues(kindCustomer, "hit").Inc()
	return payload.toDomain(), true
}

// HasCreditCard asks the credit-card service whether the customer holds a card.
func (c *Client) HasCreditCard(ctx context.Context, customerID string) bool {
	var exists bool
	endpoint := c.creditCardURL + "/credit-cards/customer/" + url.PathEscape(customerID) + "/exists"

	if err := c.getJSON(ctx, endpoint, &exists); err != nil {
		metrics.DirectoryLookups.WithLabelValues(kindCreditCard, "error").Inc()
		c.log.Error().Err(err).Str("customer_id", customerID).Msg("directory: credit card lookup failed")
		return false
	}
	result := "miss"
	if exists {
		result = "hit"
	}
	metrics.DirectoryLookups.WithLabelValues(kindCreditCard, result).Inc()
	return exists
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return fmt.Errorf("GET %s: status %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", endpoint, err)
	}
	return nil
}
