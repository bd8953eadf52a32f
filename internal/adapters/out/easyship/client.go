// Package easyship is the HTTP client for the carrier platform. One client
// implements all four outbound ports: reference data, availability, address
// validation and rating.
package easyship

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/ports"
	"freightquote/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// Client talks to the carrier platform's HTTP API. Safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a carrier platform client. The token is sent as a bearer
// token on every request; pass an empty token for unauthenticated sandboxes.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// ListCountries returns the platform's shippable countries in its order.
func (c *Client) ListCountries(ctx context.Context) ([]ports.Country, error) {
	var dtos []countryDTO
	if err := c.get(ctx, "/countries", nil, &dtos); err != nil {
		return nil, err
	}

	countries := make([]ports.Country, 0, len(dtos))
	for _, dto := range dtos {
		code, err := kernel.NewCountryCode(dto.Code)
		if err != nil {
			return nil, err
		}
		countries = append(countries, ports.Country{Code: code, Name: dto.Name})
	}

	return countries, nil
}

// CheckAvailableModes returns the transport modes offered for a route. The
// category is passed through when concrete so the platform can filter modes
// the category cannot use.
func (c *Client) CheckAvailableModes(
	ctx context.Context,
	origin, destination kernel.CountryCode,
	cat category.Category,
) (ports.AvailableModes, error) {
	params := url.Values{}
	params.Set("origin_country", origin.String())
	params.Set("destination_country", destination.String())
	if cat.IsConcrete() {
		params.Set("shipping_category", cat.String())
	}

	var dto availableModesDTO
	if err := c.get(ctx, "/available-transport-modes", params, &dto); err != nil {
		return ports.AvailableModes{}, err
	}

	return ports.AvailableModes{
		Modes:             dto.TransportModes,
		DeliveryAvailable: dto.DeliveryAvailable,
	}, nil
}

// ValidateAddress submits an address to the platform's validation service.
func (c *Client) ValidateAddress(
	ctx context.Context,
	addr address.Address,
) (ports.ValidationResult, error) {
	request := validateAddressRequestDTO{Address: toAddressDTO(addr)}

	var response validateAddressResponseDTO
	if err := c.post(ctx, "/address-validation", request, &response); err != nil {
		return ports.ValidationResult{}, err
	}

	if !response.Success || response.ValidatedAddress == nil {
		return ports.ValidationResult{Success: false}, nil
	}

	validated, err := response.ValidatedAddress.toDomain()
	if err != nil {
		return ports.ValidationResult{}, err
	}

	return ports.ValidationResult{Success: true, Validated: validated}, nil
}

// CalculateQuotes prices a quote request with the platform. A non-2xx
// response carrying an error body means the platform has no rates for the
// route and maps to ports.ErrNoRatesForRoute.
func (c *Client) CalculateQuotes(
	ctx context.Context,
	request *quote.Request,
) (*ports.RatingResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(toRatingRequestDTO(request))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/rates", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ratingErr ratingErrorDTO
		if decodeErr := json.NewDecoder(resp.Body).Decode(&ratingErr); decodeErr == nil && ratingErr.Error != "" {
			return nil, fmt.Errorf("%w: %s", ports.ErrNoRatesForRoute, ratingErr.Error)
		}
		return nil, fmt.Errorf("rating request failed with status %d", resp.StatusCode)
	}

	var dto ratingResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, err
	}

	return dto.toDomain()
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s failed with status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
