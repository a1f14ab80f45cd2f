// Package nominatim is a minimal client for the OpenStreetMap Nominatim
// search API, used to turn typed addresses into coordinates.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
)

const (
	defaultURL = "https://nominatim.openstreetmap.org/search"
	userAgent  = "electrocare-client-gateway/1.0"
)

var errUnexpectedStatus = fmt.Errorf("unexpected response status")

// Query is a structured search. Empty fields are omitted from the
// request, so a postal-code-only lookup is just a Query with Postcode
// and Country set.
type Query struct {
	Street   string
	City     string
	Postcode string
	Country  string
}

// Place is a single match. Nominatim returns coordinates as strings.
type Place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Client searches for places. An empty result slice and a nil error means
// the service answered but found nothing.
type Client interface {
	Search(ctx context.Context, q Query) ([]Place, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

// New returns a Client against the given endpoint, or the public
// Nominatim instance when url is empty.
func New(url string, httpClient *http.Client) Client {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{
		url:        u,
		httpClient: httpClient,
	}
}

func (c *client) Search(ctx context.Context, q Query) ([]Place, error) {
	values := url.Values{}
	values.Set("format", "json")
	values.Set("limit", "1")
	if q.Street != "" {
		values.Set("street", q.Street)
	}
	if q.City != "" {
		values.Set("city", q.City)
	}
	if q.Postcode != "" {
		values.Set("postalcode", q.Postcode)
	}
	if q.Country != "" {
		values.Set("country", q.Country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", errUnexpectedStatus, resp.Status)
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var places []Place
	if err := json.Unmarshal(d, &places); err != nil {
		return nil, err
	}

	return places, nil
}
