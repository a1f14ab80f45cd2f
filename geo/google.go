package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/electrocare/client-gateway/schema"
)

const googleTimeout = 5 * time.Second

// GoogleResolver is the Google Maps Geocoding alternative to Nominatim,
// selected by configuration. Component filters keep the lookup scoped to
// the configured country.
type GoogleResolver struct {
	client       *maps.Client
	country      string
	postcodeOnly bool
}

func NewGoogleResolver(client *maps.Client, country string) *GoogleResolver {
	return &GoogleResolver{
		client:  client,
		country: country,
	}
}

func NewGooglePostcodeResolver(client *maps.Client, country string) *GoogleResolver {
	return &GoogleResolver{
		client:       client,
		country:      country,
		postcodeOnly: true,
	}
}

func (g *GoogleResolver) Resolve(ctx context.Context, addr schema.AddressDetails) (schema.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, googleTimeout)
	defer cancel()

	req := &maps.GeocodingRequest{
		Components: map[maps.Component]string{
			maps.ComponentPostalCode: addr.Pincode,
			maps.ComponentCountry:    g.country,
		},
		Language: "en",
	}
	if !g.postcodeOnly {
		req.Address = fmt.Sprintf("%s, %s", addr.Street, addr.City)
	}

	geos, err := g.client.Geocode(ctx, req)
	if err != nil {
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, ErrAddressNotFound
	}

	return schema.Location{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}, nil
}

// NewGoogleChain mirrors the Nominatim chain on top of the Google
// geocoder.
func NewGoogleChain(client *maps.Client, country string) *ChainResolver {
	return NewChainResolver(
		NewGoogleResolver(client, country),
		NewGooglePostcodeResolver(client, country),
	)
}
