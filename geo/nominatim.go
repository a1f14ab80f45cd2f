package geo

import (
	"context"
	"strconv"

	"github.com/electrocare/client-gateway/external/nominatim"
	"github.com/electrocare/client-gateway/schema"
)

// NominatimResolver geocodes through the OpenStreetMap Nominatim API.
// The same client backs both chain steps; postcodeOnly selects how much
// of the address goes into the query.
type NominatimResolver struct {
	client       nominatim.Client
	country      string
	postcodeOnly bool
}

func NewNominatimResolver(client nominatim.Client, country string) *NominatimResolver {
	return &NominatimResolver{
		client:  client,
		country: country,
	}
}

func NewNominatimPostcodeResolver(client nominatim.Client, country string) *NominatimResolver {
	return &NominatimResolver{
		client:       client,
		country:      country,
		postcodeOnly: true,
	}
}

func (r *NominatimResolver) Resolve(ctx context.Context, addr schema.AddressDetails) (schema.Location, error) {
	q := nominatim.Query{
		Postcode: addr.Pincode,
		Country:  r.country,
	}
	if !r.postcodeOnly {
		q.Street = addr.Street
		q.City = addr.City
	}

	places, err := r.client.Search(ctx, q)
	if err != nil {
		return schema.Location{}, err
	}
	if len(places) == 0 {
		return schema.Location{}, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return schema.Location{}, err
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return schema.Location{}, err
	}

	return schema.Location{Latitude: lat, Longitude: lng}, nil
}

// NewNominatimChain is the default resolution chain: full address first,
// then postcode only.
func NewNominatimChain(client nominatim.Client, country string) *ChainResolver {
	return NewChainResolver(
		NewNominatimResolver(client, country),
		NewNominatimPostcodeResolver(client, country),
	)
}
