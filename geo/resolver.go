// Package geo resolves a typed address into the coordinates attached to
// a new service request. Resolution is an explicit ordered chain of
// strategies: full structured address, then postal code only, then the
// (0,0) sentinel that tells the backend to match technicians by pincode
// alone.
package geo

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/electrocare/client-gateway/schema"
)

var (
	// ErrAddressNotFound means a strategy got a well-formed answer with
	// zero matches.
	ErrAddressNotFound = fmt.Errorf("no coordinates found for address")
)

// SentinelLocation marks an address no geocoder could place. A manual
// payload carrying it still submits; the backend falls back to
// pincode-only matching.
var SentinelLocation = schema.Location{Latitude: 0, Longitude: 0}

// AddressResolver - interface for one resolution strategy
type AddressResolver interface {
	Resolve(ctx context.Context, addr schema.AddressDetails) (schema.Location, error)
}

// Resolution is the outcome of running the full chain. Approximate is
// true only when every strategy failed and the sentinel was used.
type Resolution struct {
	Location    schema.Location
	Approximate bool
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// ChainResolver tries each strategy in order. A strategy error of any
// kind (network, parse, empty result) is logged and treated as
// not-found for that step: the chain moves on instead of aborting the
// submission.
type ChainResolver struct {
	resolvers []AddressResolver
}

func NewChainResolver(resolvers ...AddressResolver) *ChainResolver {
	return &ChainResolver{
		resolvers: resolvers,
	}
}

// Resolve returns the first strategy's result, or every strategy's error
// aggregated when none succeeds.
func (r *ChainResolver) Resolve(ctx context.Context, addr schema.AddressDetails) (schema.Location, error) {
	var errors []error
	for i, resolver := range r.resolvers {
		result, err := resolver.Resolve(ctx, addr)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":  "geo",
				"step":    i,
				"pincode": addr.Pincode,
			}).WithError(err).Warn("address resolution step failed")
			errors = append(errors, err)
			continue
		}
		return result, nil
	}

	return schema.Location{}, NewMultipleResolverErrors(errors)
}

// ResolveWithFallback runs the chain and, at exhaustion, degrades to the
// sentinel instead of failing. Submission always proceeds.
func (r *ChainResolver) ResolveWithFallback(ctx context.Context, addr schema.AddressDetails) Resolution {
	loc, err := r.Resolve(ctx, addr)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  "geo",
			"pincode": addr.Pincode,
		}).Warn("address could not be geocoded, using pincode-only sentinel")
		return Resolution{Location: SentinelLocation, Approximate: true}
	}

	return Resolution{Location: loc}
}
