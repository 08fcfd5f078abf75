package domain

import "context"

// AnimalSource supplies animal and organization listings. Both the live
// provider client and the mock generator implement it, so the facade can
// swap them without call sites noticing.
type AnimalSource interface {
	// SearchAnimals returns animals matching the filter, in provider order.
	SearchAnimals(ctx context.Context, filter SearchFilter) ([]Animal, error)

	// GetAnimal returns one animal by ID, or (nil, nil) when the provider
	// confirms the ID does not exist. Errors are reserved for transport,
	// auth, and provider failures.
	GetAnimal(ctx context.Context, id int64) (*Animal, error)

	// ListOrganizations returns organizations, optionally near a location.
	ListOrganizations(ctx context.Context, location string) ([]Organization, error)
}
