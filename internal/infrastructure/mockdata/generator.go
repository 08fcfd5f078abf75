// Package mockdata produces synthetic animal listings for development and
// demos. Output is shape-identical to what the live provider mapper
// returns, so UI code cannot tell the two sources apart.
package mockdata

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/petscout/backend/internal/domain"
)

// DefaultSearchSize is how many animals a mock search returns when the
// filter does not ask for a specific page size
const DefaultSearchSize = 20

var (
	dogNames = []string{"Rex", "Luna", "Buddy", "Daisy", "Max", "Bella", "Charlie", "Rosie", "Cooper", "Maggie"}
	catNames = []string{"Whiskers", "Mittens", "Oliver", "Cleo", "Simba", "Pepper", "Milo", "Willow", "Leo", "Nala"}

	dogBreeds = []string{"Labrador Retriever", "German Shepherd", "Beagle", "Boxer", "Terrier Mix", "Border Collie"}
	catBreeds = []string{"Domestic Short Hair", "Siamese", "Maine Coon", "Tabby", "Russian Blue"}

	ages    = []string{"Baby", "Young", "Adult", "Senior"}
	genders = []string{"Male", "Female"}
	sizes   = []string{"Small", "Medium", "Large", "Extra Large"}

	tagPool = []string{"Friendly", "Playful", "Curious", "Gentle", "Loyal", "Energetic", "Quiet", "Affectionate"}

	orgNames = []string{
		"Happy Tails Rescue", "Second Chance Shelter", "Paws & Whiskers Society",
		"Forever Home Alliance", "Safe Harbor Animal League", "New Beginnings Rescue",
		"Open Arms Shelter", "Hearts United Animal Rescue",
	}

	cities = []struct {
		city, state string
	}{
		{"Portland", "OR"}, {"Austin", "TX"}, {"Denver", "CO"},
		{"Madison", "WI"}, {"Asheville", "NC"}, {"Burlington", "VT"},
	}
)

// Generator produces synthetic animals and organizations. It implements
// domain.AnimalSource so the facade can swap it in for the live client.
type Generator struct{}

// NewGenerator creates a mock data generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Animals generates n synthetic animals
func (g *Generator) Animals(n int) []domain.Animal {
	animals := make([]domain.Animal, 0, n)
	for i := 0; i < n; i++ {
		animals = append(animals, g.animal(int64(1000+i), "", false))
	}
	return animals
}

// Organizations generates n synthetic organizations
func (g *Generator) Organizations(n int) []domain.Organization {
	orgs := make([]domain.Organization, 0, n)
	for i := 0; i < n; i++ {
		orgs = append(orgs, g.organization(i, false))
	}
	return orgs
}

// SearchAnimals generates a result set honoring the filter's type, page
// size, and sort order. Distances are only populated when the filter has
// a location, matching the live provider.
func (g *Generator) SearchAnimals(_ context.Context, filter domain.SearchFilter) ([]domain.Animal, error) {
	n := filter.Limit
	if n <= 0 {
		n = DefaultSearchSize
	}

	withDistance := filter.Location != ""
	animals := make([]domain.Animal, 0, n)
	for i := 0; i < n; i++ {
		animals = append(animals, g.animal(int64(1000+i), filter.Type, withDistance))
	}

	if filter.Sort == domain.SortDistance && withDistance {
		sort.Slice(animals, func(i, j int) bool {
			return *animals[i].Distance < *animals[j].Distance
		})
	}

	return animals, nil
}

// GetAnimal generates one animal carrying the requested ID
func (g *Generator) GetAnimal(_ context.Context, id int64) (*domain.Animal, error) {
	animal := g.animal(id, "", false)
	return &animal, nil
}

// ListOrganizations generates a fixed-size organization list
func (g *Generator) ListOrganizations(_ context.Context, location string) ([]domain.Organization, error) {
	orgs := make([]domain.Organization, 0, len(orgNames))
	for i := range orgNames {
		orgs = append(orgs, g.organization(i, location != ""))
	}
	return orgs, nil
}

func (g *Generator) animal(id int64, animalType string, withDistance bool) domain.Animal {
	if animalType == "" {
		animalType = pick([]string{"Dog", "Cat"})
	}

	var name, breed string
	if animalType == "Cat" {
		name = pick(catNames)
		breed = pick(catBreeds)
	} else {
		name = pick(dogNames)
		breed = pick(dogBreeds)
	}

	loc := cities[rand.IntN(len(cities))]
	mixed := rand.IntN(2) == 0

	a := domain.Animal{
		ID:             id,
		OrganizationID: fmt.Sprintf("%s%d", loc.state, 100+rand.IntN(900)),
		URL:            fmt.Sprintf("https://www.petfinder.com/petdetail/%d", id),
		Type:           animalType,
		Breed: domain.Breed{
			Primary: breed,
			Mixed:   mixed,
		},
		Age:         pick(ages),
		Gender:      pick(genders),
		Size:        pick(sizes),
		Status:      "adoptable",
		Name:        name,
		Description: fmt.Sprintf("%s is a %s %s looking for a loving home.", name, pick(ages), breed),
		PhotoURLs:   photoSet(id),
		Attributes: domain.Attributes{
			SpayedNeutered: rand.IntN(2) == 0,
			HouseTrained:   rand.IntN(2) == 0,
			SpecialNeeds:   rand.IntN(10) == 0,
			ShotsCurrent:   rand.IntN(4) != 0,
		},
		Environment: domain.Environment{
			Children: triState(),
			Dogs:     triState(),
			Cats:     triState(),
		},
		Tags: pickSome(tagPool, 1+rand.IntN(3)),
		Contact: domain.Contact{
			Email: fmt.Sprintf("adopt@%s.example.org", loc.city),
			Phone: maybePhone(),
			Address: domain.Address{
				City:    loc.city,
				State:   loc.state,
				Country: "US",
			},
		},
	}

	if animalType == "Cat" {
		declawed := rand.IntN(5) == 0
		a.Attributes.Declawed = &declawed
	}

	if withDistance {
		d := float64(rand.IntN(10000)) / 100.0
		a.Distance = &d
	}

	return a
}

func (g *Generator) organization(i int, withDistance bool) domain.Organization {
	loc := cities[i%len(cities)]
	id := fmt.Sprintf("%s%d", loc.state, 100+i)

	org := domain.Organization{
		ID:    id,
		Name:  orgNames[i%len(orgNames)],
		Email: maybeEmail(),
		Phone: maybePhone(),
		Address: domain.Address{
			City:    loc.city,
			State:   loc.state,
			Country: "US",
		},
		URL: fmt.Sprintf("https://www.petfinder.com/member/us/%s/%s", loc.state, id),
	}

	if withDistance {
		d := float64(rand.IntN(5000)) / 100.0
		org.Distance = &d
	}

	return org
}

func pick(values []string) string {
	return values[rand.IntN(len(values))]
}

func pickSome(values []string, n int) []string {
	perm := rand.Perm(len(values))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, values[idx])
	}
	return out
}

// triState returns nil, true, or false with equal probability, so
// downstream null handling gets exercised by mock data too
func triState() *bool {
	switch rand.IntN(3) {
	case 0:
		return nil
	case 1:
		v := true
		return &v
	default:
		v := false
		return &v
	}
}

func maybePhone() string {
	if rand.IntN(3) == 0 {
		return ""
	}
	return fmt.Sprintf("(555) %03d-%04d", rand.IntN(1000), rand.IntN(10000))
}

func maybeEmail() string {
	if rand.IntN(4) == 0 {
		return ""
	}
	return fmt.Sprintf("contact+%d@shelter.example.org", rand.IntN(1000))
}

func photoSet(id int64) []string {
	n := rand.IntN(4)
	urls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		urls = append(urls, fmt.Sprintf("https://photos.petfinder.com/photos/pets/%d/%d.jpg", id, i+1))
	}
	return urls
}
