package petfinder

import (
	"github.com/petscout/backend/internal/domain"
)

// Wire types mirror the provider's JSON exactly; everything downstream
// works with the flattened domain models instead.

type animalsResponse struct {
	Animals []animalJSON `json:"animals"`
}

type animalResponse struct {
	Animal animalJSON `json:"animal"`
}

type organizationsResponse struct {
	Organizations []organizationJSON `json:"organizations"`
}

type animalJSON struct {
	ID             int64           `json:"id"`
	OrganizationID string          `json:"organization_id"`
	URL            string          `json:"url"`
	Type           string          `json:"type"`
	Breeds         breedsJSON      `json:"breeds"`
	Age            string          `json:"age"`
	Gender         string          `json:"gender"`
	Size           string          `json:"size"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Photos         []photoJSON     `json:"photos"`
	Status         string          `json:"status"`
	Attributes     attributesJSON  `json:"attributes"`
	Environment    environmentJSON `json:"environment"`
	Tags           []string        `json:"tags"`
	Contact        contactJSON     `json:"contact"`
	Distance       *float64        `json:"distance"`
}

type breedsJSON struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Mixed     bool   `json:"mixed"`
	Unknown   bool   `json:"unknown"`
}

type photoJSON struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
	Full   string `json:"full"`
}

type attributesJSON struct {
	SpayedNeutered bool  `json:"spayed_neutered"`
	HouseTrained   bool  `json:"house_trained"`
	Declawed       *bool `json:"declawed"`
	SpecialNeeds   bool  `json:"special_needs"`
	ShotsCurrent   bool  `json:"shots_current"`
}

type environmentJSON struct {
	Children *bool `json:"children"`
	Dogs     *bool `json:"dogs"`
	Cats     *bool `json:"cats"`
}

type contactJSON struct {
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address addressJSON `json:"address"`
}

type addressJSON struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type organizationJSON struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Address  addressJSON `json:"address"`
	URL      string      `json:"url"`
	Distance *float64    `json:"distance"`
}

// mapAnimal converts provider animal data to our domain model
func mapAnimal(a *animalJSON) domain.Animal {
	return domain.Animal{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		URL:            a.URL,
		Type:           a.Type,
		Breed: domain.Breed{
			Primary:   a.Breeds.Primary,
			Secondary: a.Breeds.Secondary,
			Mixed:     a.Breeds.Mixed,
			Unknown:   a.Breeds.Unknown,
		},
		Age:         a.Age,
		Gender:      a.Gender,
		Size:        a.Size,
		Status:      a.Status,
		Name:        a.Name,
		Description: a.Description,
		PhotoURLs:   photoURLs(a.Photos),
		Attributes: domain.Attributes{
			SpayedNeutered: a.Attributes.SpayedNeutered,
			HouseTrained:   a.Attributes.HouseTrained,
			Declawed:       a.Attributes.Declawed,
			SpecialNeeds:   a.Attributes.SpecialNeeds,
			ShotsCurrent:   a.Attributes.ShotsCurrent,
		},
		Environment: domain.Environment{
			Children: a.Environment.Children,
			Dogs:     a.Environment.Dogs,
			Cats:     a.Environment.Cats,
		},
		Tags:     a.Tags,
		Contact:  mapContact(a.Contact),
		Distance: a.Distance,
	}
}

// photoURLs picks one URL per photo, preferring large over medium over
// small, and drops photos with no usable variant
func photoURLs(photos []photoJSON) []string {
	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		switch {
		case p.Large != "":
			urls = append(urls, p.Large)
		case p.Medium != "":
			urls = append(urls, p.Medium)
		case p.Small != "":
			urls = append(urls, p.Small)
		}
	}
	return urls
}

func mapContact(c contactJSON) domain.Contact {
	return domain.Contact{
		Email:   c.Email,
		Phone:   c.Phone,
		Address: mapAddress(c.Address),
	}
}

func mapAddress(a addressJSON) domain.Address {
	return domain.Address{
		Address1: a.Address1,
		Address2: a.Address2,
		City:     a.City,
		State:    a.State,
		Postcode: a.Postcode,
		Country:  a.Country,
	}
}

// mapOrganization converts provider organization data to our domain model
func mapOrganization(o *organizationJSON) domain.Organization {
	return domain.Organization{
		ID:       o.ID,
		Name:     o.Name,
		Email:    o.Email,
		Phone:    o.Phone,
		Address:  mapAddress(o.Address),
		URL:      o.URL,
		Distance: o.Distance,
	}
}
