package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Sort orders accepted by the listings provider
const (
	SortDistance = "distance"
	SortRecent   = "recent"
)

// SearchFilter describes an animal search. Zero-valued fields are omitted
// from both the provider query and the cache key.
type SearchFilter struct {
	Type         string `json:"type,omitempty" form:"type"`
	Breed        string `json:"breed,omitempty" form:"breed"`
	Location     string `json:"location,omitempty" form:"location"`
	Distance     int    `json:"distance,omitempty" form:"distance"`
	Age          string `json:"age,omitempty" form:"age"`
	Size         string `json:"size,omitempty" form:"size"`
	Gender       string `json:"gender,omitempty" form:"gender"`
	Organization string `json:"organization,omitempty" form:"organization"`
	Sort         string `json:"sort,omitempty" form:"sort"`
	Page         int    `json:"page,omitempty" form:"page"`
	Limit        int    `json:"limit,omitempty" form:"limit"`
}

// fields returns the non-zero filter fields as name/value pairs
func (f SearchFilter) fields() map[string]string {
	m := make(map[string]string)
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.Breed != "" {
		m["breed"] = f.Breed
	}
	if f.Location != "" {
		m["location"] = f.Location
	}
	if f.Distance > 0 {
		m["distance"] = fmt.Sprintf("%d", f.Distance)
	}
	if f.Age != "" {
		m["age"] = f.Age
	}
	if f.Size != "" {
		m["size"] = f.Size
	}
	if f.Gender != "" {
		m["gender"] = f.Gender
	}
	if f.Organization != "" {
		m["organization"] = f.Organization
	}
	if f.Sort != "" {
		m["sort"] = f.Sort
	}
	if f.Page > 0 {
		m["page"] = fmt.Sprintf("%d", f.Page)
	}
	if f.Limit > 0 {
		m["limit"] = fmt.Sprintf("%d", f.Limit)
	}
	return m
}

// keyEscaper makes filter values safe to embed in a cache key: without
// it a value containing ":" or "|" could collide with a different filter.
var keyEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, ":", `\:`)

// CacheKey derives a deterministic cache key from the filter.
// Field names are sorted before joining so logically identical filters
// always produce the same key, absent fields never collide with
// empty-valued ones, and delimiter characters inside values are escaped
// so distinct filters never share a key.
func (f SearchFilter) CacheKey() string {
	fields := f.fields()
	pairs := make([]string, 0, len(fields))
	for name, value := range fields {
		pairs = append(pairs, name+":"+keyEscaper.Replace(value))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}

// QueryParams returns the filter as provider query parameters
func (f SearchFilter) QueryParams() map[string]string {
	return f.fields()
}
