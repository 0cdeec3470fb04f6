// Package filter computes the subset of pets matching a combination of
// optional criteria. It is pure: Apply never mutates its input and
// re-applying the same criteria to its own result returns the same set.
package filter

import (
	"strings"

	"petmatch/internal/models"
)

// Criteria is a set of optional predicates combined with logical AND. A nil
// field constrains nothing. String matching is case-insensitive. Age bounds
// are inclusive; AgeMin defaults to 0 and AgeMax to unbounded when absent.
type Criteria struct {
	Available *bool
	Species   *string
	Size      *string
	Gender    *string
	AgeMin    *int64
	AgeMax    *int64
}

// Apply returns the pets matching every provided criterion, preserving the
// input order.
func Apply(pets []models.Pet, c Criteria) []models.Pet {
	matched := make([]models.Pet, 0, len(pets))
	for _, pet := range pets {
		if Matches(pet, c) {
			matched = append(matched, pet)
		}
	}
	return matched
}

// Matches reports whether a single pet satisfies the criteria.
func Matches(pet models.Pet, c Criteria) bool {
	if c.Available != nil && pet.IsAvailable != *c.Available {
		return false
	}
	if c.Species != nil && !strings.EqualFold(pet.Species, *c.Species) {
		return false
	}
	if c.Size != nil && !strings.EqualFold(pet.Size, *c.Size) {
		return false
	}
	if c.Gender != nil && !strings.EqualFold(pet.Gender, *c.Gender) {
		return false
	}
	if c.AgeMin != nil && pet.Age < *c.AgeMin {
		return false
	}
	if c.AgeMax != nil && pet.Age > *c.AgeMax {
		return false
	}
	return true
}
