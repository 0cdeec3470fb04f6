package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"petmatch/internal/filter"
	"petmatch/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }
func boolPtr(b bool) *bool    { return &b }

func samplePets() []models.Pet {
	return []models.Pet{
		{ID: 1, Name: "Burek", Species: "Pies", Age: 3, Gender: "samiec", Size: "duży", IsAvailable: true},
		{ID: 2, Name: "Mruczek", Species: "Kot", Age: 1, Gender: "samiec", Size: "mały", IsAvailable: true},
		{ID: 3, Name: "Filemon", Species: "Kot", Age: 7, Gender: "samiec", Size: "średni", IsAvailable: false},
		{ID: 4, Name: "Saba", Species: "Pies", Age: 5, Gender: "samica", Size: "duży", IsAvailable: true},
	}
}

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	pets := samplePets()

	result := filter.Apply(pets, filter.Criteria{})

	assert.Equal(t, pets, result)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	pets := samplePets()
	original := samplePets()

	filter.Apply(pets, filter.Criteria{Species: strPtr("Kot"), Available: boolPtr(true)})

	assert.Equal(t, original, pets)
}

func TestApplySpeciesMatch(t *testing.T) {
	pets := samplePets()

	cats := filter.Apply(pets, filter.Criteria{Species: strPtr("Kot")})
	assert.Len(t, cats, 2)
	for _, pet := range cats {
		assert.Equal(t, "Kot", pet.Species)
	}

	none := filter.Apply(pets, filter.Criteria{Species: strPtr("Chomik")})
	assert.Empty(t, none)
}

func TestApplySpeciesMatchIsCaseInsensitive(t *testing.T) {
	pets := samplePets()

	lower := filter.Apply(pets, filter.Criteria{Species: strPtr("kot")})
	upper := filter.Apply(pets, filter.Criteria{Species: strPtr("KOT")})

	assert.Len(t, lower, 2)
	assert.Equal(t, lower, upper)
}

func TestApplyAgeBoundsAreInclusive(t *testing.T) {
	pets := samplePets()

	// Both bounds land exactly on existing ages 1 and 7.
	result := filter.Apply(pets, filter.Criteria{AgeMin: intPtr(1), AgeMax: intPtr(7)})
	assert.Len(t, result, 4)

	exact := filter.Apply(pets, filter.Criteria{AgeMin: intPtr(3), AgeMax: intPtr(3)})
	assert.Len(t, exact, 1)
	assert.Equal(t, "Burek", exact[0].Name)

	outside := filter.Apply(pets, filter.Criteria{AgeMin: intPtr(8)})
	assert.Empty(t, outside)
}

func TestApplyCombinesCriteriaWithAND(t *testing.T) {
	pets := samplePets()

	result := filter.Apply(pets, filter.Criteria{
		Available: boolPtr(true),
		Species:   strPtr("Pies"),
		Size:      strPtr("duży"),
		Gender:    strPtr("samica"),
	})

	assert.Len(t, result, 1)
	assert.Equal(t, "Saba", result[0].Name)
}

func TestApplyAvailability(t *testing.T) {
	pets := samplePets()

	available := filter.Apply(pets, filter.Criteria{Available: boolPtr(true)})
	assert.Len(t, available, 3)

	unavailable := filter.Apply(pets, filter.Criteria{Available: boolPtr(false)})
	assert.Len(t, unavailable, 1)
	assert.Equal(t, "Filemon", unavailable[0].Name)
}

func TestApplyIsIdempotent(t *testing.T) {
	pets := samplePets()
	criteria := filter.Criteria{Species: strPtr("Kot"), AgeMax: intPtr(5)}

	once := filter.Apply(pets, criteria)
	twice := filter.Apply(once, criteria)

	assert.Equal(t, once, twice)
}
