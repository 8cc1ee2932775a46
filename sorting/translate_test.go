package sorting

import (
	"testing"

	"github.com/ncobase/habits/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryDefinition = MustDefinition("entries",
	Mapping{SortField: "value", TargetPath: "Value"},
	Mapping{SortField: "date", TargetPath: "Date"},
	Mapping{SortField: "notes", TargetPath: "Notes"},
	Mapping{SortField: "age", TargetPath: "CreatedAtUtc", Reverse: true},
)

func TestParse(t *testing.T) {
	assert.Equal(t, []Token{
		{Field: "value", Descending: true},
		{Field: "date"},
	}, Parse(" -value , date,,"))
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("-"))
}

func TestTranslatePreservesOrder(t *testing.T) {
	got := Translate("-value,date", entryDefinition, "date")
	assert.Equal(t, []types.Criterion{
		{Field: "Value", Order: types.Descending},
		{Field: "Date", Order: types.Ascending},
	}, got.Criteria)
}

func TestTranslateIsCaseInsensitive(t *testing.T) {
	got := Translate("NOTES", entryDefinition, "")
	assert.Equal(t, []types.Criterion{{Field: "Notes", Order: types.Ascending}}, got.Criteria)
}

func TestTranslateDropsUnknownTokens(t *testing.T) {
	got := Translate("bogus,-value", entryDefinition, "date")
	assert.Equal(t, []types.Criterion{{Field: "Value", Order: types.Descending}}, got.Criteria)
}

func TestTranslateFallsBackToDefault(t *testing.T) {
	got := Translate("bogus,-nope", entryDefinition, "date")
	assert.Equal(t, []types.Criterion{{Field: "Date", Order: types.Ascending}}, got.Criteria)

	got = Translate("", entryDefinition, "")
	assert.Empty(t, got.Criteria)
}

func TestTranslateReverse(t *testing.T) {
	got := Translate("age,-age", entryDefinition, "")
	assert.Equal(t, []types.Criterion{
		{Field: "CreatedAtUtc", Order: types.Descending},
		{Field: "CreatedAtUtc", Order: types.Ascending},
	}, got.Criteria)
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("", entryDefinition))
	assert.True(t, Validate("-value,Date", entryDefinition))
	assert.False(t, Validate("value,bogus", entryDefinition))
}

func TestNewDefinitionRejectsDuplicates(t *testing.T) {
	_, err := NewDefinition("x", Mapping{SortField: "name", TargetPath: "Name"}, Mapping{SortField: "NAME", TargetPath: "Other"})
	assert.Error(t, err)

	_, err = NewDefinition("x", Mapping{SortField: " ", TargetPath: "Name"})
	assert.Error(t, err)
}

type entryDTO struct{}
type entry struct{}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := Get[entryDTO, entry](r)
	assert.Error(t, err)

	Register[entryDTO, entry](r, entryDefinition)
	def, err := Get[entryDTO, entry](r)
	require.NoError(t, err)
	assert.Same(t, entryDefinition, def)

	_, err = Get[entry, entryDTO](r)
	assert.Error(t, err)
}

func TestTranslateAndApply(t *testing.T) {
	type row struct{ Value int }
	rows := []row{{25}, {15}, {5}}
	types.Sort(rows, Translate("value", entryDefinition, ""), func(r row, field string) (any, bool) {
		if field == "Value" {
			return r.Value, true
		}
		return nil, false
	})
	assert.Equal(t, []row{{5}, {15}, {25}}, rows)
}
