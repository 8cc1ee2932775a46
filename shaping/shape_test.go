package shaping

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frequency struct {
	Type           string `json:"type"`
	TimesPerPeriod int    `json:"timesPerPeriod"`
}

type audit struct {
	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

type habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Type        string    `json:"type"`
	Frequency   frequency `json:"frequency"`
	Secret      string    `json:"-"`
	internal    int
	audit
}

func sampleHabit() habit {
	return habit{
		ID:        "h_1",
		Name:      "Read",
		Type:      "binary",
		Frequency: frequency{Type: "daily", TimesPerPeriod: 1},
		Secret:    "s",
		internal:  7,
		audit:     audit{CreatedAtUtc: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestShapeSelectedFields(t *testing.T) {
	item, err := Shape(sampleHabit(), "id,name,type")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "type"}, item.Keys())

	v, ok := item.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Read", v)
}

func TestShapeUsesDeclaredOrderAndCasing(t *testing.T) {
	item, err := Shape(sampleHabit(), " TYPE , Id")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "type"}, item.Keys())
}

func TestShapeAllFields(t *testing.T) {
	item, err := Shape(sampleHabit(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "description", "type", "frequency", "createdAtUtc"}, item.Keys())

	_, hidden := item.Get("Secret")
	assert.False(t, hidden)
}

func TestShapePointerRecord(t *testing.T) {
	h := sampleHabit()
	item, err := Shape(&h, "frequency")
	require.NoError(t, err)
	v, _ := item.Get("frequency")
	assert.Equal(t, frequency{Type: "daily", TimesPerPeriod: 1}, v)

	var nilHabit *habit
	_, err = Shape(nilHabit, "")
	assert.ErrorIs(t, err, ErrNilRecord)
}

func TestShapeInvalidFieldFailsWholeList(t *testing.T) {
	_, err := Shape(sampleHabit(), "id,name,bogus")
	require.Error(t, err)

	var fe *FieldValidationError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "id,name,bogus", fe.Fields)
	assert.Equal(t, []string{"bogus"}, fe.Invalid)
	assert.True(t, IsFieldValidationError(err))
	assert.Contains(t, err.Error(), "id,name,bogus")
}

func TestShapeUnsupportedType(t *testing.T) {
	_, err := Shape(42, "")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate[habit]("ID,Name"))
	assert.NoError(t, Validate[habit](""))
	assert.NoError(t, Validate[*habit]("createdatutc"))
	assert.Error(t, Validate[habit]("secret"))
	assert.Error(t, Validate[habit]("internal"))
}

func TestProperties(t *testing.T) {
	names, err := Properties[habit]()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "description", "type", "frequency", "createdAtUtc"}, names)
}

func TestShapeManyPreservesOrderAndAppendsLinks(t *testing.T) {
	records := []habit{{ID: "h_1", Name: "a"}, {ID: "h_2", Name: "b"}, {ID: "h_3", Name: "c"}}
	items, err := ShapeMany(records, "name", func(h habit) any {
		return []string{"/habits/" + h.ID}
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, item := range items {
		assert.Equal(t, []string{"name", LinksKey}, item.Keys())
		v, _ := item.Get(LinksKey)
		assert.Equal(t, []string{"/habits/" + records[i].ID}, v)
	}
}

func TestShapeManyValidatesBeforeShaping(t *testing.T) {
	calls := 0
	_, err := ShapeMany([]habit{sampleHabit()}, "nope", func(habit) any {
		calls++
		return nil
	})
	assert.Error(t, err)
	assert.Zero(t, calls)

	// an empty sequence is still validated
	_, err = ShapeMany([]habit{}, "nope", nil)
	assert.Error(t, err)
}

func TestShapeManyInterfaceElements(t *testing.T) {
	items, err := ShapeMany([]any{sampleHabit(), frequency{Type: "weekly"}}, "type", nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	v, _ := items[1].Get("type")
	assert.Equal(t, "weekly", v)
}

func TestShapedItemMarshalPreservesOrder(t *testing.T) {
	item, err := Shape(sampleHabit(), "type,name,id")
	require.NoError(t, err)
	item.Set(LinksKey, []int{1})

	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"h_1","name":"Read","type":"binary","links":[1]}`, string(b))
}

func TestShapedItemSetReplacesInPlace(t *testing.T) {
	item := NewShapedItem(2)
	item.Set("a", 1)
	item.Set("b", 2)
	item.Set("a", 3)
	assert.Equal(t, []string{"a", "b"}, item.Keys())
	v, _ := item.Get("A")
	assert.Equal(t, 3, v)
}

func TestConcurrentMetadataPopulation(t *testing.T) {
	type fresh struct {
		A int `json:"a"`
		B int `json:"b"`
	}
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			item, err := Shape(fresh{A: n, B: n}, "b")
			if err != nil {
				errs <- err
				return
			}
			if v, _ := item.Get("b"); v != n {
				errs <- fmt.Errorf("got %v want %d", v, n)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

type linkedRecord struct {
	ID    string   `json:"id"`
	Links []string `json:"Links"`
	Name  string   `json:"name"`
}

func TestShapeManyLinksReplaceSameNamedProperty(t *testing.T) {
	records := []linkedRecord{{ID: "r_1", Links: []string{"old"}, Name: "a"}}
	items, err := ShapeMany(records, "", func(r linkedRecord) any { return []string{"/r/" + r.ID} })
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"id", "name", LinksKey}, items[0].Keys())

	b, err := json.Marshal(items[0])
	require.NoError(t, err)
	assert.Equal(t, `{"id":"r_1","name":"a","links":["/r/r_1"]}`, string(b))
}

func TestShapedItemSetLastMovesKey(t *testing.T) {
	item := NewShapedItem(3)
	item.Set("links", 1)
	item.Set("a", 2)
	item.Set("LINKS", 3)
	item.SetLast("links", 4)
	assert.Equal(t, []string{"a", "links"}, item.Keys())
	v, _ := item.Get("links")
	assert.Equal(t, 4, v)
}

func localShape(t *testing.T) *ShapedItem {
	type rec struct {
		Alpha string `json:"alpha"`
	}
	item, err := Shape(rec{Alpha: "a"}, "")
	require.NoError(t, err)
	return item
}

func TestShapeFunctionLocalTypesWithSameName(t *testing.T) {
	type rec struct {
		Beta string `json:"beta"`
	}
	assert.Equal(t, []string{"alpha"}, localShape(t).Keys())

	item, err := Shape(rec{Beta: "b"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, item.Keys())
	assert.Equal(t, []string{"alpha"}, localShape(t).Keys())
}
