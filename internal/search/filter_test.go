package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name     string
	Category string
	Hidden   string
}

func fields(i item) []string {
	return []string{i.Name, i.Category}
}

func TestMatchEmptyTermReturnsInputUnchanged(t *testing.T) {
	items := []item{{Name: "b"}, {Name: "a"}, {Name: "c"}}

	got := Match(items, "", fields)

	assert.Equal(t, items, got)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	items := []item{
		{Name: "Akciger Grafisi", Category: "radyoloji"},
		{Name: "Hemogram", Category: "laboratuvar"},
	}

	got := Match(items, "AKCIGER", fields)

	assert.Len(t, got, 1)
	assert.Equal(t, "Akciger Grafisi", got[0].Name)
}

func TestMatchSubstringAcrossAnyListedField(t *testing.T) {
	items := []item{
		{Name: "Hemogram", Category: "laboratuvar"},
		{Name: "Odyometri", Category: "isitme"},
	}

	got := Match(items, "labor", fields)

	assert.Len(t, got, 1)
	assert.Equal(t, "Hemogram", got[0].Name)
}

func TestMatchIgnoresUnlistedFields(t *testing.T) {
	items := []item{{Name: "Hemogram", Hidden: "gizli"}}

	got := Match(items, "gizli", fields)

	assert.Empty(t, got)
}

func TestMatchEmptyFieldValuesDoNotMatch(t *testing.T) {
	items := []item{{Name: "", Category: ""}}

	got := Match(items, "anything", fields)

	assert.Empty(t, got)
}

func TestMatchNoResults(t *testing.T) {
	items := []item{{Name: "Hemogram"}}

	got := Match(items, "zzz", fields)

	assert.Empty(t, got)
}
