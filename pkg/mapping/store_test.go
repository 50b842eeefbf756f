package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/veil/pkg/core"
	"github.com/aretw0/veil/pkg/mapping"
)

func TestStore_Add_Duplicates(t *testing.T) {
	s := mapping.NewStore(nil)

	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, ""))

	// Second add with the same original fails and leaves the store untouched.
	assert.False(t, s.Add("John Smith", "Person_B", core.TypePerson, nil, ""))
	// Case only differs: still a duplicate.
	assert.False(t, s.Add("JOHN SMITH", "Person_C", core.TypePerson, nil, ""))
	// Alias collision on a different original.
	assert.False(t, s.Add("Jane Doe", "person_a", core.TypePerson, nil, ""))

	assert.Equal(t, 1, s.Len())
}

func TestStore_Add_EmptyFields(t *testing.T) {
	s := mapping.NewStore(nil)

	assert.False(t, s.Add("", "Person_A", core.TypePerson, nil, ""))
	assert.False(t, s.Add("John Smith", "", core.TypePerson, nil, ""))
	assert.Equal(t, 0, s.Len())
}

func TestStore_Get_Variations(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, []string{"Johnny", "J. Smith"}, ""))

	e, ok := s.Get("johnny")
	require.True(t, ok, "variation lookup must resolve to the owning entity")
	assert.Equal(t, "John Smith", e.Original)

	alias, ok := s.Alias("J. SMITH")
	require.True(t, ok)
	assert.Equal(t, "Person_A", alias)

	_, ok = s.Get("nobody")
	assert.False(t, ok)
}

func TestStore_Get_FirstEntityWins(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("Alpha Corp", "Org_1", core.TypeOrganization, []string{"Acme"}, ""))
	require.True(t, s.Add("Acme", "Org_2", core.TypeOrganization, nil, ""))

	// "Acme" is a variation of the first entity and the original of the
	// second; mapping order decides.
	e, ok := s.Get("Acme")
	require.True(t, ok)
	assert.Equal(t, "Alpha Corp", e.Original)
}

func TestStore_Update_Patch(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, "note"))

	alias := "Person_Z"
	typ := core.TypeOther
	assert.True(t, s.Update("john smith", core.EntityPatch{Alias: &alias, Type: &typ}))

	e, _ := s.Get("John Smith")
	assert.Equal(t, "Person_Z", e.Alias)
	assert.Equal(t, core.TypeOther, e.Type)
	assert.Equal(t, "note", e.Notes, "unpatched fields stay put")

	assert.False(t, s.Update("nobody", core.EntityPatch{Alias: &alias}))
}

func TestStore_AddVariation(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, ""))

	assert.True(t, s.AddVariation("John Smith", "Johnny"))
	// Re-adding is a no-op, not a failure.
	assert.True(t, s.AddVariation("John Smith", "Johnny"))
	assert.False(t, s.AddVariation("nobody", "x"))

	e, _ := s.Get("John Smith")
	assert.Equal(t, []string{"Johnny"}, e.Variations)
}

func TestStore_Remove(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, ""))

	assert.True(t, s.Remove("JOHN smith"))
	assert.False(t, s.Remove("John Smith"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_List_FilterByType(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, ""))
	require.True(t, s.Add("Acme Corp", "Org_1", core.TypeOrganization, nil, ""))
	require.True(t, s.Add("Jane Doe", "Person_B", core.TypePerson, nil, ""))

	all := s.List("")
	require.Len(t, all, 3)
	assert.Equal(t, "John Smith", all[0].Original, "mapping order preserved")

	people := s.List(core.TypePerson)
	require.Len(t, people, 2)
	assert.Equal(t, "Jane Doe", people[1].Original)
}

func TestStore_Statistics(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, ""))
	require.True(t, s.Add("Acme Corp", "Org_1", core.TypeOrganization, nil, ""))

	// An entity with no type counts as "other".
	s.Document().Entities = append(s.Document().Entities, core.Entity{Original: "X", Alias: "Y"})

	stats := s.Statistics()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.ByType[core.TypePerson])
	assert.Equal(t, 1, stats.ByType[core.TypeOrganization])
	assert.Equal(t, 1, stats.ByType[core.TypeOther])
}

func TestStore_Validate_DuplicatesViaDirectMutation(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Org_1", core.TypePerson, nil, ""))

	// Bypass Add to plant a duplicate alias; Validate must still see it.
	doc := s.Document()
	doc.Entities = append(doc.Entities, core.Entity{Original: "Acme Corp", Alias: "org_1", Type: core.TypeOrganization})

	report := s.Validate()
	require.False(t, report.Valid)
	assert.Contains(t, report.Issues, `duplicate alias: "org_1"`)
}

func TestStore_Validate_EmptyFields(t *testing.T) {
	s := mapping.NewStore(nil)
	doc := s.Document()
	doc.Entities = append(doc.Entities, core.Entity{Original: "", Alias: "Person_A"})
	doc.Entities = append(doc.Entities, core.Entity{Original: "John", Alias: ""})

	report := s.Validate()
	require.False(t, report.Valid)
	assert.Contains(t, report.Issues, "entity 0: missing original")
	assert.Contains(t, report.Issues, "entity 1: missing alias")
}

func TestStore_Validate_Clean(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("John Smith", "Person_A", core.TypePerson, nil, ""))

	report := s.Validate()
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
}

func TestStore_Merge_Skip(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("Acme Corp", "Org_1", core.TypeOrganization, nil, ""))

	other := mapping.NewStore(nil)
	require.True(t, other.Add("Acme Corp", "Org_9", core.TypeOrganization, nil, ""))
	require.True(t, other.Add("Jane Doe", "Person_B", core.TypePerson, nil, ""))

	result := s.Merge(other.Document(), core.MergeSkip)
	assert.Equal(t, core.MergeResult{Added: 1, Skipped: 1}, result)

	alias, _ := s.Alias("Acme Corp")
	assert.Equal(t, "Org_1", alias, "skip never changes an existing alias")
}

func TestStore_Merge_Overwrite(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("Acme Corp", "Org_1", core.TypeOrganization, nil, ""))

	other := mapping.NewStore(nil)
	require.True(t, other.Add("Acme Corp", "Org_9", core.TypeOrganization, nil, ""))

	result := s.Merge(other.Document(), core.MergeOverwrite)
	assert.Equal(t, core.MergeResult{Overwritten: 1}, result)

	alias, _ := s.Alias("Acme Corp")
	assert.Equal(t, "Org_9", alias)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Merge_AliasConflictSkipped(t *testing.T) {
	s := mapping.NewStore(nil)
	require.True(t, s.Add("Acme Corp", "Org_1", core.TypeOrganization, nil, ""))

	// Different original, colliding alias: the duplicate-alias check
	// rejects the insertion and it counts as skipped.
	other := mapping.NewStore(nil)
	require.True(t, other.Add("Globex", "org_1", core.TypeOrganization, nil, ""))

	result := s.Merge(other.Document(), core.MergeSkip)
	assert.Equal(t, core.MergeResult{Skipped: 1}, result)
	assert.Equal(t, 1, s.Len())
}
