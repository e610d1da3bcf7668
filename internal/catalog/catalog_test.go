package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []Category {
	return []Category{
		{
			ID: "basics", Name: "Basics", Icon: "🎯",
			Lessons: []Lesson{
				{ID: "intro", Title: "Intro", Description: "Getting started", Difficulty: DifficultyBeginner, Category: "basics"},
				{ID: "components", Title: "Components", Description: "Building blocks", Difficulty: DifficultyBeginner, Category: "basics"},
			},
		},
		{
			ID: "advanced", Name: "Advanced", Icon: "🚀",
			Lessons: []Lesson{
				{ID: "rxjs", Title: "RxJS", Description: "Reactive streams", Difficulty: DifficultyAdvanced, Category: "advanced"},
			},
		},
	}
}

func TestDefault_SeedCounts(t *testing.T) {
	c := Default()

	cats := c.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, "basics", cats[0].ID)
	assert.Equal(t, "advanced", cats[1].ID)
	assert.Equal(t, "routing", cats[2].ID)
	assert.Equal(t, 5, c.Total())
	assert.Equal(t, "v1.0.0", c.Version())
}

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLesson_EveryLessonFoundByID(t *testing.T) {
	c := Default()
	for _, want := range c.Lessons() {
		got, ok := c.Lesson(want.ID)
		require.True(t, ok, "lesson %q not found", want.ID)
		assert.Equal(t, want, got)
	}
}

func TestLesson_NotFound(t *testing.T) {
	_, ok := Default().Lesson("nonexistent")
	assert.False(t, ok)
}

func TestLessons_DisplayOrder(t *testing.T) {
	c := New(testCategories())
	var ids []string
	for _, l := range c.Lessons() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"intro", "components", "rxjs"}, ids)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	c := New(testCategories())

	cats := c.Categories()
	cats[0].Lessons[0].Title = "mutated"
	cats[0].Name = "mutated"

	l, ok := c.Lesson("intro")
	require.True(t, ok)
	assert.Equal(t, "Intro", l.Title)
	assert.Equal(t, "Basics", c.Categories()[0].Name)
}

func TestNew_ClonesInput(t *testing.T) {
	input := testCategories()
	c := New(input)
	input[0].Lessons[0].Title = "mutated"

	l, _ := c.Lesson("intro")
	assert.Equal(t, "Intro", l.Title)
}

func TestCategory(t *testing.T) {
	c := New(testCategories())

	cat, ok := c.Category("advanced")
	require.True(t, ok)
	assert.Equal(t, "Advanced", cat.Name)
	assert.Len(t, cat.Lessons, 1)

	_, ok = c.Category("missing")
	assert.False(t, ok)
}

func TestTotal_Empty(t *testing.T) {
	assert.Equal(t, 0, New(nil).Total())
}

func TestByDifficulty(t *testing.T) {
	c := New(testCategories())
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyBeginner, 2},
		{DifficultyIntermediate, 0},
		{DifficultyAdvanced, 1},
	}
	for _, tt := range tests {
		assert.Len(t, c.ByDifficulty(tt.d), tt.want, "ByDifficulty(%q)", tt.d)
	}
}

func TestSearch(t *testing.T) {
	c := New(testCategories())

	assert.Len(t, c.Search(""), 3)
	assert.Len(t, c.Search("  "), 3)

	got := c.Search("REACTIVE")
	require.Len(t, got, 1)
	assert.Equal(t, "rxjs", got[0].ID)

	assert.Empty(t, c.Search("zzz"))
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("intermediate")
	require.NoError(t, err)
	assert.Equal(t, DifficultyIntermediate, d)

	_, err = ParseDifficulty("expert")
	assert.Error(t, err)
}

func TestDifficultyLabel(t *testing.T) {
	assert.Equal(t, "Beginner", DifficultyBeginner.Label())
	assert.Equal(t, "Advanced", DifficultyAdvanced.Label())
	assert.Equal(t, "weird", Difficulty("weird").Label())
}

func TestHasCodeExample(t *testing.T) {
	c := Default()
	for _, l := range c.Lessons() {
		assert.True(t, l.HasCodeExample(), "seed lesson %q should carry a code example", l.ID)
	}
	assert.False(t, Lesson{}.HasCodeExample())
}
