package recipe

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

func newCatalog(t *testing.T, names ...string) *MemoryCatalog {
	t.Helper()
	c := NewMemoryCatalog(logger.New(logger.LevelOff, nil))
	for _, n := range names {
		c.Add(domain.NewRecipe(n))
	}
	return c
}

func listNames(c *MemoryCatalog) []string {
	var out []string
	for _, name := range c.List() {
		out = append(out, name)
	}
	return out
}

func TestCatalogAddSortsByName(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"two recipes", []string{"Banana Bread", "Apple Pie"}, []string{"Apple Pie", "Banana Bread"}},
		{"already sorted", []string{"A", "B", "C"}, []string{"A", "B", "C"}},
		{"ordinal case", []string{"apple", "Banana", "Apple"}, []string{"Apple", "Banana", "apple"}},
		{"single", []string{"Soup"}, []string{"Soup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCatalog(t, tt.input...)
			if diff := cmp.Diff(tt.want, listNames(c)); diff != "" {
				t.Fatalf("list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogSortedAfterEveryAdd(t *testing.T) {
	c := newCatalog(t)
	for _, n := range []string{"m", "c", "x", "a", "c", "z", "b"} {
		c.Add(domain.NewRecipe(n))
		names := listNames(c)
		for i := 1; i < len(names); i++ {
			require.LessOrEqual(t, names[i-1], names[i], "not sorted after adding %q: %v", n, names)
		}
	}
}

func TestCatalogDuplicateNamesKeepInsertionOrder(t *testing.T) {
	c := newCatalog(t)
	first := domain.NewRecipe("Pancakes")
	first.ID = "first"
	second := domain.NewRecipe("Pancakes")
	second.ID = "second"

	c.Add(first)
	c.Add(domain.NewRecipe("Waffles"))
	c.Add(second)
	c.Add(domain.NewRecipe("Crepes"))

	got1, err := c.Get(2)
	require.NoError(t, err)
	got2, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "first", got1.ID)
	assert.Equal(t, "second", got2.ID)
}

func TestCatalogListPositions(t *testing.T) {
	c := newCatalog(t, "Banana Bread", "Apple Pie", "Carrot Cake")

	var positions []int
	for pos := range c.List() {
		positions = append(positions, pos)
	}
	assert.Equal(t, []int{1, 2, 3}, positions)

	// The sequence is restartable.
	assert.Equal(t, listNames(c), listNames(c))

	// Early break stops iteration.
	count := 0
	for range c.List() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestCatalogListEmpty(t *testing.T) {
	c := newCatalog(t)
	assert.Empty(t, listNames(c))
	assert.Zero(t, c.Len())
}

func TestCatalogGet(t *testing.T) {
	c := newCatalog(t, "Banana Bread", "Apple Pie")

	tests := []struct {
		position int
		want     string
		wantErr  error
	}{
		{1, "Apple Pie", nil},
		{2, "Banana Bread", nil},
		{3, "", domain.ErrOutOfRange},
		{0, "", domain.ErrOutOfRange},
		{-1, "", domain.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("position %d", tt.position), func(t *testing.T) {
			r, err := c.Get(tt.position)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Name)
		})
	}
}

func TestCatalogGetEveryPosition(t *testing.T) {
	names := []string{"e", "d", "c", "b", "a"}
	for size := 1; size <= len(names); size++ {
		c := newCatalog(t, names[:size]...)
		want := listNames(c)
		for pos := 1; pos <= size; pos++ {
			r, err := c.Get(pos)
			require.NoError(t, err)
			assert.Equal(t, want[pos-1], r.Name)
		}
		_, err := c.Get(size + 1)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)
	}
}

func TestCatalogSearch(t *testing.T) {
	c := newCatalog(t, "Banana Bread", "Apple Pie", "Garlic Bread")

	tests := []struct {
		query string
		want  map[int]string
	}{
		{"bread", map[int]string{2: "Banana Bread", 3: "Garlic Bread"}},
		{"PIE", map[int]string{1: "Apple Pie"}},
		{"  apple ", map[int]string{1: "Apple Pie"}},
		{"soup", map[int]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := map[int]string{}
			for pos, name := range c.Search(tt.query) {
				got[pos] = name
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSamples(t *testing.T) {
	samples := Samples()
	require.Len(t, samples, 2)
	for _, r := range samples {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Ingredients, r.Name)
		assert.NotEmpty(t, r.Steps, r.Name)
		assert.Positive(t, r.TotalCalories(), r.Name)
	}

	// Fresh values on every call.
	Samples()[0].Scale(0)
	assert.Positive(t, Samples()[0].TotalCalories())
}
