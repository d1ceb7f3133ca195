package lineup

import (
	"math/rand"
	"testing"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reg(athleteID uint, bib string, categories ...string) registration.Registration {
	a := &athlete.Athlete{Name: "athlete"}
	a.ID = athleteID
	a.SetBib(bib)
	entries := make([]registration.CategoryEntry, len(categories))
	for i, c := range categories {
		entries[i] = registration.CategoryEntry{DisplayName: c}
	}
	r := registration.Registration{AthleteID: athleteID, Athlete: a, Categories: entries}
	return r
}

func TestFlatten(t *testing.T) {
	regs := []registration.Registration{
		reg(1, "12", "Bikini", "Wellness"),
		{AthleteID: 2, Categories: []registration.CategoryEntry{{DisplayName: "Bikini"}}},
		reg(3, "", "Classic"),
	}

	got := Flatten(regs)

	assert.Equal(t, []Entry{
		{AthleteID: 1, BibNumber: "12", Category: "Bikini"},
		{AthleteID: 1, BibNumber: "12", Category: "Wellness"},
		{AthleteID: 3, BibNumber: "", Category: "Classic"},
	}, got)
}

func TestCompareBib(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{" 7", "7", -1},
		{"7", "07", 1},
		{"", "1", -1},
		{"A1", "1", -1},
		{"1", "A1", 1},
		{"A1", "B1", -1},
		{"", "A1", -1},
		{"5", "5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, compareBib(tt.a, tt.b), "compareBib(%q, %q)", tt.a, tt.b)
	}
}

func TestOrderSortsByCategoryThenBib(t *testing.T) {
	entries := []Entry{
		{AthleteID: 1, BibNumber: "10", Category: "Men Open"},
		{AthleteID: 2, BibNumber: "2", Category: "Men Open"},
		{AthleteID: 3, BibNumber: "3", Category: "Bikini"},
		{AthleteID: 4, BibNumber: "", Category: "Men Open"},
		{AthleteID: 5, BibNumber: "X9", Category: "Men Open"},
		{AthleteID: 6, BibNumber: "1", Category: "Bikini"},
	}

	items := Order(entries)

	var got []uint
	for i, it := range items {
		assert.Equal(t, i+1, it.Order)
		assert.True(t, it.IsDisplay)
		assert.False(t, it.IsRetired)
		got = append(got, it.AthleteID)
	}
	assert.Equal(t, []uint{6, 3, 4, 5, 2, 1}, got)
}

func TestOrderIsDeterministic(t *testing.T) {
	entries := []Entry{
		{AthleteID: 9, BibNumber: "4", Category: "Classic"},
		{AthleteID: 8, BibNumber: "4", Category: "Classic"},
		{AthleteID: 7, BibNumber: "", Category: "Classic"},
		{AthleteID: 6, BibNumber: "", Category: "Classic"},
		{AthleteID: 5, BibNumber: "31", Category: "Bikini"},
		{AthleteID: 4, BibNumber: "003", Category: "Bikini"},
		{AthleteID: 3, BibNumber: "3", Category: "Bikini"},
	}
	want := Order(entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]Entry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		require.Equal(t, want, Order(shuffled))
	}
	assert.Equal(t, uint(4), want[0].AthleteID)
	assert.Equal(t, uint(3), want[1].AthleteID)
	assert.Equal(t, uint(6), want[3].AthleteID)
	assert.Equal(t, uint(8), want[5].AthleteID)
}

func TestRenumberAndCategories(t *testing.T) {
	items := Renumber([]Item{
		{Order: 9, AthleteID: 1, Category: "B"},
		{Order: 3, AthleteID: 2, Category: "A"},
		{Order: 1, AthleteID: 3, Category: "B"},
	})
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].Order, items[1].Order, items[2].Order})
	assert.Equal(t, []string{"B", "A"}, Categories(items))

	assert.Equal(t, []string{"A", "B"}, Categories([]Item{
		{Order: 2, Category: "B"},
		{Order: 1, Category: "A"},
	}))
	assert.Nil(t, Categories(nil))
}
