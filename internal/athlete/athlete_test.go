package athlete

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAthleteRepository struct {
	athletes map[uint]*Athlete
	nextID   uint
}

func newFakeAthleteRepository() *fakeAthleteRepository {
	return &fakeAthleteRepository{athletes: map[uint]*Athlete{}, nextID: 1}
}

func (f *fakeAthleteRepository) CreateAthlete(a *Athlete) error {
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.athletes[a.ID] = &cp
	return nil
}

func (f *fakeAthleteRepository) GetAthleteByID(id uint) (*Athlete, error) {
	if a, ok := f.athletes[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAthleteRepository) GetAthletesByIDs(ids []uint) (map[uint]*Athlete, error) {
	out := map[uint]*Athlete{}
	for _, id := range ids {
		if a, ok := f.athletes[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (f *fakeAthleteRepository) ListAthletes(search string) ([]Athlete, error) {
	var out []Athlete
	for _, a := range f.athletes {
		if search == "" || strings.Contains(strings.ToLower(a.Name), strings.ToLower(search)) || a.Bib() == search || a.Phone == search {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAthleteRepository) UpdateAthlete(a *Athlete) error {
	cp := *a
	f.athletes[a.ID] = &cp
	return nil
}

func (f *fakeAthleteRepository) DeleteAthlete(id uint) error {
	delete(f.athletes, id)
	return nil
}

func (f *fakeAthleteRepository) FindByBibNumber(bib string) (*Athlete, error) {
	for _, a := range f.athletes {
		if a.Bib() == bib {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAthleteRepository) FindByPhone(phone string) (*Athlete, error) {
	for _, a := range f.athletes {
		if a.Phone == phone {
			return a, nil
		}
	}
	return nil, nil
}

func TestAgeOn(t *testing.T) {
	birth := time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), 29},
		{"on birthday", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 30},
		{"earlier month", time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC), 29},
		{"later month", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeOn(birth, tt.now))
		})
	}
}

func TestSetBibClearsEmpty(t *testing.T) {
	a := &Athlete{}
	a.SetBib(" 12 ")
	assert.Equal(t, "12", a.Bib())
	a.SetBib("   ")
	assert.Nil(t, a.BibNumber)
	assert.Equal(t, "", a.Bib())
}

func newAthleteRouter() (*gin.Engine, *fakeAthleteRepository) {
	repo := newFakeAthleteRepository()
	ac := NewAthleteController(repo)
	ac.now = func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }
	r := gin.New()
	ac.Mount(r.Group("/api"), func(c *gin.Context) { c.Next() })
	return r, repo
}

func send(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fakeAthletePayload(bib, phone string) map[string]any {
	return map[string]any{
		"name":                 gofakeit.Name(),
		"gender":               "female",
		"bib_number":           bib,
		"phone":                phone,
		"nationality":          gofakeit.Country(),
		"id_type":              "passport",
		"id_number":            gofakeit.Numerify("P########"),
		"birthdate":            "2000-03-10T00:00:00Z",
		"registration_channel": "online",
	}
}

func TestCreateAthlete(t *testing.T) {
	r, repo := newAthleteRouter()

	w := send(r, http.MethodPost, "/api/athletes", fakeAthletePayload("101", "13800000001"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Data Athlete `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Data.Age)
	assert.Equal(t, 24, *body.Data.Age)
	assert.Len(t, repo.athletes, 1)
}

func TestCreateAthleteRejectsDuplicates(t *testing.T) {
	r, _ := newAthleteRouter()
	require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/athletes", fakeAthletePayload("101", "1")).Code)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"same bib", fakeAthletePayload("101", "2")},
		{"same phone", fakeAthletePayload("102", "1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/api/athletes", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateAthleteValidation(t *testing.T) {
	r, _ := newAthleteRouter()
	payload := fakeAthletePayload("7", "3")
	payload["gender"] = "unknown"
	delete(payload, "phone")

	w := send(r, http.MethodPost, "/api/athletes", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Gender")
	assert.Contains(t, w.Body.String(), "Phone")
}

func TestUpdateAndDeleteAthlete(t *testing.T) {
	r, repo := newAthleteRouter()
	require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/athletes", fakeAthletePayload("5", "55")).Code)
	require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/athletes", fakeAthletePayload("6", "66")).Code)

	w := send(r, http.MethodPut, "/api/athletes/1", map[string]any{"bib_number": "6"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "bib taken by athlete 2")

	w = send(r, http.MethodPut, "/api/athletes/1", map[string]any{"bib_number": "8", "drug_test": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "8", repo.athletes[1].Bib())
	assert.True(t, repo.athletes[1].DrugTest)

	assert.Equal(t, http.StatusNotFound, send(r, http.MethodPut, "/api/athletes/99", map[string]any{"name": "x"}).Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodDelete, "/api/athletes/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, send(r, http.MethodGet, "/api/athletes/1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodGet, "/api/athletes/abc", nil).Code)
}
