package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeScoreRepository keeps rows in memory. Each call is atomic on its own;
// Transaction gives no isolation, so cross-call consistency relies on the
// service's lock.
type fakeScoreRepository struct {
	mu     sync.Mutex
	rows   map[uint]*Score
	nextID uint

	UpsertFunc func(s *Score) error
}

func newFakeScoreRepository() *fakeScoreRepository {
	return &fakeScoreRepository{rows: map[uint]*Score{}}
}

func (f *fakeScoreRepository) Transaction(_ context.Context, fn func(repo ScoreRepository) error) error {
	return fn(f)
}

func (f *fakeScoreRepository) Upsert(_ context.Context, s *Score) error {
	if f.UpsertFunc != nil {
		if err := f.UpsertFunc(s); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.EventID == s.EventID && r.AthleteID == s.AthleteID && r.Category == s.Category {
			r.JudgeScores = s.JudgeScores
			r.TotalScore = s.TotalScore
			r.IsRetired = s.IsRetired
			s.ID = r.ID
			return nil
		}
	}
	f.nextID++
	s.ID = f.nextID
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeScoreRepository) FindOne(_ context.Context, eventID, athleteID uint, category string) (*Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.EventID == eventID && r.AthleteID == athleteID && r.Category == category {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeScoreRepository) filter(keep func(*Score) bool) []Score {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Score
	for _, r := range f.rows {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeScoreRepository) FindByEventAndCategory(_ context.Context, eventID uint, category string) ([]Score, error) {
	return f.filter(func(s *Score) bool { return s.EventID == eventID && s.Category == category }), nil
}

func (f *fakeScoreRepository) FindByEvent(_ context.Context, eventID uint) ([]Score, error) {
	rows := f.filter(func(s *Score) bool { return s.EventID == eventID })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows, nil
}

func (f *fakeScoreRepository) SetRetired(_ context.Context, id uint, retired bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].IsRetired = retired
	return nil
}

func (f *fakeScoreRepository) SaveAll(_ context.Context, rows []Score) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		if stored, ok := f.rows[r.ID]; ok {
			stored.Rank = r.Rank
			stored.IsChampion = r.IsChampion
		}
	}
	return nil
}

type fakeRecorder struct {
	mu         sync.Mutex
	submitted  map[string]int
	recomputes int
	ties       int
}

func (f *fakeRecorder) ScoreSubmitted(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted == nil {
		f.submitted = map[string]int{}
	}
	f.submitted[category]++
}

func (f *fakeRecorder) RankRecomputed(time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recomputes++
}

func (f *fakeRecorder) LineupGenerated() {}

func (f *fakeRecorder) TiesDetected(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ties += n
}

type stubEvents map[uint]*event.Event

func (s stubEvents) GetEventByID(id uint) (*event.Event, error) { return s[id], nil }

type stubAthletes map[uint]*athlete.Athlete

func (s stubAthletes) GetAthleteByID(id uint) (*athlete.Athlete, error) { return s[id], nil }

func (s stubAthletes) GetAthletesByIDs(ids []uint) (map[uint]*athlete.Athlete, error) {
	out := map[uint]*athlete.Athlete{}
	for _, id := range ids {
		if a, ok := s[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

// lookups returns event 1 judged by Kim and Ole and athletes 1..40.
func lookups() (stubEvents, stubAthletes) {
	ev := &event.Event{Judges: []event.Judge{{Name: "Kim"}, {Name: "Ole"}}}
	ev.ID = 1
	athletes := stubAthletes{}
	for id := uint(1); id <= 40; id++ {
		a := &athlete.Athlete{Name: fmt.Sprintf("Athlete %d", id)}
		a.ID = id
		a.SetBib(fmt.Sprint(100 + id))
		athletes[id] = a
	}
	return stubEvents{1: ev}, athletes
}

func newService(t *testing.T) (*ScoreService, *fakeScoreRepository, *fakeRecorder) {
	t.Helper()
	events, athletes := lookups()
	repo := newFakeScoreRepository()
	rec := &fakeRecorder{}
	return NewScoreService(repo, events, athletes, rec), repo, rec
}

func submit(t *testing.T, s *ScoreService, athleteID uint, category string, judges ...float64) *Score {
	t.Helper()
	got, err := s.Submit(context.Background(), SubmitRequest{EventID: 1, AthleteID: athleteID, Category: category, JudgeScores: judges})
	require.NoError(t, err)
	return got
}

func TestSubmitAggregatesAndRanks(t *testing.T) {
	s, repo, m := newService(t)

	first := submit(t, s, 1, "Classic", 3, 4, 5, 6, 7)
	assert.Equal(t, 15.0, first.TotalScore)
	assert.Equal(t, 1, first.Rank)
	assert.True(t, first.IsChampion)

	second := submit(t, s, 2, "Classic", 1, 2, 3, 4, 5)
	assert.Equal(t, 9.0, second.TotalScore)
	assert.Equal(t, 1, second.Rank)

	stored, _ := repo.FindOne(context.Background(), 1, 1, "Classic")
	assert.Equal(t, 2, stored.Rank)
	assert.False(t, stored.IsChampion)

	again := submit(t, s, 1, "Classic", 1, 1, 1, 1, 1)
	assert.Equal(t, 3.0, again.TotalScore)
	assert.Equal(t, 1, again.Rank)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, repo.rows, 2)

	assert.Equal(t, 3, m.submitted["Classic"])
	assert.Equal(t, 3, m.recomputes)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		req  SubmitRequest
		want apperror.Kind
	}{
		{"blank category", SubmitRequest{EventID: 1, AthleteID: 1, Category: "  "}, apperror.KindValidation},
		{"too many judges", SubmitRequest{EventID: 1, AthleteID: 1, Category: "A", JudgeScores: make([]float64, 16)}, apperror.KindValidation},
		{"unknown event", SubmitRequest{EventID: 9, AthleteID: 1, Category: "A"}, apperror.KindNotFound},
		{"unknown athlete", SubmitRequest{EventID: 1, AthleteID: 99, Category: "A"}, apperror.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, _ := newService(t)
			_, err := s.Submit(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperror.KindOf(err))
			assert.Empty(t, repo.rows)
		})
	}
}

func TestSubmitStoreFailureIsUnexpected(t *testing.T) {
	s, repo, _ := newService(t)
	repo.UpsertFunc = func(*Score) error { return fmt.Errorf("connection reset") }

	_, err := s.Submit(context.Background(), SubmitRequest{EventID: 1, AthleteID: 1, Category: "A", JudgeScores: []float64{1}})

	require.Error(t, err)
	assert.Equal(t, apperror.KindUnexpected, apperror.KindOf(err))
}

func TestRetireExcludesFromRanking(t *testing.T) {
	s, repo, _ := newService(t)
	submit(t, s, 1, "Bikini", 1, 1, 1)
	submit(t, s, 2, "Bikini", 2, 2, 2)

	retired := true
	got, err := s.SetRetired(context.Background(), RetireRequest{EventID: 1, AthleteID: 1, Category: "Bikini", IsRetired: &retired})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Rank)
	assert.True(t, got.IsRetired)
	assert.Equal(t, 3.0, got.TotalScore)

	other, _ := repo.FindOne(context.Background(), 1, 2, "Bikini")
	assert.Equal(t, 1, other.Rank)
	assert.True(t, other.IsChampion)

	// Resubmitting reinstates.
	back := submit(t, s, 1, "Bikini", 1, 1, 1)
	assert.False(t, back.IsRetired)
	assert.Equal(t, 1, back.Rank)

	_, err = s.SetRetired(context.Background(), RetireRequest{EventID: 1, AthleteID: 3, Category: "Bikini", IsRetired: &retired})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestRetireValidatesBeforeLocking(t *testing.T) {
	retired := true
	tests := []struct {
		name     string
		req      RetireRequest
		wantKind apperror.Kind
		wantMsg  string
	}{
		{"blank category", RetireRequest{EventID: 1, AthleteID: 1, Category: "  ", IsRetired: &retired}, apperror.KindValidation, "Category is required"},
		{"unknown event", RetireRequest{EventID: 9, AthleteID: 1, Category: "Bikini", IsRetired: &retired}, apperror.KindNotFound, "Event 9 not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, rec := newService(t)
			_, err := s.SetRetired(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, rec.recomputes)
			assert.Zero(t, s.locks.size())
		})
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	s, repo, _ := newService(t)
	submit(t, s, 1, "Men", 5, 5, 5, 5, 5)
	submit(t, s, 2, "Men", 4, 4, 4, 4, 4)
	submit(t, s, 3, "Men", 5, 5, 5, 5, 5)
	submit(t, s, 4, "Men")

	first, err := s.Recompute(context.Background(), 1, "Men")
	require.NoError(t, err)
	snapshot := repo.filter(func(*Score) bool { return true })

	second, err := s.Recompute(context.Background(), 1, "Men")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, repo.filter(func(*Score) bool { return true }))

	ranks := map[uint]int{}
	for _, r := range second {
		ranks[r.AthleteID] = r.Rank
	}
	assert.Equal(t, map[uint]int{2: 1, 1: 2, 3: 3, 4: 0}, ranks)

	_, err = s.Recompute(context.Background(), 1, "")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestConcurrentSubmitsKeepRanksConsistent(t *testing.T) {
	s, repo, _ := newService(t)

	var wg sync.WaitGroup
	for id := uint(1); id <= 40; id++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			v := float64(id%7 + 1)
			_, err := s.Submit(context.Background(), SubmitRequest{
				EventID: 1, AthleteID: id, Category: "Open", JudgeScores: []float64{v, v, v, v, v},
			})
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	rows, _ := repo.FindByEventAndCategory(context.Background(), 1, "Open")
	require.Len(t, rows, 40)
	want := map[uint]int{}
	for _, r := range AssignRanks(rows) {
		want[r.ID] = r.Rank
	}
	for _, r := range rows {
		assert.Equal(t, want[r.ID], r.Rank, "row %d", r.ID)
	}
	assert.Equal(t, 0, s.locks.size())
}

func TestStandingsAndTies(t *testing.T) {
	s, _, m := newService(t)
	submit(t, s, 1, "Men", 2, 2, 2)
	submit(t, s, 2, "Men", 1, 1, 1)
	submit(t, s, 3, "Men", 2, 2, 2)
	submit(t, s, 4, "Men")
	submit(t, s, 5, "Bikini", 3)

	standings, err := s.Standings(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, standings, 5)
	assert.Equal(t, "Bikini", standings[0].Category)
	var men []uint
	for _, st := range standings[1:] {
		men = append(men, st.AthleteID)
	}
	assert.Equal(t, []uint{2, 1, 3, 4}, men)
	assert.Equal(t, "Athlete 2", standings[1].Athlete.Name)
	assert.Equal(t, "102", standings[1].Athlete.BibNumber)
	assert.False(t, standings[1].IsTied)
	assert.True(t, standings[2].IsTied)
	assert.True(t, standings[3].IsTied)
	assert.False(t, standings[4].IsTied)

	ties, err := s.Ties(context.Background(), 1, "Men")
	require.NoError(t, err)
	assert.Equal(t, []Tie{{Category: "Men", TotalScore: 6, AthleteIDs: []uint{1, 3}}}, ties)
	assert.Equal(t, 1, m.ties)

	ties, err = s.Ties(context.Background(), 1, "Bikini")
	require.NoError(t, err)
	assert.Empty(t, ties)
}

func TestScoreEndpoints(t *testing.T) {
	s, _, _ := newService(t)
	r := gin.New()
	NewScoreController(s).Mount(r.Group("/api"), func(c *gin.Context) { c.Next() })

	do := func(method, path string, body any) *httptest.ResponseRecorder {
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

	w := do(http.MethodPost, "/api/scores", map[string]any{
		"event_id": 1, "athlete_id": 1, "category": "Classic", "judge_scores": []float64{10, 20, 30, 40, 50},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Data Score `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 90.0, body.Data.TotalScore)
	assert.Equal(t, 1, body.Data.Rank)

	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/api/scores", map[string]any{"event_id": 1}).Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodPost, "/api/scores", map[string]any{
		"event_id": 2, "athlete_id": 1, "category": "Classic",
	}).Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/api/scores/1/ties", nil).Code)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/scores/1/ties?category=Classic", nil).Code)
	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/scores/1/recompute", map[string]any{"category": "Classic"}).Code)
	assert.Equal(t, http.StatusOK, do(http.MethodPatch, "/api/scores/retire", map[string]any{
		"event_id": 1, "athlete_id": 1, "category": "Classic", "is_retired": true,
	}).Code)

	w = do(http.MethodGet, "/api/scores/1/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	wb, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows("Classic")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rank", "Bib", "Name", "Judge 1 (Kim)", "Judge 2 (Ole)", "Judge 3", "Judge 4", "Judge 5", "Total", "Champion", "Retired", "Tied"}, rows[0])
	assert.Equal(t, []string{"", "101", "Athlete 1", "10", "20", "30", "40", "50", "90", "", "Yes"}, rows[1])
}
