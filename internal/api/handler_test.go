package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"job-board/internal/board"
	"job-board/internal/errors"
	"job-board/internal/jobcard"
	"job-board/internal/models"
)

var testNow = time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

type mockJobStore struct {
	jobs []models.Job
}

func (m *mockJobStore) All() []models.Job {
	return m.jobs
}

func (m *mockJobStore) Get(id string) (models.Job, error) {
	for _, job := range m.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, errors.NotFound(fmt.Sprintf("job %q", id), nil)
}

func newTestRouter(opts Options) (*gin.Engine, *board.SavedSet) {
	gin.SetMode(gin.TestMode)

	store := &mockJobStore{
		jobs: []models.Job{
			{
				ID:         "1",
				Title:      "Test Job",
				Company:    "Test Company",
				Location:   "Remote",
				PostedDate: "2024-03-28",
				Salary:     85000,
			},
			{
				ID:         "2",
				Title:      "Golang Developer",
				Company:    "Tech Corp",
				Location:   "Berlin",
				PostedDate: "2024-02-01",
				IsRemote:   true,
			},
		},
	}
	saved := board.NewSavedSet()
	renderer := jobcard.NewRenderer(zerolog.Nop()).WithClock(func() time.Time { return testNow })

	handler := NewHandler(store, saved, renderer, opts)
	handler.now = func() time.Time { return testNow }

	r := gin.New()
	handler.RegisterRoutes(r)
	return r, saved
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	if err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return doc
}

func TestGetJobs(t *testing.T) {
	r, _ := newTestRouter(Options{})

	w := serve(r, "GET", "/api/jobs")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response []models.Job
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Errorf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Errorf("Expected 2 jobs, got %d", len(response))
	}
}

func TestGetJob(t *testing.T) {
	r, _ := newTestRouter(Options{})

	w := serve(r, "GET", "/api/jobs/2")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	w = serve(r, "GET", "/api/jobs/99")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestBoard(t *testing.T) {
	r, _ := newTestRouter(Options{Title: "Open roles", OnApply: func(string) {}})

	w := serve(r, "GET", "/jobs")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	doc := parseHTML(t, w)

	if n := doc.Find("div.job-card").Length(); n != 2 {
		t.Errorf("Expected 2 cards, got %d", n)
	}
	if n := doc.Find("form.job-card-apply").Length(); n != 2 {
		t.Errorf("Expected apply controls on every card, got %d", n)
	}
	if n := doc.Find(".detail-salary").Length(); n != 0 {
		t.Errorf("Salary shown although disabled, got %d rows", n)
	}
}

func TestBoardWithoutApplyCallback(t *testing.T) {
	r, _ := newTestRouter(Options{ShowSalary: true})

	doc := parseHTML(t, serve(r, "GET", "/jobs"))
	if n := doc.Find("form.job-card-apply").Length(); n != 0 {
		t.Errorf("Expected no apply controls, got %d", n)
	}
	if n := doc.Find("form.job-card-save").Length(); n != 2 {
		t.Errorf("Expected save controls, got %d", n)
	}
	if got := doc.Find(`[data-job-id="1"] .detail-salary`).Text(); got != "$85K" {
		t.Errorf("Expected salary $85K, got %q", got)
	}
}

func TestCardAndDetails(t *testing.T) {
	r, _ := newTestRouter(Options{})

	w := serve(r, "GET", "/jobs/2/card")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	doc := parseHTML(t, w)
	if got := doc.Find(".job-card-title").Text(); got != "Golang Developer" {
		t.Errorf("Unexpected title %q", got)
	}
	if href, _ := doc.Find("a.job-card-view").Attr("href"); href != "/jobs/2" {
		t.Errorf("Expected details link /jobs/2, got %q", href)
	}

	w = serve(r, "GET", "/jobs/2")
	if w.Code != http.StatusOK {
		t.Errorf("Expected details page, got %d", w.Code)
	}

	for _, path := range []string{"/jobs/99", "/jobs/99/card"} {
		if w := serve(r, "GET", path); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
		}
	}
}

func TestApply(t *testing.T) {
	var applied []string
	r, saved := newTestRouter(Options{OnApply: func(id string) { applied = append(applied, id) }})

	w := serve(r, "POST", "/jobs/1/apply")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Errorf("Apply must not navigate, got Location %q", loc)
	}
	if len(applied) != 1 || applied[0] != "1" {
		t.Errorf("Expected one apply call with id 1, got %v", applied)
	}
	if saved.Len() != 0 {
		t.Error("Apply must not touch saved state")
	}
}

func TestApplyWithoutCallback(t *testing.T) {
	r, saved := newTestRouter(Options{})

	w := serve(r, "POST", "/jobs/1/apply")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if saved.Len() != 0 {
		t.Error("Expected no state change")
	}
}

func TestSaveToggles(t *testing.T) {
	r, saved := newTestRouter(Options{})

	w := serve(r, "POST", "/jobs/2/save")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Header().Get("X-Job-Saved") != "true" || !saved.Has("2") {
		t.Error("Expected job 2 to be saved")
	}

	doc := parseHTML(t, serve(r, "GET", "/jobs/2/card"))
	if label, _ := doc.Find("form.job-card-save button").Attr("aria-label"); label != "Remove from saved" {
		t.Errorf("Expected saved label, got %q", label)
	}

	w = serve(r, "POST", "/jobs/2/save")
	if w.Header().Get("X-Job-Saved") != "false" || saved.Has("2") {
		t.Error("Expected job 2 to be unsaved")
	}
}

func TestActionUnknownJob(t *testing.T) {
	r, _ := newTestRouter(Options{OnApply: func(string) { t.Error("Unexpected apply") }})

	for _, path := range []string{"/jobs/99/apply", "/jobs/99/save"} {
		if w := serve(r, "POST", path); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
		}
	}
}

func TestActionMiddlewareRunsFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &mockJobStore{jobs: []models.Job{{ID: "1"}}}
	handler := NewHandler(store, board.NewSavedSet(), jobcard.NewRenderer(zerolog.Nop()), Options{})

	r := gin.New()
	handler.RegisterRoutes(r, func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	})

	if w := serve(r, "POST", "/jobs/1/save"); w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
	if w := serve(r, "GET", "/jobs/1/card"); w.Code != http.StatusOK {
		t.Errorf("GET routes must skip action middleware, got %d", w.Code)
	}
}

func TestCardLinksResolveForEscapedIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if _, err := board.NewCatalog([]models.Job{{ID: "a/b"}}); err == nil {
		t.Fatal("Catalog must reject ids the router cannot match")
	}

	id := "senior dev%2024?"
	catalog, err := board.NewCatalog([]models.Job{{ID: id, Title: "Senior Dev", PostedDate: "2024-03-28"}})
	if err != nil {
		t.Fatalf("Expected catalog, got %v", err)
	}
	renderer := jobcard.NewRenderer(zerolog.Nop()).WithClock(func() time.Time { return testNow })
	handler := NewHandler(catalog, board.NewSavedSet(), renderer, Options{OnApply: func(string) {}})
	r := gin.New()
	handler.RegisterRoutes(r)

	w := serve(r, "GET", jobcard.DetailsPath(id)+"/card")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected card, got %d", w.Code)
	}
	doc := parseHTML(t, w)
	href, _ := doc.Find("a.job-card-view").Attr("href")
	apply, _ := doc.Find("form.job-card-apply").Attr("action")
	save, _ := doc.Find("form.job-card-save").Attr("action")

	for _, tc := range []struct {
		method string
		path   string
		want   int
	}{
		{"GET", href, http.StatusOK},
		{"POST", apply, http.StatusNoContent},
		{"POST", save, http.StatusNoContent},
	} {
		if w := serve(r, tc.method, tc.path); w.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, w.Code)
		}
	}
}
