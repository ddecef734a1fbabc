package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agenda-ufu/agenda/internal/auth"
	"github.com/agenda-ufu/agenda/internal/handlers"
	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/router"
	"github.com/agenda-ufu/agenda/internal/session"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/testdb"
	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn := testdb.Open(t)
	users := store.NewUsers(conn)
	sessions := session.NewStore(time.Hour)
	authService := auth.NewService(users, "@ufu.br")

	deps := router.Deps{
		Auth:        handlers.NewAuthHandler(authService, sessions, users, handlers.CookieConfig{MaxAge: 3600}),
		Disciplines: handlers.NewDisciplineHandler(store.NewDisciplines(conn)),
		Events:      handlers.NewEventHandler(store.NewRepository[models.Event](conn)),
		Tasks:       handlers.NewTaskHandler(store.NewRepository[models.Task](conn)),
		Goals:       handlers.NewStudyGoalHandler(store.NewRepository[models.StudyGoal](conn)),
		Reminders:   handlers.NewReminderHandler(store.NewRepository[models.Reminder](conn)),
		Meetings:    handlers.NewMeetingHandler(store.NewRepository[models.Meeting](conn)),
		Sessions:    sessions,
		Users:       users,
	}

	return router.New(deps, []string{"http://localhost:3000"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

// signupAndLogin registers a user and returns the session cookie.
func signupAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"first_name":"Ana","last_name":"Silva","password":"Abc123!@"}`, email)

	if w := doJSON(t, r, http.MethodPost, "/api/auth/signup", body, ""); w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}

	login := fmt.Sprintf(`{"email":%q,"password":"Abc123!@"}`, email)
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", login, "")

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "agenda_session" {
			return c.Name + "=" + c.Value
		}
	}

	t.Fatal("login response carried no session cookie")
	return ""
}

func TestSignupValidation(t *testing.T) {
	r := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"email":"x@ufu.br","first_name":"Ana","last_name":"Silva","password":"Abc123!@"}`, http.StatusCreated},
		{"weak password", `{"email":"y@ufu.br","first_name":"Ana","last_name":"Silva","password":"abc"}`, http.StatusBadRequest},
		{"foreign domain", `{"email":"x@gmail.com","first_name":"Ana","last_name":"Silva","password":"Abc123!@"}`, http.StatusBadRequest},
		{"duplicate", `{"email":"X@ufu.br","first_name":"Ana","last_name":"Silva","password":"Abc123!@"}`, http.StatusBadRequest},
		{"missing fields", `{"email":"z@ufu.br"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(t, r, http.MethodPost, "/api/auth/signup", tt.body, ""); w.Code != tt.want {
				t.Errorf("got %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestSignupResponseOmitsPasswordHash(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email":"x@ufu.br","first_name":"Ana","last_name":"Silva","password":"Abc123!@"}`, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}

	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("response leaks password material: %s", w.Body.String())
	}
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/api/auth/user", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	cookie := signupAndLogin(t, r, "ana@ufu.br")

	w := doJSON(t, r, http.MethodGet, "/api/auth/user", "", cookie)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d: %s", w.Code, w.Body.String())
	}

	var user struct {
		Email string `json:"email"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode user: %v", err)
	}

	if user.Email != "ana@ufu.br" {
		t.Errorf("expected ana@ufu.br, got %q", user.Email)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookie); w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/auth/user", "", cookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}

	// Logging out twice is fine.
	if w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookie); w.Code != http.StatusOK {
		t.Fatalf("repeated logout failed: %d", w.Code)
	}
}

func TestWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	r := newTestServer(t)

	signupAndLogin(t, r, "ana@ufu.br")

	wrong := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"ana@ufu.br","password":"Nope123!@"}`, "")
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"ghost@ufu.br","password":"Abc123!@"}`, "")

	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", wrong.Code, unknown.Code)
	}

	if wrong.Body.String() != unknown.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q", wrong.Body.String(), unknown.Body.String())
	}
}

func TestResourceOwnership(t *testing.T) {
	r := newTestServer(t)

	anaCookie := signupAndLogin(t, r, "ana@ufu.br")
	beaCookie := signupAndLogin(t, r, "bea@ufu.br")

	w := doJSON(t, r, http.MethodPost, "/api/disciplines",
		`{"name":"Linear Algebra","professor":"Dr. Souza"}`, anaCookie)

	if w.Code != http.StatusCreated {
		t.Fatalf("create discipline failed: %d %s", w.Code, w.Body.String())
	}

	var created models.Discipline

	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode discipline: %v", err)
	}

	if created.Color != "#3B82F6" {
		t.Errorf("expected default color, got %q", created.Color)
	}

	w = doJSON(t, r, http.MethodGet, "/api/disciplines", "", beaCookie)

	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}

	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty list for other user, got %s", body)
	}

	path := fmt.Sprintf("/api/disciplines/%d", created.ID)

	if w := doJSON(t, r, http.MethodPatch, path, `{"name":"Hijacked"}`, beaCookie); w.Code != http.StatusNotFound {
		t.Errorf("foreign update: expected 404, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, path, "", beaCookie); w.Code != http.StatusNotFound {
		t.Errorf("foreign delete: expected 404, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/disciplines", "", anaCookie); !strings.Contains(w.Body.String(), "Linear Algebra") {
		t.Errorf("owner should still see the discipline: %s", w.Body.String())
	}
}

func TestUpdateIsFullReplacement(t *testing.T) {
	r := newTestServer(t)

	cookie := signupAndLogin(t, r, "ana@ufu.br")

	w := doJSON(t, r, http.MethodPost, "/api/disciplines",
		`{"name":"Linear Algebra","professor":"Dr. Souza","code":"GMA001"}`, cookie)

	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}

	var created models.Discipline

	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode discipline: %v", err)
	}

	// Omitted fields are overwritten with their zero values, not merged.
	path := fmt.Sprintf("/api/disciplines/%d", created.ID)
	w = doJSON(t, r, http.MethodPatch, path, `{"name":"Algebra II"}`, cookie)

	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
	}

	var updated models.Discipline

	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode discipline: %v", err)
	}

	if updated.Name != "Algebra II" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}

	if updated.Professor != "" || updated.Code != "" {
		t.Errorf("expected omitted fields to reset, got professor=%q code=%q", updated.Professor, updated.Code)
	}
}

func TestEventRoundTrip(t *testing.T) {
	r := newTestServer(t)

	cookie := signupAndLogin(t, r, "ana@ufu.br")

	w := doJSON(t, r, http.MethodPost, "/api/events",
		`{"title":"Midterm","event_type":"exam","start_date":"2026-09-10","start_time":"14:00","end_time":"16:00","location":"Block 1X","recurrence_days":["mon","wed"]}`, cookie)

	if w.Code != http.StatusCreated {
		t.Fatalf("create event failed: %d %s", w.Code, w.Body.String())
	}

	var created models.Event

	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}

	if created.StartTime == nil || *created.StartTime != "14:00" {
		t.Errorf("unexpected start_time: %v", created.StartTime)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/events",
		`{"title":"Broken","event_type":"exam","start_date":"10/09/2026"}`, cookie); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/events", "", cookie); !strings.Contains(w.Body.String(), "Midterm") {
		t.Errorf("expected event in list: %s", w.Body.String())
	}
}

func TestStudyGoalTargetHours(t *testing.T) {
	r := newTestServer(t)

	cookie := signupAndLogin(t, r, "ana@ufu.br")

	// An explicit zero target is a legitimate value, not a missing field.
	w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"Pause revision","target_hours":0,"period_type":"weekly"}`, cookie)

	if w.Code != http.StatusCreated {
		t.Fatalf("create goal with zero target failed: %d %s", w.Code, w.Body.String())
	}

	var created models.StudyGoal

	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode goal: %v", err)
	}

	if created.TargetHours != 0 {
		t.Errorf("expected target_hours 0, got %d", created.TargetHours)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"title":"No target","period_type":"weekly"}`, cookie); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when target_hours is missing, got %d", w.Code)
	}
}

func TestAccountDeletion(t *testing.T) {
	r := newTestServer(t)

	cookie := signupAndLogin(t, r, "ana@ufu.br")

	if w := doJSON(t, r, http.MethodDelete, "/api/auth/user", `{"password":"Wrong123!@"}`, cookie); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong password, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/api/auth/user", `{"password":"Abc123!@"}`, cookie); w.Code != http.StatusOK {
		t.Fatalf("account deletion failed: %d %s", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, "/api/auth/user", "", cookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after account deletion, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"ana@ufu.br","password":"Abc123!@"}`, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 login after deletion, got %d", w.Code)
	}
}
