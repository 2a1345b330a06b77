package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeZF375/crimsonbot/internal/database"
	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/repository"
	"github.com/CodeZF375/crimsonbot/internal/service"
)

type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Publish(_ context.Context, e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

type fakeHealth struct{ ready bool }

func (f *fakeHealth) MarkReady()                   { f.ready = true }
func (f *fakeHealth) MarkNotReady()                { f.ready = false }
func (f *fakeHealth) Ready(_ context.Context) bool { return f.ready }

type fakeBot struct{ status string }

func (f fakeBot) Status() string { return f.status }

type testServer struct {
	e    *echo.Echo
	sink *recordingSink
}

func newTestServer(t *testing.T, bot BotStatus) *testServer {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewConnection(ctx, database.SQLite.String(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureSchema(ctx, db))

	logger := log.New("api-test")
	logger.SetOutput(io.Discard)
	sink := &recordingSink{}

	e := echo.New()
	e.Use(Metrics())
	SetupRoutes(e,
		NewHealthHandler(&fakeHealth{ready: true}),
		NewStatusHandler(bot),
		NewRecordHandler(service.NewRecordService(domain.CategoryAllies, repository.NewRecordRepository(db, repository.Allies), sink), logger),
		NewRecordHandler(service.NewRecordService(domain.CategoryEnemies, repository.NewRecordRepository(db, repository.Enemies), sink), logger),
		NewRecordHandler(service.NewRecordService(domain.CategoryRoster, repository.NewRecordRepository(db, repository.Roster), sink), logger),
		NewRecordHandler(service.NewRecordService(domain.CategoryWarInfo, repository.NewRecordRepository(db, repository.WarInfo), sink), logger),
		NewRecordHandler(service.NewRecordService(domain.CategoryServers, repository.NewRecordRepository(db, repository.Servers), sink), logger),
	)
	return &testServer{e: e, sink: sink}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestCreateServerAndList(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/sunucular",
		`{"isim":"TurkMMO","ip":"play.turkmmo.com","port":"25565","bilgi":"Ana sunucumuz"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[map[string]any](t, rec)
	id, ok := created["id"].(float64)
	require.True(t, ok)
	assert.Equal(t, float64(int64(id)), id)
	assert.Equal(t, "TurkMMO", created["isim"])
	assert.Equal(t, "25565", created["port"])
	assert.NotEmpty(t, created["createdAt"])

	rec = s.do(http.MethodGet, "/api/sunucular", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]map[string]any](t, rec)
	matches := 0
	for _, item := range list {
		if item["isim"] == "TurkMMO" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
	assert.Equal(t, 1, s.sink.count())
}

func TestCreateDuplicate(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"isim":"AlpAslan","rol":"Savaşçı","girisTarihi":"23.08.2022"}`

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/askadro", body).Code)
	rec := s.do(http.MethodPost, "/api/askadro", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "AS Kadro üyesi zaten mevcut", decode[messageResponse](t, rec).Message)

	list := decode[[]map[string]any](t, s.do(http.MethodGet, "/api/askadro", ""))
	assert.Len(t, list, 1)
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/muteffikler", `{"isim":"  ","tur":"Guild"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[validationResponse](t, rec)
	assert.Equal(t, []domain.FieldError{
		{Field: "isim", Message: "İsim belirtilmelidir"},
		{Field: "tur", Message: "Tür Klan veya Oyuncu olmalıdır"},
	}, got.Errors)
	assert.Equal(t, 0, s.sink.count())
}

func TestCreateMalformedJSON(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/ksbilgi", `{"baslik":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[validationResponse](t, rec)
	assert.Equal(t, []domain.FieldError{{Field: "body", Message: "Geçersiz JSON"}}, got.Errors)
}

func TestListEmpty(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodGet, "/api/muteffikler", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/api/dusmanlar/999", "/api/dusmanlar/abc", "/api/dusmanlar/-1"} {
		rec := s.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Düşman bulunamadı", decode[messageResponse](t, rec).Message)
	}
}

func TestDeleteMissingEnemy(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodDelete, "/api/dusmanlar/12345", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Düşman bulunamadı", decode[messageResponse](t, rec).Message)
	assert.Equal(t, 0, s.sink.count())
}

func TestUpdateAndDelete(t *testing.T) {
	s := newTestServer(t, nil)

	created := decode[map[string]any](t, s.do(http.MethodPost, "/api/dusmanlar",
		`{"isim":"DarkLegion","tur":"Klan","neden":"Savaş kurallarını çiğneme"}`))
	id := int64(created["id"].(float64))
	path := fmt.Sprintf("/api/dusmanlar/%d", id)

	rec := s.do(http.MethodPut, path, `{"isim":"DarkLegion","tur":"Klan","neden":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[map[string]any](t, rec)
	assert.Equal(t, created["id"], updated["id"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])
	assert.Nil(t, updated["neden"])

	rec = s.do(http.MethodPut, "/api/dusmanlar/777", `{"isim":"X","tur":"Oyuncu"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, path, "").Code)
	assert.Equal(t, 3, s.sink.count())
}

func TestUpdateKeyConflict(t *testing.T) {
	s := newTestServer(t, nil)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/ksbilgi", `{"baslik":"Savaş Kuralları","bilgi":"a"}`).Code)
	second := decode[map[string]any](t, s.do(http.MethodPost, "/api/ksbilgi", `{"baslik":"Haftalık Toplantı","bilgi":"b"}`))

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/ksbilgi/%d", int64(second["id"].(float64))),
		`{"baslik":"Savaş Kuralları","bilgi":"b"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "KS Bilgi zaten mevcut", decode[messageResponse](t, rec).Message)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		bot  BotStatus
		want string
	}{
		{name: "no bot", bot: nil, want: "not_started"},
		{name: "online", bot: fakeBot{status: "online"}, want: "online"},
		{name: "offline", bot: fakeBot{status: "offline"}, want: "offline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.bot)
			rec := s.do(http.MethodGet, "/api/status", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"status":"ok","bot":%q,"version":"1.0.0"}`, tt.want), rec.Body.String())
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/livez", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/readyz", "").Code)

	s.do(http.MethodGet, "/api/muteffikler", "")
	rec := s.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/api/muteffikler",status="200"}`)
}

func TestReadyzNotReady(t *testing.T) {
	e := echo.New()
	h := NewHealthHandler(&fakeHealth{ready: false})
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Readyz(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   any
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("wrapped: %w", &domain.ValidationError{Fields: []domain.FieldError{{Field: "ip", Message: "IP belirtilmelidir"}}}),
			wantStatus: http.StatusBadRequest,
			wantBody:   validationResponse{Errors: []domain.FieldError{{Field: "ip", Message: "IP belirtilmelidir"}}},
		},
		{
			name:       "not found",
			err:        fmt.Errorf("sunucular 3: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   messageResponse{Message: "Sunucu bulunamadı"},
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("sunucular: %w", domain.ErrConflict),
			wantStatus: http.StatusConflict,
			wantBody:   messageResponse{Message: "Sunucu zaten mevcut"},
		},
		{
			name:       "internal",
			err:        errors.New("database is locked"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   messageResponse{Message: "Sunucular alınırken hata oluştu"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapError(tt.err, domain.ServerInfo, "Sunucular alınırken hata oluştu")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
