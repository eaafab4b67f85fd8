package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	backendmocks "github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient/mocks"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/proxy"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/repository/mocks"
	"github.com/digisolai/digisol.ai-sub002/internal/api/handler"
	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/authenticating"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/chatting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

type memoryStore map[string]string

func (m memoryStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memoryStore) Set(key, value string) error {
	m[key] = value
	return nil
}

type testEnv struct {
	handler      http.Handler
	campaignRepo *mocks.MockCampaignRepository
	contactRepo  *mocks.MockContactRepository
	userRepo     *mocks.MockUserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	contactRepo := mocks.NewMockContactRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"not found"}`))
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		SecretKey: testSecret,
		Proxy:     config.Proxy{MountPath: "/api"},
		Cors:      config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	backendProxy, err := proxy.New(backend.URL, cfg.Proxy.MountPath, time.Second)
	require.NoError(t, err)

	document := theming.NewStyleDocument("Dashboard")
	store := theming.NewStore(memoryStore{}, document)
	store.Load()

	h, err := NewHandler(cfg, Services{
		Authenticator: authenticating.NewService(userRepo, cfg),
		Campaigns:     campaigning.NewService(campaignRepo),
		Contacts:      contacting.NewService(contactRepo),
		Chat:          chatting.NewService(backendmocks.NewMockClient(ctrl)),
		ThemeStore:    store,
		ThemeDocument: document,
		CronJobs:      handler.CronJobServices{},
		Proxy:         backendProxy,
	})
	require.NoError(t, err)

	return &testEnv{handler: h, campaignRepo: campaignRepo, contactRepo: contactRepo, userRepo: userRepo}
}

func bearer(t *testing.T, roleID int) string {
	t.Helper()

	claims := domain.Claims{
		UserID:     7,
		UserEmail:  "ana@digisol.ai",
		UserActive: true,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *testEnv) do(method, path, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_HealthcheckIsPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/campaigns", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_006", decodeBody(t, rec)["code"])

	rec = env.do(http.MethodGet, "/v1/campaigns", "", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_CreateUserIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	body := `{"name":"Bia","lastname":"Lima","email":" Bia@DigiSol.ai ","password":"Str0ng!pass","role_id":3}`

	rec := env.do(http.MethodPost, "/v1/users", body, bearer(t, domain.RoleSupervisor))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "bia@digisol.ai").Return(nil, nil)
	env.userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, user *domain.User) (*domain.User, error) {
		assert.True(t, user.Active)
		assert.NotEqual(t, "Str0ng!pass", user.PasswordHash)
		user.ID = 11
		return user, nil
	})

	rec = env.do(http.MethodPost, "/v1/users", body, bearer(t, domain.RoleAdmin))
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)
	assert.Equal(t, float64(11), created["id"])
	assert.NotContains(t, created, "password")

	rec = env.do(http.MethodPost, "/v1/users", `{"name":"X","lastname":"Y","email":"x@y.z","password":"Str0ng!pass","role_id":9}`, bearer(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CampaignDashboard(t *testing.T) {
	env := newTestEnv(t)

	roi := 250.0
	env.campaignRepo.EXPECT().ListCampaigns(gomock.Any()).Return([]domain.Campaign{
		{ID: "cmp-1", Name: "Summer", Status: domain.CampaignStatusActive, Budget: 100, Performance: domain.CampaignPerformance{ROI: &roi}},
		{ID: "cmp-2", Name: "Winter", Status: domain.CampaignStatusPaused, Budget: 300},
	}, nil)

	rec := env.do(http.MethodGet, "/v1/campaigns?status=Active&sort=budget&direction=desc", "", bearer(t, domain.RoleMarketer))
	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard domain.CampaignDashboard
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, 2, dashboard.Total)
	assert.Equal(t, 1, dashboard.Filtered)
	require.Len(t, dashboard.Campaigns, 1)
	assert.Equal(t, "cmp-1", dashboard.Campaigns[0].ID)
	assert.Equal(t, 400.0, dashboard.Metrics.TotalBudget)
}

func TestHandler_CampaignNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.campaignRepo.EXPECT().GetCampaignByID(gomock.Any(), "nope").Return(nil, nil)

	rec := env.do(http.MethodPost, "/v1/campaigns/nope/pause", "", bearer(t, domain.RoleMarketer))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CMP_001", decodeBody(t, rec)["code"])
}

func TestHandler_MergePreviewRejectsSingleSelection(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/contacts/merge/preview", `{"contact_ids":["c1"],"master_id":"c1"}`, bearer(t, domain.RoleMarketer))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CNT_002", decodeBody(t, rec)["code"])
}

func TestHandler_MalformedJSONIsValidationError(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/contacts/merge/preview", `{"contact_ids":`, bearer(t, domain.RoleMarketer))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_003", decodeBody(t, rec)["code"])
}

func TestHandler_ThemeUpdate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPatch, "/v1/theme", `{"primary_color":"#ABCDEF"}`, bearer(t, domain.RoleMarketer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPatch, "/v1/theme", `{"primary_color":"blue"}`, bearer(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "THM_001", decodeBody(t, rec)["code"])

	rec = env.do(http.MethodPatch, "/v1/theme", `{"primary_color":"#ABCDEF"}`, bearer(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#ABCDEF", decodeBody(t, rec)["primary_color"])

	rec = env.do(http.MethodGet, "/v1/theme/css", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), "--primary-color: #ABCDEF;")

	rec = env.do(http.MethodPost, "/v1/theme/reset", "", bearer(t, domain.RoleSupervisor))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultPrimaryColor, decodeBody(t, rec)["primary_color"])
}

func TestHandler_UnknownRouteIsJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/nothing-here", "", bearer(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VAL_004", decodeBody(t, rec)["code"])
}

func TestHandler_ProxyBypassesAuthAndPassesThrough(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/campaigns/missing/", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"detail":"not found"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_CorsPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_RejectsRootProxyMount(t *testing.T) {
	cfg := &config.Config{Proxy: config.Proxy{MountPath: "/"}}

	_, err := NewHandler(cfg, Services{Proxy: http.NotFoundHandler()})
	assert.Error(t, err)
}
