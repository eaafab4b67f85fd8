package handler

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore map[string]string

func (m memoryStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memoryStore) Set(key, value string) error {
	m[key] = value
	return nil
}

type fakeSyncer struct {
	started bool
	calls   int
}

func (f *fakeSyncer) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestParseDashboardQuery(t *testing.T) {
	query, err := url.ParseQuery("status=Active,Paused&status=Draft&type=email&search=sale&date_range=custom" +
		"&start_date=2024-06-01&end_date=2024-06-30&budget_range=1000-5000&performance=high_performing&sort=roi&direction=DESC")
	require.NoError(t, err)

	filters, sortBy := parseDashboardQuery(query)

	assert.Equal(t, []domain.CampaignStatus{"Active", "Paused", "Draft"}, filters.Statuses)
	assert.Equal(t, []domain.CampaignType{"email"}, filters.Types)
	assert.Equal(t, "sale", filters.Search)
	assert.Equal(t, "custom", filters.DateRange)
	assert.Equal(t, "2024-06-01", filters.StartDate)
	assert.Equal(t, "2024-06-30", filters.EndDate)
	assert.Equal(t, "1000-5000", filters.BudgetRange)
	assert.Equal(t, "high_performing", filters.Performance)
	assert.Equal(t, domain.CampaignSort{Field: "roi", Direction: domain.SortDescending}, sortBy)
}

func TestSplitList_SkipsEmptyAndAll(t *testing.T) {
	assert.Empty(t, splitList([]string{"all", " , "}))
	assert.Equal(t, []string{"a", "b"}, splitList([]string{" a ,", "b"}))
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		started    bool
		wantStatus int
		wantCalls  int
	}{
		{name: "lifecycle started", cronType: CronJobTypeCampaignLifecycle, started: true, wantStatus: http.StatusAccepted, wantCalls: 1},
		{name: "already running", cronType: CronJobTypeAll, started: false, wantStatus: http.StatusAccepted, wantCalls: 1},
		{name: "unknown type", cronType: "meta", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{started: tt.started}
			h := RunCronJob(CronJobServices{CampaignLifecycleSyncService: syncer})

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil)
			ctx := context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "type", Value: tt.cronType}})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, syncer.calls)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	GetCronStatus(CronJobServices{CampaignLifecycleSyncService: &fakeSyncer{}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaign-lifecycle"`)
}

func TestThemeEvents_StreamsUpdates(t *testing.T) {
	store := theming.NewStore(memoryStore{}, nil)
	store.Load()

	server := httptest.NewServer(ThemeEvents(store))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (string, string) {
		var name, data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "" && name != "":
				return name, data
			}
		}
	}

	name, data := readEvent()
	assert.Equal(t, domain.ThemeUpdatedEvent, name)
	assert.Contains(t, data, domain.DefaultPrimaryColor)

	_, err = store.Update(map[string]any{"accent_color": "#112233"})
	require.NoError(t, err)

	name, data = readEvent()
	assert.Equal(t, domain.ThemeUpdatedEvent, name)
	assert.Contains(t, data, "#112233")
}
