package punchclock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftledger/shiftledger-backend-go/internal/config"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/attendance"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.SyncConfig{
		PunchAPIBaseURL: serverURL,
		PunchTimeout:    2 * time.Second,
	})
}

var testDay = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func TestGetPunches_SortsByTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/emp-1/punches", r.URL.Path)
		assert.Equal(t, "2025-06-02", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"timestamp": "2025-06-02T17:02:00Z", "direction": "out"},
			{"timestamp": "2025-06-02T08:01:00Z", "direction": "in"}
		]`))
	}))
	defer server.Close()

	punches, err := newTestClient(server.URL).GetPunches(context.Background(), "emp-1", testDay)
	require.NoError(t, err)

	require.Len(t, punches, 2)
	assert.Equal(t, attendance.DirectionIn, punches[0].Direction)
	assert.Equal(t, attendance.DirectionOut, punches[1].Direction)
	assert.True(t, punches[0].Timestamp.Before(punches[1].Timestamp))
}

func TestGetPunches_EmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	punches, err := newTestClient(server.URL).GetPunches(context.Background(), "emp-1", testDay)
	require.NoError(t, err)
	assert.Empty(t, punches)
}

func TestGetPunches_UpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetPunches(context.Background(), "emp-1", testDay)
	assert.ErrorIs(t, err, attendance.ErrPunchSourceUnavailable)
}

func TestGetPunches_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetPunches(context.Background(), "emp-1", testDay)
	assert.ErrorIs(t, err, attendance.ErrPunchSourceUnavailable)
}

func TestGetPunches_MalformedTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"timestamp": "yesterday-ish", "direction": "in"}]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetPunches(context.Background(), "emp-1", testDay)
	assert.ErrorIs(t, err, attendance.ErrPunchSourceUnavailable)
}

func TestGetPunches_UnreachableHost(t *testing.T) {
	// A closed server makes the transport fail outright.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).GetPunches(context.Background(), "emp-1", testDay)
	assert.ErrorIs(t, err, attendance.ErrPunchSourceUnavailable)
}
