package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
)

func newTestHub(t *testing.T) (*Hub, *mockClient) {
	t.Helper()
	client := profileClient(t)
	h := New(client, testLogger())
	h.Register(profileSensor("Nome", "name"))
	h.RefreshAll(context.Background())
	return h, client
}

func doRequest(t *testing.T, h *Hub, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	h, _ := newTestHub(t)

	rec := doRequest(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleSensors(t *testing.T) {
	h, _ := newTestHub(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/sensors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var states []model.SensorState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &states))
	require.Len(t, states, 1)
	assert.Equal(t, "abaco_profile_name", states[0].ID)
	assert.Equal(t, "Tiago", states[0].State)
}

func TestHandleSensor_NotFound(t *testing.T) {
	h, _ := newTestHub(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/sensors/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSensor_ByID(t *testing.T) {
	h, _ := newTestHub(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/sensors/abaco_profile_name", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var state model.SensorState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "Nome", state.Name)
}

func TestHandleDevices(t *testing.T) {
	h, _ := newTestHub(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/devices", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var devices []model.Device
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &devices))
	require.Len(t, devices, 1)
	assert.Equal(t, "abaco_profile", devices[0].Identifier)
}

func TestHandleCreateTransaction(t *testing.T) {
	h, client := newTestHub(t)
	client.createResult = model.CreateResult{Success: true, ID: "tx1"}

	body := `{"amount":"42.50","description":"Mercado","credit_card_id":"c1","category_id":"cat9"}`
	rec := doRequest(t, h, http.MethodPost, "/api/v1/services/create_transaction", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.CreateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "tx1", result.ID)

	require.Len(t, client.createCalls, 1)
	assert.Equal(t, 42.5, client.createCalls[0]["amount"])
}

func TestHandleCreateTransaction_ValidationError(t *testing.T) {
	h, client := newTestHub(t)

	body := `{"amount":"-1","description":"x","credit_card_id":"c1","category_id":"cat9"}`
	rec := doRequest(t, h, http.MethodPost, "/api/v1/services/create_transaction", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, client.createCalls)
}

func TestHandleCreateTransaction_BadBody(t *testing.T) {
	h, _ := newTestHub(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/services/create_transaction", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateTransaction_APIFailurePassesThrough(t *testing.T) {
	h, client := newTestHub(t)
	client.createResult = model.CreateResult{Success: false, Status: 400, Error: "bad request"}

	body := `{"amount":"10","description":"x","credit_card_id":"c1","category_id":"cat9"}`
	rec := doRequest(t, h, http.MethodPost, "/api/v1/services/create_transaction", body)
	require.Equal(t, http.StatusOK, rec.Code, "API-level failure is reported in the body")

	var result model.CreateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, 400, result.Status)
	assert.Equal(t, "bad request", result.Error)
}
