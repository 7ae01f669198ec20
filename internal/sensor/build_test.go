package sensor

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiagoK-777/hass-abaco-finance/internal/abaco"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func sensorIDs(sensors []Sensor) map[string]bool {
	ids := make(map[string]bool, len(sensors))
	for _, s := range sensors {
		ids[s.ID()] = true
	}
	return ids
}

func TestBuild_FullSensorSet(t *testing.T) {
	api := &mockAPI{data: map[model.Endpoint]any{
		model.EndpointAccounts: decode(t, `{"accounts":[
			{"id":1,"name":"Nubank","current_balance":100.0},
			{"id":2,"name":"Itaú","current_balance":200.0}
		],"total_accounts":2,"summary":[{"total_balance":300.0,"account_count":2}]}`),
		model.EndpointCreditCards: decode(t, `{"cards":[
			{"id":"c1","name":"Visa","current_balance":50.0}
		],"total_cards":1,"total_limit":5000.0,"total_used":50.0,"total_available":4950.0}`),
		model.EndpointInvestments: decode(t, `[
			{"id":7,"name":"PETR4","current_value":1000.0},
			{"id":8,"name":"Tesouro","current_value":2000.0}
		]`),
		model.EndpointPatrimony: decode(t, `{"data":[
			{"id":1,"name":"Terreno","patrimony_type":"property","patrimony_category":"land","current_value":120000.0}
		],"summary":{"total_value":120000.0}}`),
	}}

	sensors := Build(context.Background(), api, testLogger(), nil)

	// 3 profile + 2 accounts + 3 account summaries + 1 card + 4 card
	// summaries + 2 investments + 1 total + 1 patrimony item + 1 summary.
	require.Len(t, sensors, 18)

	ids := sensorIDs(sensors)
	assert.True(t, ids["abaco_profile_name"])
	assert.True(t, ids["abaco_account_1"])
	assert.True(t, ids["abaco_account_2"])
	assert.True(t, ids["abaco_accounts_summary_0_total_balance"])
	assert.True(t, ids["abaco_card_c1"])
	assert.True(t, ids["abaco_credit_cards_total_available"])
	assert.True(t, ids["abaco_investment_7"])
	assert.True(t, ids["abaco_investments_total_value"])
	assert.True(t, ids["abaco_patrimony_item_1"])
	assert.True(t, ids["abaco_patrimony_summary"])
}

func TestBuild_StartupFetchFailureStillBuildsFixedSensors(t *testing.T) {
	api := &mockAPI{errs: map[model.Endpoint]error{
		model.EndpointAccounts:    &abaco.ConnectionError{Message: "down"},
		model.EndpointCreditCards: &abaco.ConnectionError{Message: "down"},
		model.EndpointInvestments: &abaco.ConnectionError{Message: "down"},
		model.EndpointPatrimony:   &abaco.ConnectionError{Message: "down"},
	}}

	sensors := Build(context.Background(), api, testLogger(), nil)

	// 3 profile + 3 account summaries + 4 card summaries + investments total.
	require.Len(t, sensors, 11)
}

func TestBuild_ExtraEndpointSensors(t *testing.T) {
	api := &mockAPI{}

	extra := []EndpointSensorConfig{
		{Endpoint: model.EndpointProfile, AttrPath: "plan.name", Name: "Plano"},
	}
	sensors := Build(context.Background(), api, testLogger(), extra)

	ids := sensorIDs(sensors)
	assert.True(t, ids["abaco_profile_plan_name"])
}

func TestBuild_UniqueIDs(t *testing.T) {
	api := &mockAPI{data: map[model.Endpoint]any{
		model.EndpointAccounts:    decode(t, `{"accounts":[{"id":1,"current_balance":1.0}]}`),
		model.EndpointInvestments: decode(t, `[{"id":1,"current_value":1.0}]`),
	}}

	sensors := Build(context.Background(), api, testLogger(), nil)

	seen := make(map[string]bool)
	for _, s := range sensors {
		assert.False(t, seen[s.ID()], "duplicate sensor ID %s", s.ID())
		seen[s.ID()] = true
	}
}
