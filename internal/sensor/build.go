package sensor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/TiagoK-777/hass-abaco-finance/internal/jsonpath"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
)

// Build fetches each endpoint once and constructs the full sensor set:
// fixed profile and summary sensors, one sensor per account, card,
// investment and net worth item, plus any extra attribute sensors. A failed
// startup fetch logs a warning and yields an empty dataset so the fixed
// sensors still come up.
func Build(ctx context.Context, api Fetcher, log *logrus.Logger, extra []EndpointSensorConfig) []Sensor {
	cards := fetchOrEmpty(ctx, api, log, model.EndpointCreditCards)
	accounts := fetchOrEmpty(ctx, api, log, model.EndpointAccounts)
	investments := fetchOrEmpty(ctx, api, log, model.EndpointInvestments)
	patrimony := fetchOrEmpty(ctx, api, log, model.EndpointPatrimony)

	var sensors []Sensor

	// Profile.
	sensors = append(sensors,
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointProfile, AttrPath: "name", Name: "Nome", Icon: "mdi:account"}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointProfile, AttrPath: "email", Name: "Email", Icon: "mdi:email"}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointProfile, AttrPath: "default_currency", Name: "Moeda Padrão", Icon: "mdi:currency-usd"}),
	)

	// One sensor per account, then the accounts summary.
	for _, account := range objectList(accounts, "accounts") {
		sensors = append(sensors, NewAccountSensor(account))
	}
	sensors = append(sensors,
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointAccounts, AttrPath: "total_accounts", Name: "Total de Contas", Icon: "mdi:counter"}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointAccounts, AttrPath: "summary.0.total_balance", Name: "Saldo Total", Icon: "mdi:bank", Monetary: true}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointAccounts, AttrPath: "summary.0.account_count", Name: "Quantidade de Contas", Icon: "mdi:bank"}),
	)

	// One sensor per credit card, then the card summaries.
	for _, card := range objectList(cards, "cards") {
		sensors = append(sensors, NewCreditCardSensor(card))
	}
	sensors = append(sensors,
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointCreditCards, AttrPath: "total_cards", Name: "Total de Cartões", Icon: "mdi:credit-card-multiple"}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointCreditCards, AttrPath: "total_limit", Name: "Limite Total", Monetary: true}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointCreditCards, AttrPath: "total_used", Name: "Usado Total", Monetary: true}),
		NewEndpointSensor(EndpointSensorConfig{Endpoint: model.EndpointCreditCards, AttrPath: "total_available", Name: "Disponível Total", Monetary: true}),
	)

	// One sensor per investment plus the total.
	for _, investment := range objectList(investments, "") {
		sensors = append(sensors, NewInvestmentSensor(investment))
	}
	sensors = append(sensors, NewInvestmentsTotalSensor())

	// Net worth: one sensor per item, one summary.
	for _, item := range objectList(patrimony, "data") {
		sensors = append(sensors, NewPatrimonyItemSensor(item))
	}
	if summary, ok := jsonpath.Resolve(patrimony, "summary"); ok {
		if m, ok := summary.(map[string]any); ok && len(m) > 0 {
			sensors = append(sensors, NewPatrimonySummarySensor(m))
		}
	}

	for _, cfg := range extra {
		sensors = append(sensors, NewEndpointSensor(cfg))
	}

	return sensors
}

func fetchOrEmpty(ctx context.Context, api Fetcher, log *logrus.Logger, endpoint model.Endpoint) any {
	data, err := api.FetchEndpoint(ctx, endpoint)
	if err != nil {
		log.Warnf("initial %s fetch failed: %v", endpoint, err)
		return nil
	}
	return data
}

// objectList returns the JSON objects in the list at listPath ("" = root).
func objectList(data any, listPath string) []map[string]any {
	var items []map[string]any
	for _, entry := range itemList(data, listPath) {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
