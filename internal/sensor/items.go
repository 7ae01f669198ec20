package sensor

import (
	"context"
	"fmt"

	"github.com/TiagoK-777/hass-abaco-finance/internal/icon"
	"github.com/TiagoK-777/hass-abaco-finance/internal/jsonpath"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
	"github.com/TiagoK-777/hass-abaco-finance/internal/uid"
)

// ItemSensor tracks one element of an endpoint's item list by its id.
// State is a monetary field of that element; attributes are the element
// itself, nothing more.
type ItemSensor struct {
	baseSensor
	endpoint   model.Endpoint
	listPath   string // "" when the endpoint body is the list itself
	stateField string
	itemID     string
}

// NewAccountSensor creates the per-account balance sensor.
func NewAccountSensor(account map[string]any) *ItemSensor {
	return newItemSensor(model.EndpointAccounts, "accounts", "current_balance", "account", "mdi:bank", account)
}

// NewCreditCardSensor creates the per-card open invoice sensor.
func NewCreditCardSensor(card map[string]any) *ItemSensor {
	return newItemSensor(model.EndpointCreditCards, "cards", "current_balance", "card", "mdi:credit-card", card)
}

// NewInvestmentSensor creates the per-investment value sensor. The
// investments endpoint returns a bare list, so there is no list path.
func NewInvestmentSensor(investment map[string]any) *ItemSensor {
	return newItemSensor(model.EndpointInvestments, "", "current_value", "investment", "mdi:chart-line", investment)
}

// NewPatrimonyItemSensor creates the sensor for one net worth item, with
// an icon chosen from the item's type and category.
func NewPatrimonyItemSensor(item map[string]any) *ItemSensor {
	s := newItemSensor(model.EndpointPatrimony, "data", "current_value", "patrimony_item", "", item)
	if s.name == "" {
		s.name = "Patrimônio"
	}
	itemType, _ := jsonpath.Resolve(item, "patrimony_type")
	category, _ := jsonpath.Resolve(item, "patrimony_category")
	s.icon = icon.ForPatrimonyItem(asString(itemType), asString(category))
	return s
}

func newItemSensor(endpoint model.Endpoint, listPath, stateField, kind, iconName string, item map[string]any) *ItemSensor {
	itemID := fmt.Sprint(item["id"])
	name, _ := item["name"].(string)
	s := &ItemSensor{
		baseSensor: baseSensor{
			id:        uid.ForItem(kind, itemID),
			name:      name,
			icon:      iconName,
			unit:      Currency,
			device:    endpointDevice(endpoint),
			state:     floatOrZero(item[stateField]),
			attrs:     item,
			available: true,
		},
		endpoint:   endpoint,
		listPath:   listPath,
		stateField: stateField,
		itemID:     itemID,
	}
	return s
}

// Refresh implements Sensor.
func (s *ItemSensor) Refresh(ctx context.Context, api Fetcher) error {
	return s.guard(s.update(ctx, api))
}

func (s *ItemSensor) update(ctx context.Context, api Fetcher) error {
	data, err := api.FetchEndpoint(ctx, s.endpoint)
	if err != nil {
		return err
	}

	for _, entry := range itemList(data, s.listPath) {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if fmt.Sprint(item["id"]) != s.itemID {
			continue
		}
		s.state = floatOrZero(item[s.stateField])
		s.attrs = item
		return nil
	}

	// Item gone from the listing; keep the last known state.
	return nil
}

// itemList locates the item list inside an endpoint body.
func itemList(data any, listPath string) []any {
	if listPath == "" {
		list, _ := data.([]any)
		return list
	}
	value, ok := jsonpath.Resolve(data, listPath)
	if !ok {
		return nil
	}
	list, _ := value.([]any)
	return list
}

func floatOrZero(value any) float64 {
	f, ok := jsonpath.AsFloat(value)
	if !ok {
		return 0.0
	}
	return f
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

// InvestmentsTotalSensor sums current_value across every investment.
type InvestmentsTotalSensor struct {
	baseSensor
}

// NewInvestmentsTotalSensor creates the aggregate investments sensor.
func NewInvestmentsTotalSensor() *InvestmentsTotalSensor {
	return &InvestmentsTotalSensor{
		baseSensor: baseSensor{
			id:     uid.ForItem("investments", "total_value"),
			name:   "Valor Total",
			icon:   "mdi:chart-line",
			unit:   Currency,
			device: endpointDevice(model.EndpointInvestments),
		},
	}
}

// Refresh implements Sensor.
func (s *InvestmentsTotalSensor) Refresh(ctx context.Context, api Fetcher) error {
	return s.guard(s.update(ctx, api))
}

func (s *InvestmentsTotalSensor) update(ctx context.Context, api Fetcher) error {
	data, err := api.FetchEndpoint(ctx, model.EndpointInvestments)
	if err != nil {
		return err
	}

	total := 0.0
	list, _ := data.([]any)
	for _, entry := range list {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if f, ok := jsonpath.AsFloat(item["current_value"]); ok {
			total += f
		}
	}

	s.state = total
	s.attrs = map[string]any{"count": len(list), "investments": data}
	return nil
}

// PatrimonySummarySensor exposes the consolidated net worth total.
type PatrimonySummarySensor struct {
	baseSensor
}

// NewPatrimonySummarySensor creates the net worth summary sensor, seeded
// from an already-fetched summary object.
func NewPatrimonySummarySensor(summary map[string]any) *PatrimonySummarySensor {
	return &PatrimonySummarySensor{
		baseSensor: baseSensor{
			id:        uid.ForItem("patrimony", "summary"),
			name:      "Resumo Patrimônio",
			icon:      "mdi:scale-balance",
			unit:      Currency,
			device:    endpointDevice(model.EndpointPatrimony),
			state:     floatOrZero(summary["total_value"]),
			attrs:     summary,
			available: true,
		},
	}
}

// Refresh implements Sensor.
func (s *PatrimonySummarySensor) Refresh(ctx context.Context, api Fetcher) error {
	return s.guard(s.update(ctx, api))
}

func (s *PatrimonySummarySensor) update(ctx context.Context, api Fetcher) error {
	data, err := api.FetchEndpoint(ctx, model.EndpointPatrimony)
	if err != nil {
		return err
	}

	summary, ok := jsonpath.Resolve(data, "summary")
	if !ok {
		return nil
	}
	m, ok := summary.(map[string]any)
	if !ok {
		return nil
	}

	s.state = floatOrZero(m["total_value"])
	s.attrs = m
	return nil
}
