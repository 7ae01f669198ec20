package model

// Endpoint identifies a REST resource on the Ábaco Finance API.
type Endpoint string

const (
	EndpointProfile      Endpoint = "profile"
	EndpointTransactions Endpoint = "transactions"
	EndpointAccounts     Endpoint = "accounts"
	EndpointCreditCards  Endpoint = "credit_cards"
	EndpointInvestments  Endpoint = "investments"
	EndpointPatrimony    Endpoint = "patrimony"
)

// paths maps endpoint identifiers to their API paths. Patrimony is served
// under /assets, a leftover from an earlier API naming.
var paths = map[Endpoint]string{
	EndpointProfile:      "/api/v1/profile",
	EndpointTransactions: "/api/v1/transactions",
	EndpointAccounts:     "/api/v1/accounts",
	EndpointCreditCards:  "/api/v1/credit-cards",
	EndpointInvestments:  "/api/v1/investments",
	EndpointPatrimony:    "/api/v1/assets",
}

// displayNames maps endpoint identifiers to device-facing names.
var displayNames = map[Endpoint]string{
	EndpointProfile:      "Perfil",
	EndpointAccounts:     "Contas",
	EndpointCreditCards:  "Cartões de Crédito",
	EndpointInvestments:  "Investimentos",
	EndpointPatrimony:    "Patrimônio",
	EndpointTransactions: "Transações",
}

// Path returns the API path for the endpoint, or "" if unknown.
func (e Endpoint) Path() string {
	return paths[e]
}

// DisplayName returns the human-facing name for the endpoint.
func (e Endpoint) DisplayName() string {
	if name, ok := displayNames[e]; ok {
		return name
	}
	return string(e)
}

// Valid reports whether the endpoint is one of the known resources.
func (e Endpoint) Valid() bool {
	_, ok := paths[e]
	return ok
}

// Endpoints returns all known endpoints in a stable order.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointProfile,
		EndpointTransactions,
		EndpointAccounts,
		EndpointCreditCards,
		EndpointInvestments,
		EndpointPatrimony,
	}
}
