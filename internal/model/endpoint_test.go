package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointPaths(t *testing.T) {
	assert.Equal(t, "/api/v1/profile", EndpointProfile.Path())
	assert.Equal(t, "/api/v1/credit-cards", EndpointCreditCards.Path())
	assert.Equal(t, "/api/v1/assets", EndpointPatrimony.Path())
	assert.Empty(t, Endpoint("bogus").Path())
}

func TestEndpointDisplayName(t *testing.T) {
	assert.Equal(t, "Contas", EndpointAccounts.DisplayName())
	assert.Equal(t, "Cartões de Crédito", EndpointCreditCards.DisplayName())
	assert.Equal(t, "something", Endpoint("something").DisplayName())
}

func TestEndpointValid(t *testing.T) {
	for _, endpoint := range Endpoints() {
		assert.True(t, endpoint.Valid(), "%s", endpoint)
	}
	assert.False(t, Endpoint("bogus").Valid())
}

func TestEndpointsCoverAllPaths(t *testing.T) {
	assert.Len(t, Endpoints(), len(paths))
}
