package mocks

import (
	"context"

	"eshop-catalog/core/eshop"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock implementation of eshop.Provider
type Provider struct {
	mock.Mock
}

func (m *Provider) FetchGames(ctx context.Context, region eshop.Region) ([]eshop.RawGame, error) {
	args := m.Called(ctx, region)
	if games, ok := args.Get(0).([]eshop.RawGame); ok {
		return games, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Provider) FetchPrices(ctx context.Context, region eshop.Region, country string, nsuids []string) ([]eshop.Price, error) {
	args := m.Called(ctx, region, country, nsuids)
	if prices, ok := args.Get(0).([]eshop.Price); ok {
		return prices, args.Error(1)
	}
	return nil, args.Error(1)
}
