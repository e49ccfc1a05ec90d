package market_data

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/status-im/market-data/interfaces"
)

// TokenValue returns balance × current price × fiat exchange rate.
// ErrMarketNotFound and ErrFiatNotFound tell the two missing-data causes apart.
func (s *Service) TokenValue(ctx context.Context, balance, id, fiatSymbol string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", ErrInvalidBalance, balance, err)
	}

	var market *interfaces.MarketSnapshot
	var rate *interfaces.FiatRate

	err = s.refresher.WithFreshCatalog(ctx, func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			market, err = s.fetchMarket(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			rate, err = s.fiatRate(gctx, fiatSymbol)
			return err
		})
		return g.Wait()
	})
	if err != nil {
		return decimal.Zero, err
	}

	if market == nil || !market.CurrentPrice.Valid {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMarketNotFound, id)
	}
	if rate == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrFiatNotFound, fiatSymbol)
	}

	return amount.Mul(market.CurrentPrice.Decimal).Mul(rate.ExchangeRate), nil
}

// GetTokenValue formats TokenValue with two decimals. Any failure yields "0".
func (s *Service) GetTokenValue(ctx context.Context, balance, id, fiatSymbol string) string {
	value, err := s.TokenValue(ctx, balance, id, fiatSymbol)
	if err != nil {
		log.Printf("MarketData: no value for %s %s in %s: %v", balance, id, fiatSymbol, err)
		return "0"
	}
	return value.StringFixed(2)
}
