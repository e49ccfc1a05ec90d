package market_data

import (
	"context"
	"sort"

	"github.com/status-im/market-data/interfaces"
)

// GetMarketInfoByContracts maps every requested contract to the market snapshot of the
// catalog entry whose platform mapping on network equals it. Unmatched contracts map to nil.
func (s *Service) GetMarketInfoByContracts(ctx context.Context, contracts []string, network string) (map[string]*interfaces.MarketSnapshot, error) {
	result := make(map[string]*interfaces.MarketSnapshot, len(contracts))
	for _, contract := range contracts {
		result[contract] = nil
	}
	if len(contracts) == 0 {
		return result, nil
	}

	err := s.refresher.WithFreshCatalog(ctx, func() error {
		catalog, err := s.refresher.Catalog(ctx)
		if err != nil {
			return err
		}

		contractToID := resolveContracts(catalog, result, network)
		if len(contractToID) == 0 {
			return nil
		}

		ids := uniqueSortedValues(contractToID)
		snapshots, err := s.markets.FetchMarkets(ctx, ids, s.defaultCurrency)
		if err != nil {
			return err
		}

		byID := make(map[string]*interfaces.MarketSnapshot, len(ids))
		for i, id := range ids {
			if i < len(snapshots) {
				byID[id] = snapshots[i]
			}
		}
		for contract, id := range contractToID {
			result[contract] = byID[id]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveContracts returns contract -> catalog id for every requested contract that a catalog
// entry maps on network. Matching is exact and empty addresses never match.
// When several entries claim one contract the smallest id wins.
func resolveContracts(catalog interfaces.Catalog, requested map[string]*interfaces.MarketSnapshot, network string) map[string]string {
	contractToID := make(map[string]string)
	for id, entry := range catalog {
		address := entry.Platforms[network]
		if address == "" {
			continue
		}
		if _, ok := requested[address]; !ok {
			continue
		}
		if current, ok := contractToID[address]; ok && current <= id {
			continue
		}
		contractToID[address] = id
	}
	return contractToID
}

func uniqueSortedValues(m map[string]string) []string {
	seen := make(map[string]struct{}, len(m))
	values := make([]string, 0, len(m))
	for _, v := range m {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
