package coingecko_tokens

import "github.com/status-im/market-data/interfaces"

// FilterTokensByPlatform trims every entry's platform mappings to the supported platforms.
// Entries are never dropped: an entry without a supported platform still resolves by id.
func FilterTokensByPlatform(entries []interfaces.CatalogEntry, supportedPlatforms []string) []interfaces.CatalogEntry {
	supported := make(map[string]bool, len(supportedPlatforms))
	for _, platform := range supportedPlatforms {
		supported[platform] = true
	}

	result := make([]interfaces.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		filtered := make(map[string]string)
		for platform, address := range entry.Platforms {
			if supported[platform] {
				filtered[platform] = address
			}
		}
		entry.Platforms = filtered
		result = append(result, entry)
	}

	return result
}

// CountTokensByPlatform counts the entries that carry a non-empty address per platform
func CountTokensByPlatform(entries []interfaces.CatalogEntry) map[string]int {
	platformCounts := make(map[string]int)

	for _, entry := range entries {
		for platform, address := range entry.Platforms {
			if address != "" {
				platformCounts[platform]++
			}
		}
	}

	return platformCounts
}
