package coingecko_common

import (
	"context"
	"fmt"
)

// SplitIntoChunks splits items into chunks of at most chunkLimit items whose
// combined length stays under MaxChunkStringLength.
// An item longer than the limit gets a chunk of its own.
func SplitIntoChunks(items []string, chunkLimit int) [][]string {
	if len(items) == 0 || chunkLimit <= 0 {
		return nil
	}

	var chunks [][]string
	var current []string
	currentLength := 0

	for _, item := range items {
		// +1 for the separator
		itemLength := len(item) + 1
		if len(current) > 0 && (len(current) >= chunkLimit || currentLength+itemLength > MaxChunkStringLength) {
			chunks = append(chunks, current)
			current = nil
			currentLength = 0
		}
		current = append(current, item)
		currentLength += itemLength
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

func processInChunks[T any](
	ctx context.Context,
	items []string,
	chunkLimit int,
	fetchFunc func(context.Context, []string) (T, error),
) ([]T, error) {
	chunks := SplitIntoChunks(items, chunkLimit)
	results := make([]T, 0, len(chunks))

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunkResult, err := fetchFunc(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch chunk %d/%d: %w", i+1, len(chunks), err)
		}

		results = append(results, chunkResult)
	}

	return results, nil
}

// ChunkMapFetcher fetches items chunk by chunk and merges the resulting maps
func ChunkMapFetcher[T any](
	ctx context.Context,
	items []string,
	chunkLimit int,
	fetchFunc func(context.Context, []string) (map[string]T, error),
) (map[string]T, error) {
	chunkResults, err := processInChunks(ctx, items, chunkLimit, fetchFunc)
	if err != nil {
		return nil, err
	}

	result := make(map[string]T)
	for _, chunkResult := range chunkResults {
		for k, v := range chunkResult {
			result[k] = v
		}
	}

	return result, nil
}
