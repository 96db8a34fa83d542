package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextReceiptNumberSequences(t *testing.T) {
	db := newTestDB(t)

	year := time.Now().Year()
	first, err := NextReceiptNumber(db, year)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("RCP-%d-000001", year), first)

	second, err := NextReceiptNumber(db, year)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("RCP-%d-000002", year), second)
}

func TestNextReceiptNumberResetsPerYear(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := NextReceiptNumber(db, 2026)
		require.NoError(t, err)
	}

	n, err := NextReceiptNumber(db, 2027)
	require.NoError(t, err)
	require.Equal(t, "RCP-2027-000001", n)

	n, err = NextReceiptNumber(db, 2026)
	require.NoError(t, err)
	require.Equal(t, "RCP-2026-000004", n)
}

func TestNextReceiptNumberConcurrentDraws(t *testing.T) {
	db := newTestDB(t)

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan string, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := NextReceiptNumber(db, 2026)
			if err != nil {
				errs <- err
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	numbers := make(map[string]bool, workers)
	for n := range results {
		numbers[n] = true
	}

	require.Len(t, numbers, workers, "every draw must be unique")
	require.True(t, numbers[fmt.Sprintf("RCP-2026-%06d", workers)],
		"the sequence must reach exactly %d with no gaps", workers)
}
