package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	require.Equal(t,
		[]string{"0", "100", "200"},
		Plan([]string{"0", "100", "", "100", "200", "0"}),
		"empty and duplicate offsets dropped, order preserved")
	require.Nil(t, Plan(nil))
}

func TestFetchAllSequential(t *testing.T) {
	plan := []string{"0", "100", "200"}
	pages, err := FetchAll(context.Background(), plan, 1, func(_ context.Context, offset string) (string, error) {
		return "page-" + offset, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"page-0", "page-100", "page-200"}, pages)
}

func TestFetchAllConcurrentPreservesOrder(t *testing.T) {
	plan := []string{"0", "100", "200", "300"}
	pages, err := FetchAll(context.Background(), plan, 3, func(_ context.Context, offset string) (string, error) {
		// later offsets finish first
		if offset == "0" {
			time.Sleep(20 * time.Millisecond)
		}
		return "page-" + offset, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"page-0", "page-100", "page-200", "page-300"}, pages,
		"pages must come back in ascending offset order regardless of completion order")
}

func TestFetchAllError(t *testing.T) {
	boom := errors.New("boom")
	for _, concurrency := range []int{1, 3} {
		t.Run(fmt.Sprintf("concurrency=%d", concurrency), func(t *testing.T) {
			_, err := FetchAll(context.Background(), []string{"0", "100"}, concurrency, func(_ context.Context, offset string) (string, error) {
				if offset == "100" {
					return "", boom
				}
				return "ok", nil
			})
			require.ErrorIs(t, err, boom)
			require.Contains(t, err.Error(), "offset 100")
		})
	}
}
