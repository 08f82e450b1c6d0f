package service

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"attraction-cms-backend/internal/models"
)

// applyReorder assigns each id the 0-based order matching its position in the
// submitted sequence. Updates are issued as independent concurrent writes and
// joined before returning; ids that touch no row are reported as skipped
// rather than failing the batch.
func applyReorder(ids []uint, update func(id uint, order int) (int64, error)) (models.ReorderResult, error) {
	var (
		g       errgroup.Group
		mu      sync.Mutex
		applied int
		skipped []uint
	)

	for position, id := range ids {
		position, id := position, id
		g.Go(func() error {
			rows, err := update(id, position)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if rows == 0 {
				skipped = append(skipped, id)
			} else {
				applied++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.ReorderResult{}, err
	}

	sort.Slice(skipped, func(i, j int) bool { return skipped[i] < skipped[j] })
	return models.ReorderResult{Applied: applied, SkippedIDs: skipped}, nil
}
