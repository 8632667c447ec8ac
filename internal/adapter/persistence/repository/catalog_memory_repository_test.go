package repository

import (
	"sync"
	"testing"

	"mostruario_digital/internal/domain/entities"
)

func TestCatalogMemoryRepository_SnapshotAndReplace(t *testing.T) {
	repo := NewCatalogMemoryRepository()

	if repo.Snapshot() != nil {
		t.Fatalf("expected nil snapshot before the first load")
	}

	first := &entities.Catalog{BuildID: "build-1"}
	repo.Replace(first)
	if got := repo.Snapshot(); got != first {
		t.Fatalf("expected first snapshot, got %+v", got)
	}

	second := &entities.Catalog{BuildID: "build-2"}
	repo.Replace(second)
	if got := repo.Snapshot(); got != second {
		t.Fatalf("expected second snapshot, got %+v", got)
	}
}

func TestCatalogMemoryRepository_ConcurrentReaders(t *testing.T) {
	repo := NewCatalogMemoryRepository()
	repo.Replace(&entities.Catalog{BuildID: "build-1"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if cat := repo.Snapshot(); cat == nil || cat.BuildID == "" {
					t.Error("reader observed an incomplete snapshot")
					return
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		repo.Replace(&entities.Catalog{BuildID: "rebuild"})
	}
	wg.Wait()
}
