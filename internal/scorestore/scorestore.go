// Package scorestore persists scoring runs and results across invocations.
package scorestore

import (
	"sync"

	"github.com/huangsam/hpps/internal/contract"
)

// ScoreStoreManager manages the ScoreStore instance.
type ScoreStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	scores       contract.ScoreStore
}

var _ contract.StoreManager = &ScoreStoreManager{} // Compile-time check

// GetScoreStore returns the score ScoreStore.
func (mgr *ScoreStoreManager) GetScoreStore() contract.ScoreStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.scores
}
