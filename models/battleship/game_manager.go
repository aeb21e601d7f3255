package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type MatchManager interface {
	CreateMatch(first, second *Side, opts ...MatchOption) *Match
	FetchMatch(matchUuid string) (*Match, error)
	TerminateMatch(matchUuid string)
	CountMatches() int
}

type BattleshipMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ MatchManager = (*BattleshipMatchManager)(nil)

func NewBattleshipMatchManager() *BattleshipMatchManager {
	return &BattleshipMatchManager{
		matches: make(map[string]*Match, 1),
	}
}

func (bmm *BattleshipMatchManager) CreateMatch(first, second *Side, opts ...MatchOption) *Match {
	match := NewMatch(first, second, opts...)

	bmm.mu.Lock()
	bmm.matches[match.Uuid()] = match
	bmm.mu.Unlock()

	return match
}

func (bmm *BattleshipMatchManager) FetchMatch(matchUuid string) (*Match, error) {
	bmm.mu.RLock()
	match, prs := bmm.matches[matchUuid]
	bmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotFound(matchUuid)
	}

	return match, nil
}

func (bmm *BattleshipMatchManager) TerminateMatch(matchUuid string) {
	bmm.mu.Lock()
	delete(bmm.matches, matchUuid)
	bmm.mu.Unlock()
}

func (bmm *BattleshipMatchManager) CountMatches() int {
	bmm.mu.RLock()
	defer bmm.mu.RUnlock()

	return len(bmm.matches)
}
