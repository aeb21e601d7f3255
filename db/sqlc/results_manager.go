package sqlc

import (
	"context"
	"errors"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

var ErrMatchNotOver = errors.New("cannot record a match that is still ongoing")

// ResultsManager stores the outcome of finished matches. It never
// stores a match in progress.
type ResultsManager struct {
	queries     Querier
	serverIpNet pqtype.Inet
}

func NewResultsManager(queries Querier, serverIpNet pqtype.Inet) *ResultsManager {
	return &ResultsManager{queries: queries, serverIpNet: serverIpNet}
}

func (r *ResultsManager) RecordMatch(ctx context.Context, match *mb.Match) error {
	winner := match.Winner()
	if winner == nil {
		return ErrMatchNotOver
	}

	sides := match.Sides()
	return r.queries.InsertMatchResult(ctx, InsertMatchResultParams{
		MatchUuid:      match.Uuid(),
		Winner:         winner.Player.Name(),
		Shots:          int32(match.Shots()),
		Turns:          int32(match.Turn()),
		FirstSideSunk:  int32(sides[0].Board.SunkenShips()),
		SecondSideSunk: int32(sides[1].Board.SunkenShips()),
		ServerIp:       r.serverIpNet,
	})
}

func (r *ResultsManager) GetWinsCount(ctx context.Context, winner string) (int64, error) {
	return r.queries.CountMatchesWonBy(ctx, CountMatchesWonByParams{
		Winner:   winner,
		ServerIp: r.serverIpNet,
	})
}

func (r *ResultsManager) ListRecent(ctx context.Context, limit int32) ([]MatchResult, error) {
	return r.queries.ListRecentMatchResults(ctx, limit)
}
