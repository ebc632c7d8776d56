package game

import (
	"boerenbridge-server/pkg/db"
	"boerenbridge-server/pkg/scoring"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const gameColumns = `
games.uuid,
games.max_cards,
games.status,
games.created`

// Game is a record in the `games` table
// A game has a fixed set of seated players and one round per round number
type Game struct {
	UUID     string         `json:"uuid"`
	MaxCards int            `json:"maxCards"`
	Status   scoring.Status `json:"status"`
	Created  time.Time      `json:"created"`
}

// GamePlayer is a player's seat in a game
// Position is the zero-based clockwise seat order
type GamePlayer struct {
	Player   *Player `json:"player"`
	PlayerID int64   `json:"playerId"`
	Position int     `json:"position"`
}

// CreateGame creates a new game with the players seated in the given order
func CreateGame(ctx context.Context, maxCards int, playerIDs []int64) (*Game, error) {
	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO games (uuid, max_cards)
VALUES ($1, $2)
RETURNING status, created`

	var status scoring.Status
	var created time.Time
	row := tx.QueryRowContext(ctx, query, u, maxCards)
	if err := row.Scan(&status, &created); err != nil {
		rollback(tx)
		return nil, err
	}

	const query2 = `
INSERT INTO games_players (game_uuid, player_id, position)
VALUES ($1, $2, $3)`

	for position, playerID := range playerIDs {
		if _, err := tx.ExecContext(ctx, query2, u, playerID, position); err != nil {
			rollback(tx)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Game{
		UUID:     u,
		MaxCards: maxCards,
		Status:   status,
		Created:  created,
	}, nil
}

func getGameByRow(row db.Scanner) (*Game, error) {
	var g Game
	if err := row.Scan(&g.UUID, &g.MaxCards, &g.Status, &g.Created); err != nil {
		return nil, err
	}

	return &g, nil
}

// GetGameByUUID returns a game by its UUID
func GetGameByUUID(ctx context.Context, uuid string) (*Game, error) {
	const query = `
SELECT ` + gameColumns + `
FROM games
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, uuid)
	return getGameByRow(row)
}

// GetGames returns a list of games, most recent first
func GetGames(ctx context.Context, offset int64, limit int) ([]*Game, error) {
	const query = `
SELECT ` + gameColumns + `
FROM games
ORDER BY created DESC
OFFSET $1
LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Game, 0)
	for rows.Next() {
		g, err := getGameByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, g)
	}

	return records, nil
}

// GetPlayers returns the game's seats ordered by position
func (g *Game) GetPlayers(ctx context.Context) ([]*GamePlayer, error) {
	const query = `
SELECT ` + playerColumns + `,
games_players.player_id,
games_players.position
FROM games_players
INNER JOIN players ON games_players.player_id = players.id
WHERE games_players.game_uuid = $1
ORDER BY games_players.position`

	rows, err := db.Instance().QueryContext(ctx, query, g.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*GamePlayer, 0)
	for rows.Next() {
		var p Player
		var gp GamePlayer
		if err := rows.Scan(&p.ID, &p.Name, &p.Created, &gp.PlayerID, &gp.Position); err != nil {
			return nil, err
		}

		gp.Player = &p
		records = append(records, &gp)
	}

	return records, nil
}

// Scoring returns the view of the game the scoring engine operates on
func (g *Game) Scoring(players []*GamePlayer) scoring.Game {
	participants := make([]scoring.Participant, len(players))
	for i, gp := range players {
		participants[i] = scoring.Participant{
			PlayerID: gp.PlayerID,
			Position: gp.Position,
		}
	}

	return scoring.Game{
		MaxCards:     g.MaxCards,
		Status:       g.Status,
		Participants: participants,
	}
}

// SetStatus transitions the game to the next status
// Completed and abandoned games cannot change status again
func (g *Game) SetStatus(ctx context.Context, next scoring.Status) error {
	if !g.Status.CanTransitionTo(next) {
		return UserError(fmt.Sprintf("game status cannot change from %s to %s", g.Status, next))
	}

	const query = `
UPDATE games
SET status = $1
WHERE uuid = $2 AND status = $3`

	res, err := db.Instance().ExecContext(ctx, query, next, g.UUID, g.Status)
	if err != nil {
		return err
	}

	if ra, _ := res.RowsAffected(); ra == 0 {
		return UserError("game status has already changed")
	}

	g.Status = next
	return nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
