package game

import (
	"boerenbridge-server/pkg/db"
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

const playerColumns = `
players.id,
players.name,
players.created`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// Player is a record in the `players` table
// Players are created once and referenced by ID from games
type Player struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

func getPlayerByRow(row db.Scanner) (*Player, error) {
	var player Player
	if err := row.Scan(&player.ID, &player.Name, &player.Created); err != nil {
		return nil, err
	}

	return &player, nil
}

// GetPlayerByID returns a player based on the ID
func GetPlayerByID(ctx context.Context, id int64) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getPlayerByRow(row)
}

// CreatePlayer creates a new player
// Names are unique; a taken name returns ErrDuplicateKey
func CreatePlayer(ctx context.Context, name string) (*Player, error) {
	const query = `
INSERT INTO players (name)
VALUES ($1)
RETURNING ` + playerColumns

	row := db.Instance().QueryRowContext(ctx, query, name)
	player, err := getPlayerByRow(row)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return player, nil
}

func getPlayers(rows *sql.Rows, err error) ([]*Player, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*Player, 0)
	for rows.Next() {
		player, err := getPlayerByRow(rows)
		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	return players, nil
}

// GetPlayers returns a list of players ordered by name
func GetPlayers(ctx context.Context, offset int64, limit int) ([]*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
ORDER BY name ASC
OFFSET $1
LIMIT $2`

	return getPlayers(db.Instance().QueryContext(ctx, query, offset, limit))
}
