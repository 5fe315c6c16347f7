package loader

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// historyKeyPattern extracts the player and fixture ids embedded in the
// history table's composite string key, e.g. "123_45".
var historyKeyPattern = regexp.MustCompile(`^(\d+)_(\d+)$`)

// Tables holds the four normalized season tables keyed by stable identifiers
type Tables struct {
	Players  map[int]models.Player
	Teams    map[int]models.Team
	Fixtures map[int]models.Fixture
	History  []models.PlayerFixtureRecord
}

// Loader reads a season's raw tables through the schema dictionary
type Loader struct {
	schema    *Schema
	seasonDir string
	logger    *logrus.Logger
}

// New creates a loader for the given season directory
func New(schema *Schema, seasonDir string, logger *logrus.Logger) *Loader {
	return &Loader{schema: schema, seasonDir: seasonDir, logger: logger}
}

// LoadAll loads the four season tables. Any missing or malformed source is a
// fatal error for the run; there is no silent skip.
func (l *Loader) LoadAll() (*Tables, error) {
	teams, err := l.LoadTeams()
	if err != nil {
		return nil, err
	}
	players, err := l.LoadPlayers()
	if err != nil {
		return nil, err
	}
	fixtures, err := l.LoadFixtures()
	if err != nil {
		return nil, err
	}
	history, err := l.LoadHistory()
	if err != nil {
		return nil, err
	}

	l.logger.WithFields(logrus.Fields{
		"players":  len(players),
		"teams":    len(teams),
		"fixtures": len(fixtures),
		"history":  len(history),
	}).Info("Season tables loaded")

	return &Tables{Players: players, Teams: teams, Fixtures: fixtures, History: history}, nil
}

// LoadTeams loads the team table keyed by team id
func (l *Loader) LoadTeams() (map[int]models.Team, error) {
	ds, t, err := l.open(DataSetTeam)
	if err != nil {
		return nil, err
	}

	idCol, err := t.column(ds, "team_id")
	if err != nil {
		return nil, err
	}
	codeCol, err := t.column(ds, "team_code")
	if err != nil {
		return nil, err
	}
	nameCol, err := t.column(ds, "team_name")
	if err != nil {
		return nil, err
	}
	shortCol, err := t.column(ds, "team_short_name")
	if err != nil {
		return nil, err
	}

	teams := make(map[int]models.Team, len(t.rows))
	for _, row := range t.rows {
		id, err := parseInt(t.file, "team_id", t.field(row, idCol))
		if err != nil {
			return nil, err
		}
		code, err := parseInt(t.file, "team_code", t.field(row, codeCol))
		if err != nil {
			return nil, err
		}
		teams[id] = models.Team{
			ID:        id,
			Code:      code,
			Name:      t.field(row, nameCol),
			ShortName: t.field(row, shortCol),
		}
	}
	return teams, nil
}

// LoadPlayers loads the player roster keyed by player id. Rows with a null
// team identifier are dropped; an unknown field position id is fatal.
func (l *Loader) LoadPlayers() (map[int]models.Player, error) {
	ds, t, err := l.open(DataSetPlayer)
	if err != nil {
		return nil, err
	}

	cols := map[string]int{}
	for _, canonical := range []string{"player_id", "first_name", "last_name", "name", "field_position_id", "player_team_id", "current_cost", "minutes_played", "total_points"} {
		idx, err := t.column(ds, canonical)
		if err != nil {
			return nil, err
		}
		cols[canonical] = idx
	}

	players := make(map[int]models.Player, len(t.rows))
	dropped := 0
	for _, row := range t.rows {
		if t.field(row, cols["player_team_id"]) == "" {
			dropped++
			continue
		}

		id, err := parseInt(t.file, "player_id", t.field(row, cols["player_id"]))
		if err != nil {
			return nil, err
		}
		teamID, err := parseInt(t.file, "player_team_id", t.field(row, cols["player_team_id"]))
		if err != nil {
			return nil, err
		}
		positionID, err := parseInt(t.file, "field_position_id", t.field(row, cols["field_position_id"]))
		if err != nil {
			return nil, err
		}
		position, err := models.PositionFromTypeID(positionID)
		if err != nil {
			return nil, fmt.Errorf("%s: player %d: %w", t.file, id, err)
		}
		cost, err := parseTenthsCost(t.file, "current_cost", t.field(row, cols["current_cost"]))
		if err != nil {
			return nil, err
		}
		minutes, err := parseInt(t.file, "minutes_played", t.field(row, cols["minutes_played"]))
		if err != nil {
			return nil, err
		}
		points, err := parseInt(t.file, "total_points", t.field(row, cols["total_points"]))
		if err != nil {
			return nil, err
		}

		players[id] = models.Player{
			ID:            id,
			FirstName:     t.field(row, cols["first_name"]),
			LastName:      t.field(row, cols["last_name"]),
			Name:          t.field(row, cols["name"]),
			Position:      position,
			TeamID:        teamID,
			CurrentCost:   cost,
			MinutesPlayed: minutes,
			TotalPoints:   points,
		}
	}

	if dropped > 0 {
		l.logger.WithField("rows", dropped).Warn("Dropped player rows with null team id")
	}
	return players, nil
}

// LoadFixtures loads the fixture table keyed by fixture id
func (l *Loader) LoadFixtures() (map[int]models.Fixture, error) {
	ds, t, err := l.open(DataSetFixture)
	if err != nil {
		return nil, err
	}

	cols := map[string]int{}
	for _, canonical := range []string{"fixture_id", "game_week", "kickoff_time", "home_team_id", "away_team_id", "home_team_score", "away_team_score", "home_difficulty", "away_difficulty"} {
		idx, err := t.column(ds, canonical)
		if err != nil {
			return nil, err
		}
		cols[canonical] = idx
	}

	fixtures := make(map[int]models.Fixture, len(t.rows))
	for _, row := range t.rows {
		id, err := parseInt(t.file, "fixture_id", t.field(row, cols["fixture_id"]))
		if err != nil {
			return nil, err
		}
		gameWeek, err := parseInt(t.file, "game_week", t.field(row, cols["game_week"]))
		if err != nil {
			return nil, err
		}
		kickoff, err := parseTime(t.file, "kickoff_time", t.field(row, cols["kickoff_time"]))
		if err != nil {
			return nil, err
		}
		homeID, err := parseInt(t.file, "home_team_id", t.field(row, cols["home_team_id"]))
		if err != nil {
			return nil, err
		}
		awayID, err := parseInt(t.file, "away_team_id", t.field(row, cols["away_team_id"]))
		if err != nil {
			return nil, err
		}
		homeScore, err := parseInt(t.file, "home_team_score", t.field(row, cols["home_team_score"]))
		if err != nil {
			return nil, err
		}
		awayScore, err := parseInt(t.file, "away_team_score", t.field(row, cols["away_team_score"]))
		if err != nil {
			return nil, err
		}
		homeDifficulty, err := parseInt(t.file, "home_difficulty", t.field(row, cols["home_difficulty"]))
		if err != nil {
			return nil, err
		}
		awayDifficulty, err := parseInt(t.file, "away_difficulty", t.field(row, cols["away_difficulty"]))
		if err != nil {
			return nil, err
		}

		fixtures[id] = models.Fixture{
			ID:             id,
			GameWeek:       gameWeek,
			KickoffTime:    kickoff,
			HomeTeamID:     homeID,
			AwayTeamID:     awayID,
			HomeTeamScore:  homeScore,
			AwayTeamScore:  awayScore,
			HomeDifficulty: homeDifficulty,
			AwayDifficulty: awayDifficulty,
		}
	}
	return fixtures, nil
}

// LoadHistory loads the player-gameweek history. The player and fixture ids
// are embedded in a composite string key; a key that does not match the
// expected pattern is fatal.
func (l *Loader) LoadHistory() ([]models.PlayerFixtureRecord, error) {
	ds, t, err := l.open(DataSetHistory)
	if err != nil {
		return nil, err
	}

	keyCol, err := t.column(ds, "key")
	if err != nil {
		return nil, err
	}
	minutesCol, err := t.column(ds, "game_minutes_played")
	if err != nil {
		return nil, err
	}
	pointsCol, err := t.column(ds, "game_total_points")
	if err != nil {
		return nil, err
	}
	costCol, err := t.column(ds, "game_cost")
	if err != nil {
		return nil, err
	}

	history := make([]models.PlayerFixtureRecord, 0, len(t.rows))
	for i, row := range t.rows {
		key := t.field(row, keyCol)
		match := historyKeyPattern.FindStringSubmatch(key)
		if match == nil {
			return nil, fmt.Errorf("%s: row %d: %w: %q", t.file, i+1, models.ErrInvalidKeyFormat, key)
		}
		playerID, err := parseInt(t.file, "key", match[1])
		if err != nil {
			return nil, err
		}
		fixtureID, err := parseInt(t.file, "key", match[2])
		if err != nil {
			return nil, err
		}
		minutes, err := parseInt(t.file, "game_minutes_played", t.field(row, minutesCol))
		if err != nil {
			return nil, err
		}
		points, err := parseInt(t.file, "game_total_points", t.field(row, pointsCol))
		if err != nil {
			return nil, err
		}
		cost, err := parseTenthsCost(t.file, "game_cost", t.field(row, costCol))
		if err != nil {
			return nil, err
		}

		history = append(history, models.PlayerFixtureRecord{
			PlayerID:      playerID,
			FixtureID:     fixtureID,
			MinutesPlayed: minutes,
			TotalPoints:   points,
			GameCost:      cost,
		})
	}
	return history, nil
}

func (l *Loader) open(dataSet string) (DataSetSchema, *table, error) {
	ds, err := l.schema.DataSet(dataSet)
	if err != nil {
		return DataSetSchema{}, nil, err
	}
	t, err := readTable(filepath.Join(l.seasonDir, ds.File))
	if err != nil {
		return DataSetSchema{}, nil, err
	}
	return ds, t, nil
}
