package stats

import (
	"fmt"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// CalcTeamPointStats sums the points scored by all players of a team, split
// by the is-home flag via group-then-pivot, and derives the away/home ratio.
// History rows for players missing from the roster (dropped at load for a
// null team id) are ignored. An unknown fixture id is fatal.
func CalcTeamPointStats(history []models.PlayerFixtureRecord, players map[int]models.PlayerTeam, fixtures map[int]models.Fixture) (map[int]models.TeamPointStats, error) {
	result := make(map[int]models.TeamPointStats)
	for _, record := range history {
		player, ok := players[record.PlayerID]
		if !ok {
			continue
		}
		fixture, ok := fixtures[record.FixtureID]
		if !ok {
			return nil, fmt.Errorf("history row for player %d: %w: %d", record.PlayerID, models.ErrUnknownFixture, record.FixtureID)
		}

		ts := result[player.TeamID]
		ts.TeamID = player.TeamID
		if fixture.HomeTeamID == player.TeamID {
			ts.TeamTotalPointsHome += record.TotalPoints
		} else {
			ts.TeamTotalPointsAway += record.TotalPoints
		}
		result[player.TeamID] = ts
	}

	for id, ts := range result {
		ts.TeamTotalPoints = ts.TeamTotalPointsHome + ts.TeamTotalPointsAway
		ts.TotalPointsHomeAwayRatio = awayHomeRatio(ts.TeamTotalPointsHome, ts.TeamTotalPointsAway)
		result[id] = ts
	}
	return result, nil
}

// CalcTeamOppPointStats applies the same long-to-wide aggregation keyed on
// each team's role as the opponent: the points scored against a team, split
// by the scoring side's venue.
func CalcTeamOppPointStats(history []models.PlayerFixtureRecord, players map[int]models.PlayerTeam, fixtures map[int]models.Fixture) (map[int]models.TeamOppPointStats, error) {
	result := make(map[int]models.TeamOppPointStats)
	for _, record := range history {
		player, ok := players[record.PlayerID]
		if !ok {
			continue
		}
		fixture, ok := fixtures[record.FixtureID]
		if !ok {
			return nil, fmt.Errorf("history row for player %d: %w: %d", record.PlayerID, models.ErrUnknownFixture, record.FixtureID)
		}
		oppTeamID, ok := fixture.OpponentOf(player.TeamID)
		if !ok {
			return nil, fmt.Errorf("player %d of team %d did not play in fixture %d", record.PlayerID, player.TeamID, record.FixtureID)
		}

		ts := result[oppTeamID]
		ts.TeamID = oppTeamID
		if fixture.HomeTeamID == player.TeamID {
			ts.OppTeamTotalPointsHome += record.TotalPoints
		} else {
			ts.OppTeamTotalPointsAway += record.TotalPoints
		}
		result[oppTeamID] = ts
	}

	for id, ts := range result {
		ts.OppTeamTotalPoints = ts.OppTeamTotalPointsHome + ts.OppTeamTotalPointsAway
		result[id] = ts
	}
	return result, nil
}

// CalcPositionPointStats sums points per field position split by venue and
// derives the dampened home/away ratio for each position.
func CalcPositionPointStats(history []models.PlayerFixtureRecord, players map[int]models.PlayerTeam, fixtures map[int]models.Fixture) (map[models.Position]models.PositionPointStats, error) {
	result := make(map[models.Position]models.PositionPointStats, models.NumPositions)
	for _, record := range history {
		player, ok := players[record.PlayerID]
		if !ok {
			continue
		}
		fixture, ok := fixtures[record.FixtureID]
		if !ok {
			return nil, fmt.Errorf("history row for player %d: %w: %d", record.PlayerID, models.ErrUnknownFixture, record.FixtureID)
		}

		ps := result[player.Position]
		ps.Position = player.Position
		if fixture.HomeTeamID == player.TeamID {
			ps.TotalPointsHome += record.TotalPoints
		} else {
			ps.TotalPointsAway += record.TotalPoints
		}
		result[player.Position] = ps
	}

	for pos, ps := range result {
		ps.HomeAwayRatio = DampenedHomeAwayRatio(ps.TotalPointsHome, ps.TotalPointsAway)
		result[pos] = ps
	}
	return result, nil
}

// DampenedHomeAwayRatio computes 1 - (1 - away/home)/2: the raw away/home
// ratio pulled halfway toward 1.0 to reduce the influence of home advantage.
// Nil when the home total is zero.
func DampenedHomeAwayRatio(home, away int) *float64 {
	raw := awayHomeRatio(home, away)
	if raw == nil {
		return nil
	}
	dampened := 1 - (1-*raw)/2
	return &dampened
}

// JoinPlayerTeamStats combines each player's team context with the team goal
// aggregates and the team's total player points.
func JoinPlayerTeamStats(players map[int]models.PlayerTeam, scoreStats map[int]models.TeamScoreStats, pointStats map[int]models.TeamPointStats) map[int]models.PlayerTeamStats {
	result := make(map[int]models.PlayerTeamStats, len(players))
	for id, player := range players {
		result[id] = models.PlayerTeamStats{
			PlayerTeam:      player,
			TeamScoreStats:  scoreStats[player.TeamID],
			TeamTotalPoints: pointStats[player.TeamID].TeamTotalPoints,
		}
	}
	return result
}
