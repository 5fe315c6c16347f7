// Package stats derives team- and player-level statistics from the season
// tables. Every function is a pure transformation: immutable inputs in, a new
// table out, so each stage is independently testable.
package stats

import (
	"fmt"
	"sort"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// JoinPlayerTeams joins players to teams to attach each player's team context
func JoinPlayerTeams(players map[int]models.Player, teams map[int]models.Team) (map[int]models.PlayerTeam, error) {
	result := make(map[int]models.PlayerTeam, len(players))
	for id, player := range players {
		team, ok := teams[player.TeamID]
		if !ok {
			return nil, fmt.Errorf("player %d: %w: %d", id, models.ErrUnknownTeam, player.TeamID)
		}
		result[id] = models.PlayerTeam{
			Player:        player,
			TeamName:      team.Name,
			TeamShortName: team.ShortName,
		}
	}
	return result, nil
}

// JoinFixtureTeams joins fixtures to teams twice, once for the home side and
// once for the away side.
func JoinFixtureTeams(fixtures map[int]models.Fixture, teams map[int]models.Team) ([]models.FixtureTeams, error) {
	result := make([]models.FixtureTeams, 0, len(fixtures))
	for id, fixture := range fixtures {
		home, ok := teams[fixture.HomeTeamID]
		if !ok {
			return nil, fmt.Errorf("fixture %d: %w: home team %d", id, models.ErrUnknownTeam, fixture.HomeTeamID)
		}
		away, ok := teams[fixture.AwayTeamID]
		if !ok {
			return nil, fmt.Errorf("fixture %d: %w: away team %d", id, models.ErrUnknownTeam, fixture.AwayTeamID)
		}
		result = append(result, models.FixtureTeams{
			Fixture:           fixture,
			HomeTeamName:      home.Name,
			HomeTeamShortName: home.ShortName,
			AwayTeamName:      away.Name,
			AwayTeamShortName: away.ShortName,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UnfoldTeamFixtureScores converts fixture rows (one per fixture) into rows
// per fixture and team combination, doubling the row count. Each row carries
// goals from that team's point of view and the is-home flag.
func UnfoldTeamFixtureScores(fixtureTeams []models.FixtureTeams) []models.TeamFixtureScore {
	result := make([]models.TeamFixtureScore, 0, len(fixtureTeams)*2)
	for _, ft := range fixtureTeams {
		result = append(result, models.TeamFixtureScore{
			FixtureID:         ft.ID,
			GameWeek:          ft.GameWeek,
			TeamID:            ft.HomeTeamID,
			IsHome:            true,
			TeamGoalsScored:   ft.HomeTeamScore,
			TeamGoalsConceded: ft.AwayTeamScore,
			TeamName:          ft.HomeTeamName,
			TeamShortName:     ft.HomeTeamShortName,
		})
		result = append(result, models.TeamFixtureScore{
			FixtureID:         ft.ID,
			GameWeek:          ft.GameWeek,
			TeamID:            ft.AwayTeamID,
			IsHome:            false,
			TeamGoalsScored:   ft.AwayTeamScore,
			TeamGoalsConceded: ft.HomeTeamScore,
			TeamName:          ft.AwayTeamName,
			TeamShortName:     ft.AwayTeamShortName,
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].GameWeek < result[j].GameWeek })
	return result
}

// CalcTeamScoreStats aggregates goals scored and conceded per team across all
// fixtures, split by venue. Ratio fields are nil when the home total is zero.
func CalcTeamScoreStats(scores []models.TeamFixtureScore) map[int]models.TeamScoreStats {
	result := make(map[int]models.TeamScoreStats)
	for _, score := range scores {
		ts := result[score.TeamID]
		ts.TeamID = score.TeamID
		ts.TeamShortName = score.TeamShortName
		if score.IsHome {
			ts.TotalTeamGoalsScoredHome += score.TeamGoalsScored
			ts.TotalTeamGoalsConcededHome += score.TeamGoalsConceded
		} else {
			ts.TotalTeamGoalsScoredAway += score.TeamGoalsScored
			ts.TotalTeamGoalsConcededAway += score.TeamGoalsConceded
		}
		result[score.TeamID] = ts
	}

	for id, ts := range result {
		ts.TotalTeamGoalsScored = ts.TotalTeamGoalsScoredHome + ts.TotalTeamGoalsScoredAway
		ts.TotalTeamGoalsConceded = ts.TotalTeamGoalsConcededHome + ts.TotalTeamGoalsConcededAway
		ts.TotalTeamGoalsScoredRatio = awayHomeRatio(ts.TotalTeamGoalsScoredHome, ts.TotalTeamGoalsScoredAway)
		ts.TotalTeamGoalsConcededRatio = awayHomeRatio(ts.TotalTeamGoalsConcededHome, ts.TotalTeamGoalsConcededAway)
		result[id] = ts
	}
	return result
}

// awayHomeRatio returns away/home, or nil when the home total is zero. A zero
// denominator is a missing value, never an infinity.
func awayHomeRatio(home, away int) *float64 {
	if home == 0 {
		return nil
	}
	r := float64(away) / float64(home)
	return &r
}
