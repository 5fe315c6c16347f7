package stats

import (
	"fmt"
	"sort"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// rollingWindow is the trailing fixture window for the recent averages
const rollingWindow = 10

// BuildPlayerFixtureStats denormalizes the player history against fixtures
// and the joined player-team aggregates, deriving the is-home flag and the
// opponent id for every row. History rows for players missing from the
// joined stats are ignored; an unknown fixture id is fatal.
func BuildPlayerFixtureStats(
	history []models.PlayerFixtureRecord,
	fixtures map[int]models.Fixture,
	playerStats map[int]models.PlayerTeamStats,
	scoreStats map[int]models.TeamScoreStats,
	oppPointStats map[int]models.TeamOppPointStats,
) ([]models.PlayerFixtureStat, error) {
	rows := make([]models.PlayerFixtureStat, 0, len(history))
	for _, record := range history {
		player, ok := playerStats[record.PlayerID]
		if !ok {
			continue
		}
		fixture, ok := fixtures[record.FixtureID]
		if !ok {
			return nil, fmt.Errorf("history row for player %d: %w: %d", record.PlayerID, models.ErrUnknownFixture, record.FixtureID)
		}
		teamID := player.PlayerTeam.TeamID
		if !fixture.Involves(teamID) {
			return nil, fmt.Errorf("player %d of team %d did not play in fixture %d", record.PlayerID, teamID, record.FixtureID)
		}
		oppTeamID, _ := fixture.OpponentOf(teamID)

		oppScores := scoreStats[oppTeamID]

		row := models.PlayerFixtureStat{
			PlayerID:                record.PlayerID,
			FixtureID:               record.FixtureID,
			GameWeek:                fixture.GameWeek,
			KickoffTime:             fixture.KickoffTime,
			PlayerName:              player.NameAndShortTeam(),
			Position:                player.Position,
			TeamID:                  teamID,
			OppTeamID:               oppTeamID,
			IsHome:                  fixture.HomeTeamID == teamID,
			MinutesPlayed:           record.MinutesPlayed,
			TotalPoints:             record.TotalPoints,
			TeamTotalPoints:         player.TeamTotalPoints,
			OppTeamTotalPoints:      oppPointStats[oppTeamID].OppTeamTotalPoints,
			TotalTeamGoalsScored:    player.TotalTeamGoalsScored,
			TotalTeamGoalsConceded:  player.TotalTeamGoalsConceded,
			TotalOppTeamGoalsScored: oppScores.TotalTeamGoalsScored,
		}
		row.TotalOppTeamGoalsScoredDiff = row.TotalTeamGoalsConceded - row.TotalOppTeamGoalsScored
		rows = append(rows, row)
	}
	return rows, nil
}

// CalcPlayerFixtureStats computes the rolling to-GW statistics for every
// player-fixture row. All aggregates are point-in-time safe: a row only sees
// fixtures strictly before its own kickoff, so the row's own result and any
// future gameweek never leak into its features. The first fixture a player
// appears in has no prior history: counts and cumulative sums are zero,
// averages are nil.
func CalcPlayerFixtureStats(rows []models.PlayerFixtureStat) []models.PlayerFixtureStat {
	result := make([]models.PlayerFixtureStat, len(rows))
	copy(result, rows)
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].KickoffTime.Equal(result[j].KickoffTime) {
			return result[i].KickoffTime.Before(result[j].KickoffTime)
		}
		return result[i].FixtureID < result[j].FixtureID
	})

	type playerHistory struct {
		gameWeeksPlayed map[int]bool
		totalPoints     int
		recentPoints    []float64
		recentMinutes   []float64
	}

	histories := make(map[int]*playerHistory)
	for i := range result {
		row := &result[i]
		hist, ok := histories[row.PlayerID]
		if !ok {
			hist = &playerHistory{gameWeeksPlayed: make(map[int]bool)}
			histories[row.PlayerID] = hist
		}

		row.GWsPlayedToGW = len(hist.gameWeeksPlayed)
		row.TotalPointsToGW = hist.totalPoints
		row.AvgPointsToGW = trailingMean(hist.recentPoints)
		row.AvgMinutesPlayedRecentlyToGW = trailingMean(hist.recentMinutes)
		row.AvgPointsOppPointsAdjToGW = opponentAdjusted(row.AvgPointsToGW, row.TeamTotalPoints, row.OppTeamTotalPoints)

		// Fold the current fixture in only after its features are fixed.
		if row.Played() {
			hist.gameWeeksPlayed[row.GameWeek] = true
		}
		hist.totalPoints += row.TotalPoints
		hist.recentPoints = appendTrailing(hist.recentPoints, float64(row.TotalPoints))
		hist.recentMinutes = appendTrailing(hist.recentMinutes, float64(row.MinutesPlayed))
	}
	return result
}

// opponentAdjusted weights the average by the ratio of the team's total
// points to the opponent's total points allowed. Nil when the average is
// missing or the opponent total is zero.
func opponentAdjusted(avg *float64, teamTotal, oppTotal int) *float64 {
	if avg == nil || oppTotal == 0 {
		return nil
	}
	adjusted := *avg * float64(teamTotal) / float64(oppTotal)
	return &adjusted
}

// trailingMean averages the trailing window, nil when it is empty
func trailingMean(window []float64) *float64 {
	if len(window) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	mean := sum / float64(len(window))
	return &mean
}

// appendTrailing appends to a window capped at rollingWindow entries
func appendTrailing(window []float64, v float64) []float64 {
	window = append(window, v)
	if len(window) > rollingWindow {
		window = window[1:]
	}
	return window
}
