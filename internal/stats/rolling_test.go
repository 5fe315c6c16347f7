package stats

import (
	"testing"
	"time"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

func kickoff(day int) time.Time {
	return time.Date(2019, 8, day, 15, 0, 0, 0, time.UTC)
}

// syntheticSeason builds the minimal season: 2 teams, 3 fixtures, 1 player
// appearing in all three with points [2, 5, 3] and minutes [90, 90, 45].
func syntheticSeason() ([]models.PlayerFixtureRecord, map[int]models.Fixture, map[int]models.PlayerTeam) {
	fixtures := map[int]models.Fixture{
		1: {ID: 1, GameWeek: 1, KickoffTime: kickoff(10), HomeTeamID: 1, AwayTeamID: 2},
		2: {ID: 2, GameWeek: 2, KickoffTime: kickoff(17), HomeTeamID: 2, AwayTeamID: 1},
		3: {ID: 3, GameWeek: 3, KickoffTime: kickoff(24), HomeTeamID: 1, AwayTeamID: 2},
	}
	players := map[int]models.PlayerTeam{
		5: {
			Player:        models.Player{ID: 5, Name: "Salah", Position: models.PositionMID, TeamID: 1},
			TeamName:      "Liverpool",
			TeamShortName: "LIV",
		},
	}
	history := []models.PlayerFixtureRecord{
		{PlayerID: 5, FixtureID: 1, MinutesPlayed: 90, TotalPoints: 2},
		{PlayerID: 5, FixtureID: 2, MinutesPlayed: 90, TotalPoints: 5},
		{PlayerID: 5, FixtureID: 3, MinutesPlayed: 45, TotalPoints: 3},
	}
	return history, fixtures, players
}

func buildSyntheticRows(t *testing.T) []models.PlayerFixtureStat {
	t.Helper()
	history, fixtures, players := syntheticSeason()

	scoreStats := map[int]models.TeamScoreStats{}
	pointStats, err := CalcTeamPointStats(history, players, fixtures)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	oppPointStats, err := CalcTeamOppPointStats(history, players, fixtures)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	playerStats := JoinPlayerTeamStats(players, scoreStats, pointStats)
	rows, err := BuildPlayerFixtureStats(history, fixtures, playerStats, scoreStats, oppPointStats)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return CalcPlayerFixtureStats(rows)
}

func TestRollingAveragesExcludeCurrentFixture(t *testing.T) {
	rows := buildSyntheticRows(t)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// First fixture: no prior history, so the average is missing.
	if rows[0].AvgPointsToGW != nil {
		t.Fatalf("expected missing average before first fixture, got %v", *rows[0].AvgPointsToGW)
	}
	if rows[1].AvgPointsToGW == nil || *rows[1].AvgPointsToGW != 2 {
		t.Fatalf("expected average 2 before second fixture, got %v", rows[1].AvgPointsToGW)
	}
	if rows[2].AvgPointsToGW == nil || *rows[2].AvgPointsToGW != 3.5 {
		t.Fatalf("expected average 3.5 before third fixture, got %v", rows[2].AvgPointsToGW)
	}
}

func TestCumulativeGameweekCount(t *testing.T) {
	rows := buildSyntheticRows(t)

	expected := []int{0, 1, 2}
	for i, row := range rows {
		if row.GWsPlayedToGW != expected[i] {
			t.Fatalf("row %d: expected %d gameweeks played, got %d", i, expected[i], row.GWsPlayedToGW)
		}
	}

	// Non-decreasing within the player's chronological sequence.
	for i := 1; i < len(rows); i++ {
		if rows[i].GWsPlayedToGW < rows[i-1].GWsPlayedToGW {
			t.Fatalf("gameweek count decreased at row %d", i)
		}
	}
}

func TestCumulativeCountZeroBeforeFirstMinute(t *testing.T) {
	history, fixtures, players := syntheticSeason()
	// The player did not get on the pitch in the first fixture.
	history[0].MinutesPlayed = 0

	playerStats := JoinPlayerTeamStats(players, map[int]models.TeamScoreStats{}, map[int]models.TeamPointStats{})
	rows, err := BuildPlayerFixtureStats(history, fixtures, playerStats, map[int]models.TeamScoreStats{}, map[int]models.TeamOppPointStats{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rows = CalcPlayerFixtureStats(rows)

	if rows[0].GWsPlayedToGW != 0 || rows[1].GWsPlayedToGW != 0 {
		t.Fatalf("expected zero gameweeks played before first recorded minute, got %d then %d", rows[0].GWsPlayedToGW, rows[1].GWsPlayedToGW)
	}
	if rows[2].GWsPlayedToGW != 1 {
		t.Fatalf("expected 1 gameweek played before third fixture, got %d", rows[2].GWsPlayedToGW)
	}
}

func TestRecentMinutesAverage(t *testing.T) {
	rows := buildSyntheticRows(t)

	if rows[0].AvgMinutesPlayedRecentlyToGW != nil {
		t.Fatal("expected missing minutes average before first fixture")
	}
	if rows[2].AvgMinutesPlayedRecentlyToGW == nil || *rows[2].AvgMinutesPlayedRecentlyToGW != 90 {
		t.Fatalf("expected 90 minutes average before third fixture, got %v", rows[2].AvgMinutesPlayedRecentlyToGW)
	}
}

func TestOpponentAdjustedAverage(t *testing.T) {
	rows := buildSyntheticRows(t)

	// Team total points 10, opponent-allowed total 10: adjustment factor 1.
	second := rows[1]
	if second.AvgPointsOppPointsAdjToGW == nil {
		t.Fatal("expected adjusted average before second fixture")
	}
	if *second.AvgPointsOppPointsAdjToGW != 2 {
		t.Fatalf("expected adjusted average 2, got %v", *second.AvgPointsOppPointsAdjToGW)
	}
}

func TestRowsCarryJoinedPlayerTeamContext(t *testing.T) {
	history, fixtures, players := syntheticSeason()
	scoreStats := map[int]models.TeamScoreStats{
		1: {TeamID: 1, TotalTeamGoalsScored: 6, TotalTeamGoalsConceded: 4},
	}
	pointStats := map[int]models.TeamPointStats{
		1: {TeamID: 1, TeamTotalPoints: 10},
	}

	playerStats := JoinPlayerTeamStats(players, scoreStats, pointStats)
	rows, err := BuildPlayerFixtureStats(history, fixtures, playerStats, scoreStats, map[int]models.TeamOppPointStats{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	row := rows[0]
	if row.PlayerName != "Salah (LIV)" {
		t.Fatalf("unexpected player name %q", row.PlayerName)
	}
	if row.TeamTotalPoints != 10 {
		t.Fatalf("expected joined team total 10, got %d", row.TeamTotalPoints)
	}
	if row.TotalTeamGoalsScored != 6 || row.TotalTeamGoalsConceded != 4 {
		t.Fatalf("joined goal totals wrong: scored %d conceded %d", row.TotalTeamGoalsScored, row.TotalTeamGoalsConceded)
	}
}

func TestOpponentGoalsDiff(t *testing.T) {
	history, fixtures, players := syntheticSeason()
	scoreStats := map[int]models.TeamScoreStats{
		1: {TeamID: 1, TotalTeamGoalsScored: 6, TotalTeamGoalsConceded: 4},
		2: {TeamID: 2, TotalTeamGoalsScored: 7, TotalTeamGoalsConceded: 2},
	}

	playerStats := JoinPlayerTeamStats(players, scoreStats, map[int]models.TeamPointStats{})
	rows, err := BuildPlayerFixtureStats(history, fixtures, playerStats, scoreStats, map[int]models.TeamOppPointStats{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Team 1 conceded 4 in total; opponent team 2 scored 7 in total.
	if rows[0].TotalOppTeamGoalsScoredDiff != 4-7 {
		t.Fatalf("expected diff -3, got %d", rows[0].TotalOppTeamGoalsScoredDiff)
	}
}
