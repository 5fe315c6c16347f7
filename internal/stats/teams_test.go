package stats

import (
	"testing"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

func testTeams() map[int]models.Team {
	return map[int]models.Team{
		1: {ID: 1, Code: 3, Name: "Arsenal", ShortName: "ARS"},
		2: {ID: 2, Code: 7, Name: "Aston Villa", ShortName: "AVL"},
	}
}

func testFixtures() map[int]models.Fixture {
	return map[int]models.Fixture{
		10: {ID: 10, GameWeek: 1, HomeTeamID: 1, AwayTeamID: 2, HomeTeamScore: 3, AwayTeamScore: 1},
		11: {ID: 11, GameWeek: 2, HomeTeamID: 2, AwayTeamID: 1, HomeTeamScore: 0, AwayTeamScore: 2},
	}
}

func TestJoinPlayerTeamsUnknownTeam(t *testing.T) {
	players := map[int]models.Player{
		5: {ID: 5, Name: "Smith", Position: models.PositionMID, TeamID: 99},
	}
	_, err := JoinPlayerTeams(players, testTeams())
	if err == nil {
		t.Fatal("expected error for unknown team id")
	}
}

func TestUnfoldTeamFixtureScores(t *testing.T) {
	fixtureTeams, err := JoinFixtureTeams(testFixtures(), testTeams())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	scores := UnfoldTeamFixtureScores(fixtureTeams)
	if len(scores) != 4 {
		t.Fatalf("expected one row per fixture and team combination (4), got %d", len(scores))
	}

	// Rows are sorted by game week; the first two belong to fixture 10.
	home := scores[0]
	away := scores[1]
	if !home.IsHome || home.TeamID != 1 {
		t.Fatalf("expected first row to be home team 1, got team %d home=%v", home.TeamID, home.IsHome)
	}
	if home.TeamGoalsScored != 3 || home.TeamGoalsConceded != 1 {
		t.Fatalf("home goals wrong: scored %d conceded %d", home.TeamGoalsScored, home.TeamGoalsConceded)
	}
	if away.IsHome || away.TeamGoalsScored != 1 || away.TeamGoalsConceded != 3 {
		t.Fatalf("away goals wrong: scored %d conceded %d", away.TeamGoalsScored, away.TeamGoalsConceded)
	}
}

func TestCalcTeamScoreStats(t *testing.T) {
	fixtureTeams, err := JoinFixtureTeams(testFixtures(), testTeams())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	statsByTeam := CalcTeamScoreStats(UnfoldTeamFixtureScores(fixtureTeams))

	arsenal := statsByTeam[1]
	if arsenal.TotalTeamGoalsScoredHome != 3 || arsenal.TotalTeamGoalsScoredAway != 2 {
		t.Fatalf("arsenal scored home=%d away=%d", arsenal.TotalTeamGoalsScoredHome, arsenal.TotalTeamGoalsScoredAway)
	}
	if arsenal.TotalTeamGoalsScored != 5 {
		t.Fatalf("expected total 5, got %d", arsenal.TotalTeamGoalsScored)
	}
	if arsenal.TotalTeamGoalsConceded != 1 {
		t.Fatalf("expected conceded total 1, got %d", arsenal.TotalTeamGoalsConceded)
	}
	if arsenal.TotalTeamGoalsScoredRatio == nil || *arsenal.TotalTeamGoalsScoredRatio != 2.0/3.0 {
		t.Fatalf("unexpected scored ratio %v", arsenal.TotalTeamGoalsScoredRatio)
	}
}

func TestCalcTeamScoreStatsZeroDenominator(t *testing.T) {
	// Villa scored 0 at home, so the away/home scored ratio is undefined.
	fixtureTeams, err := JoinFixtureTeams(testFixtures(), testTeams())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	statsByTeam := CalcTeamScoreStats(UnfoldTeamFixtureScores(fixtureTeams))

	villa := statsByTeam[2]
	if villa.TotalTeamGoalsScoredHome != 0 {
		t.Fatalf("expected villa home scored 0, got %d", villa.TotalTeamGoalsScoredHome)
	}
	if villa.TotalTeamGoalsScoredRatio != nil {
		t.Fatalf("expected missing ratio for zero denominator, got %v", *villa.TotalTeamGoalsScoredRatio)
	}
}
