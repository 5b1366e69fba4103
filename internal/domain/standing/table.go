package standing

import "sort"

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
)

// ApplyResult folds one played match into both table rows: played increments,
// the win/draw/loss column and points move per the 3-1-0 rule, and the goal
// columns take the respective scores. A score of 0 is a valid score.
func ApplyResult(home, away *Standing, homeScore, awayScore int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		home.Won++
		home.Points += PointsWin
		away.Lost++
	case awayScore > homeScore:
		away.Won++
		away.Points += PointsWin
		home.Lost++
	default:
		home.Drawn++
		away.Drawn++
		home.Points += PointsDraw
		away.Points += PointsDraw
	}
}

// ReverseResult undoes a previously applied result so a corrected score can be
// re-applied without double-counting the aggregates.
func ReverseResult(home, away *Standing, homeScore, awayScore int) {
	home.Played--
	away.Played--
	home.GoalsFor -= homeScore
	home.GoalsAgainst -= awayScore
	away.GoalsFor -= awayScore
	away.GoalsAgainst -= homeScore

	switch {
	case homeScore > awayScore:
		home.Won--
		home.Points -= PointsWin
		away.Lost--
	case awayScore > homeScore:
		away.Won--
		away.Points -= PointsWin
		home.Lost--
	default:
		home.Drawn--
		away.Drawn--
		home.Points -= PointsDraw
		away.Points -= PointsDraw
	}
}

// SortTable orders rows for display: points desc, then goal difference desc,
// then goals for desc. Rows equal on all three keep their relative order.
func SortTable(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference() != rows[j].GoalDifference() {
			return rows[i].GoalDifference() > rows[j].GoalDifference()
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})
}
