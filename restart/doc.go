// Package restart supplies RestartsSchedule implementations for
// github.com/katalvlaran/maxclique/clique: Never, which disables
// restarts entirely, and Luby, a scaled Luby-sequence schedule that
// restarts the search from the root after a growing number of
// backtracks, carrying learned nogoods forward.
package restart
