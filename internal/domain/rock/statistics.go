package rock

import "math"

// Statistics is the aggregate the goal dashboard renders. It is always
// derived from the current rock collection and never stored on its own.
type Statistics struct {
	TotalRocks      int `json:"totalRocks"`
	OnTrackRocks    int `json:"onTrackRocks"`
	OffTrackRocks   int `json:"offTrackRocks"`
	DoneRocks       int `json:"doneRocks"`
	AverageProgress int `json:"averageProgress"`
	TotalMilestones int `json:"totalMilestones"`
	DoneMilestones  int `json:"doneMilestones"`
}

// CalculateStatistics aggregates the rock collection: counts per status,
// average progress rounded to the nearest integer (0 for an empty
// collection), and milestone totals.
func CalculateStatistics(rocks []Rock) Statistics {
	stats := Statistics{TotalRocks: len(rocks)}

	var totalProgress float64
	for _, r := range rocks {
		switch r.Status {
		case StatusOnTrack:
			stats.OnTrackRocks++
		case StatusOffTrack:
			stats.OffTrackRocks++
		case StatusDone:
			stats.DoneRocks++
		}
		totalProgress += r.Progress
		stats.TotalMilestones += r.TotalMilestones
		stats.DoneMilestones += r.DoneMilestones
	}

	if stats.TotalRocks > 0 {
		stats.AverageProgress = int(math.Round(totalProgress / float64(stats.TotalRocks)))
	}

	return stats
}
