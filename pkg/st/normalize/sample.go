package normalize

import "github.com/komsit37/sportstrader/pkg/st/types"

// SampleMarkets returns the placeholder markets shown when no market data was received.
// A fresh slice is returned on every call.
func SampleMarkets() []types.Market {
	return []types.Market{
		{
			ID:            "nfl-kc-superbowl",
			Title:         "Chiefs win the Super Bowl",
			VolumeDisplay: "$1,284k Vol.",
			Price:         42,
			ChangePct:     3.4,
			Sport:         "Football",
		},
		{
			ID:            "nba-bos-finals",
			Title:         "Celtics win the NBA Finals",
			VolumeDisplay: "$962k Vol.",
			Price:         31,
			ChangePct:     -1.2,
			Sport:         "Basketball",
		},
		{
			ID:            "ufc-main-ko",
			Title:         "Main event ends by KO/TKO",
			VolumeDisplay: "$318k Vol.",
			Price:         57,
			ChangePct:     5.8,
			Sport:         "MMA",
		},
		{
			ID:            "epl-ars-title",
			Title:         "Arsenal win the Premier League",
			VolumeDisplay: "$745k Vol.",
			Price:         38,
			ChangePct:     -0.6,
			Sport:         "Soccer",
		},
	}
}
