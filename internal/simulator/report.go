package simulator

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/fileutil"
)

// Summary is the machine readable form of a Result
type Summary struct {
	Bowler       string  `json:"bowler"`
	Players      int     `json:"players"`
	Games        int     `json:"games"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	StdDev       float64 `json:"stddev"`
	P5           float64 `json:"p5"`
	P95          float64 `json:"p95"`
	MinScore     int     `json:"min_score"`
	MaxScore     int     `json:"max_score"`
	Strikes      int     `json:"strikes"`
	Spares       int     `json:"spares"`
	OpenFrames   int     `json:"open_frames"`
	PerfectGames int     `json:"perfect_games"`
	ElapsedMs    int64   `json:"elapsed_ms"`
}

// Summarize flattens a result
func Summarize(r *Result) Summary {
	stats := r.Stats
	return Summary{
		Bowler:       r.Bowler,
		Players:      r.Players,
		Games:        stats.Games,
		Mean:         stats.Mean(),
		Median:       stats.Median(),
		StdDev:       stats.StdDev(),
		P5:           stats.Percentile(0.05),
		P95:          stats.Percentile(0.95),
		MinScore:     stats.MinScore,
		MaxScore:     stats.MaxScore,
		Strikes:      stats.Strikes,
		Spares:       stats.Spares,
		OpenFrames:   stats.OpenFrames,
		PerfectGames: stats.PerfectGames,
		ElapsedMs:    r.Elapsed.Milliseconds(),
	}
}

// WriteStats writes the summary of r to path as JSON, replacing the file
// atomically.
func WriteStats(path string, r *Result) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Summarize(r))
	})
	if err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, r *Result) {
	stats := r.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS: %s bowler, %d players ===\n", r.Bowler, r.Players)
	fmt.Fprintf(w, "Games scored: %d (%s)\n", stats.Games, r.Elapsed.Round(time.Millisecond))

	fmt.Fprintf(w, "\n=== SCORES ===\n")
	fmt.Fprintf(w, "Mean: %.2f\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.2f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.2f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f]\n", low, high)
	fmt.Fprintf(w, "Range: %d - %d\n", stats.MinScore, stats.MaxScore)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== FRAMES ===\n")
	fmt.Fprintf(w, "Strikes: %d (%.1f%%)\n", stats.Strikes, stats.StrikeRate()*100)
	fmt.Fprintf(w, "Spares: %d\n", stats.Spares)
	fmt.Fprintf(w, "Open frames: %d\n", stats.OpenFrames)
	fmt.Fprintf(w, "Perfect games: %d\n", stats.PerfectGames)

	fmt.Fprintf(w, "\n=== SEATS ===\n")
	for seat := 1; seat <= bowling.MaxPlayers; seat++ {
		if ss := stats.SeatResults[seat]; ss.Games > 0 {
			fmt.Fprintf(w, "Seat %d: %d games, %.2f mean\n", seat, ss.Games, stats.SeatMean(seat))
		}
	}
}
