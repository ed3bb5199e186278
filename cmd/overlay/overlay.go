package overlay

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/feederwatch/dashboard/internal/conf"
	"github.com/feederwatch/dashboard/internal/loader"
	"github.com/feederwatch/dashboard/internal/overlay"
)

// barWidth is the number of cells drawn for the full video duration.
const barWidth = 50

type options struct {
	at     float64
	asJSON bool
}

// Command creates a new cobra.Command that lays out the detection overlay of a video.
func Command(ctx *conf.Context) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "overlay [video.json|video.yaml]",
		Short: "Lay out detection bars and tracked boxes for a video",
		Long: "Assign overlapping detections to stacked lanes on the progress bar. " +
			"With --at, also list the tracked bounding boxes visible at that playback time.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queryTime := math.NaN()
			if cmd.Flags().Changed("at") {
				queryTime = opts.at
			}
			return run(cmd, ctx, opts, args[0], queryTime)
		},
	}

	cmd.Flags().Float64Var(&opts.at, "at", 0, "Playback time in seconds for bounding boxes")
	cmd.Flags().Float64("max-delta", overlay.DefaultMaxFrameDelta, "Maximum distance in seconds to a frame sample")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the composed frame as JSON")

	// Bind flags to configuration
	_ = ctx.BindFlag("overlay.maxframedelta", cmd.Flags().Lookup("max-delta"))

	return cmd
}

// run composes the frame. A NaN queryTime matches no frame sample, so only
// the detection lanes are printed.
func run(cmd *cobra.Command, ctx *conf.Context, opts *options, path string, queryTime float64) error {
	video, err := loader.LoadVideo(path)
	if err != nil {
		return err
	}

	frame := overlay.Compose(video, queryTime, ctx.Settings.Overlay.MaxFrameDelta)
	ctx.Metrics.Dashboard.RecordLaneAssignment(len(frame.Placements), frame.Lanes)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		if math.IsNaN(frame.Time) {
			frame.Time = 0
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(frame)
	}

	if err := printLanes(out, video, frame); err != nil {
		return err
	}
	if math.IsNaN(queryTime) {
		return nil
	}
	return printBoxes(out, frame)
}

func printLanes(w io.Writer, video *overlay.Video, frame overlay.Frame) error {
	fmt.Fprintf(w, "Video %s, %.1fs, %d detections in %d lanes\n", video.ID, video.Duration, len(frame.Placements), frame.Lanes)

	for lane := range frame.Lanes {
		fmt.Fprintf(w, "\nLane %d\n", lane)
		for _, p := range frame.Placements {
			if p.Lane != lane {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %s %s %6.2f%% +%6.2f%%  %s\n",
				progressBar(p), swatch(p), p.StartPercent, p.Width, p.Interval.SourceID); err != nil {
				return err
			}
		}
	}
	return nil
}

func printBoxes(w io.Writer, frame overlay.Frame) error {
	fmt.Fprintf(w, "\nTracked boxes at %.2fs: %d\n", frame.Time, len(frame.Boxes))
	for _, b := range frame.Boxes {
		box := b.Frame.BoundingBox
		if _, err := fmt.Fprintf(w, "  %-12s %-20s [%.3f %.3f %.3f %.3f] sampled at %.2fs\n",
			b.TrackID, b.Label, box[0], box[1], box[2], box[3], b.Frame.Timestamp); err != nil {
			return err
		}
	}
	return nil
}

// swatch renders the label on its lane colour.
func swatch(p overlay.Placement) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Color)).
		Foreground(lipgloss.Color(p.TextColor)).
		Padding(0, 1).
		Render(p.Interval.Label)
}

// progressBar draws the placement's span across barWidth cells.
func progressBar(p overlay.Placement) string {
	start := int(math.Floor(p.StartPercent / 100 * barWidth))
	end := int(math.Ceil(p.EndPercent / 100 * barWidth))
	start = min(max(start, 0), barWidth-1)
	end = min(max(end, start+1), barWidth)

	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(strings.Repeat("█", end-start))
	return "|" + strings.Repeat("·", start) + filled + strings.Repeat("·", barWidth-end) + "|"
}
