package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/1broseidon/halfscreen/internal/snap"
)

type targetOptions struct {
	x, y          float64
	width, height float64
	json          bool
}

type rectJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type targetJSON struct {
	Action string         `json:"action"`
	Frame  rectJSON       `json:"frame"`
	Target rectJSON       `json:"target"`
	Pixels snap.PixelRect `json:"pixels"`
}

func newTargetCmd() *cobra.Command {
	opts := &targetOptions{}
	cmd := &cobra.Command{
		Use:   "target [left|right|maximize]",
		Short: "Print the rectangle an action would give a window",
		Long: `Compute placement targets for a screen frame without touching any window.
With no action, every action is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTarget(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().Float64Var(&opts.x, "x", 0, "frame origin x")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "frame origin y")
	cmd.Flags().Float64Var(&opts.width, "width", 1920, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 1080, "frame height")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON even on a terminal")
	return cmd
}

func runTarget(w io.Writer, opts *targetOptions, args []string) error {
	frame := snap.Rect{
		Origin: snap.Point{X: opts.x, Y: opts.y},
		Size:   snap.Size{Width: opts.width, Height: opts.height},
	}
	if frame.Size.Empty() {
		return fmt.Errorf("frame must have a positive width and height (got %gx%g)", opts.width, opts.height)
	}

	actions := snap.Actions
	if len(args) == 1 {
		action, err := snap.ParseAction(args[0])
		if err != nil {
			return err
		}
		actions = []snap.Action{action}
	}

	out := make([]targetJSON, 0, len(actions))
	for _, action := range actions {
		target, ok := snap.Target(action, frame)
		if !ok {
			continue
		}
		out = append(out, targetJSON{
			Action: action.String(),
			Frame:  toRectJSON(frame),
			Target: toRectJSON(target),
			Pixels: target.Pixels(),
		})
	}

	if opts.json || !isTerminal(w) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(out) == 1 {
			return enc.Encode(out[0])
		}
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tX\tY\tWIDTH\tHEIGHT\tPIXELS")
	for _, t := range out {
		p := t.Pixels
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%d,%d %dx%d\n",
			t.Action, t.Target.X, t.Target.Y, t.Target.Width, t.Target.Height,
			p.X, p.Y, p.Width, p.Height)
	}
	return tw.Flush()
}

func toRectJSON(r snap.Rect) rectJSON {
	return rectJSON{X: r.Origin.X, Y: r.Origin.Y, Width: r.Size.Width, Height: r.Size.Height}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
