package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexxxkny/lineclip/pkg/clip"
	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/selection"
)

var (
	classifyRect    string
	classifySegment string
	classifyEpsilon float32
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a segment against a rectangle",
	Long: `Classify reports whether a segment is inside, outside or partly inside a
rectangle and prints the visible part. Coordinates are centered pixels
(origin in the middle, y up).`,
	Example: `  lineclip classify --rect 0,0,10,10 --segment -5,5,15,5`,
	Args:    cobra.NoArgs,
	RunE:    runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyRect, "rect", "", "Rectangle corners x0,y0,x1,y1")
	classifyCmd.Flags().StringVar(&classifySegment, "segment", "", "Segment endpoints x0,y0,x1,y1")
	classifyCmd.Flags().Float32Var(&classifyEpsilon, "epsilon", clip.DefaultEpsilon, "Boundary tolerance in centered pixels")
	_ = classifyCmd.MarkFlagRequired("rect")
	_ = classifyCmd.MarkFlagRequired("segment")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	p, q, err := parsePair(classifyRect)
	if err != nil {
		return fmt.Errorf("--rect: %w", err)
	}
	s0, s1, err := parsePair(classifySegment)
	if err != nil {
		return fmt.Errorf("--segment: %w", err)
	}
	if classifyEpsilon <= 0 {
		return fmt.Errorf("--epsilon must be positive, got %v", classifyEpsilon)
	}

	rect := selection.NewRectangle(p, q)
	segment := geometry.NewLine(s0, s1)
	outcome := clip.New(classifyEpsilon).Classify(rect, segment)

	slog.Debug("classified",
		"relation", outcome.Relation.String(),
		"start", clip.ComputeOutcode(segment.Start, rect).String(),
		"end", clip.ComputeOutcode(segment.End, rect).String())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Borders:  left %.3f, right %.3f, top %.3f, bottom %.3f\n", rect.Left(), rect.Right(), rect.Top(), rect.Bottom())
	fmt.Fprintf(out, "Relation: %s\n", outcome.Relation)
	visible := outcome.Visible
	switch outcome.Relation {
	case clip.Inside:
		visible = segment
	case clip.Outside:
		return nil
	}
	fmt.Fprintf(out, "Visible:  %s\n", visible)
	fmt.Fprintf(out, "Length:   %.3f\n", visible.Length())
	return nil
}
