package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/i474232898/temperature-heatmap/internal/render"
)

var (
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch the dataset once and write the heat map as html, svg or png",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "output format: html, svg or png")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output file, - for stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	switch renderFormat {
	case "html", "svg", "png":
	default:
		return fmt.Errorf("unknown format %q", renderFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout*2)
	defer cancel()

	snapshot, err := newService(cfg).Refresh(ctx)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		switch renderFormat {
		case "svg":
			return render.SVG(w, snapshot.Chart)
		case "png":
			return render.PNG(w, snapshot.Dataset, snapshot.Chart.Layout)
		default:
			return render.Page(w, &snapshot.Chart, "")
		}
	}

	if renderOut == "-" {
		return write(cmd.OutOrStdout())
	}
	return writeFile(renderOut, write)
}

// writeFile creates path and fills it with write. A failed render or close
// removes the file so no truncated output is left behind.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
