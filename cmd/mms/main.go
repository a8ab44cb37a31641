package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avaldr/mms/internal/calculus"
	"github.com/avaldr/mms/internal/config"
	"github.com/avaldr/mms/internal/export"
	"github.com/avaldr/mms/internal/fdcheck"
	"github.com/avaldr/mms/internal/field"
	"github.com/avaldr/mms/internal/grid"
	"github.com/avaldr/mms/internal/optim"
	"github.com/avaldr/mms/internal/storage"
	"github.com/avaldr/mms/internal/viz"
)

var (
	dataDir    string
	nx, ny     int
	x0, x1     float64
	y0, y1     float64
	quantity   string
	configFile string
	preset     string
	seed       int64
	numPoints  int
	frameRate  int
	plotRow    int
	plotCol    string
	svgSlice   int
	cellSize   int
	startX     float64
	startY     float64
	descStep   float64
	descIters  int
	descTol    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mms",
		Short: "exact forcing terms for manufactured solutions via forward-mode AD",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mms", "data directory")

	sampleCmd := &cobra.Command{
		Use:   "sample [field]",
		Short: "sample a field and its derivatives over a grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample,
	}
	sampleCmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "samples along x")
	sampleCmd.Flags().IntVar(&ny, "ny", config.DefaultNy, "samples along y")
	sampleCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "domain lower x")
	sampleCmd.Flags().Float64Var(&x1, "x1", config.DefaultX1, "domain upper x")
	sampleCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "domain lower y")
	sampleCmd.Flags().Float64Var(&y1, "y1", config.DefaultY1, "domain upper y")
	sampleCmd.Flags().StringVar(&quantity, "quantity", "value", "quantity to tabulate")
	sampleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sampleCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	verifyCmd := &cobra.Command{
		Use:   "verify [field]",
		Short: "cross-check AD derivatives against finite differences",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}
	verifyCmd.Flags().IntVar(&numPoints, "points", 20, "number of random sample points")
	verifyCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	verifyCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "domain lower x")
	verifyCmd.Flags().Float64Var(&x1, "x1", config.DefaultX1, "domain upper x")
	verifyCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "domain lower y")
	verifyCmd.Flags().Float64Var(&y1, "y1", config.DefaultY1, "domain upper y")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list available fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := field.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tQUANTITIES")
			for _, name := range registry.List() {
				e, _ := registry.Get(name)
				fmt.Fprintf(w, "%s\t%s\t%v\n", e.Name, e.Kind, grid.Quantities(e.Kind))
			}
			return w.Flush()
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a slice of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotRow, "row", -1, "grid row to plot (default: middle)")
	plotCmd.Flags().StringVar(&plotCol, "column", "", "column to plot (default: last)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run samples as an SVG heatmap",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgSlice, "slice", -1, "export one row as a curve instead of a heatmap")
	exportSVGCmd.Flags().IntVar(&cellSize, "cell", 8, "heatmap cell size in pixels")

	liveCmd := &cobra.Command{
		Use:   "live [field]",
		Short: "sweep slices of a field in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "samples along x")
	liveCmd.Flags().IntVar(&ny, "ny", config.DefaultNy, "samples along y")
	liveCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "domain lower x")
	liveCmd.Flags().Float64Var(&x1, "x1", config.DefaultX1, "domain upper x")
	liveCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "domain lower y")
	liveCmd.Flags().Float64Var(&y1, "y1", config.DefaultY1, "domain upper y")
	liveCmd.Flags().StringVar(&quantity, "quantity", "value", "quantity to display")
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "slices per second")

	minimizeCmd := &cobra.Command{
		Use:   "minimize [field]",
		Short: "find a critical point by descending the exact gradient",
		Args:  cobra.ExactArgs(1),
		RunE:  runMinimize,
	}
	minimizeCmd.Flags().Float64Var(&startX, "x", 0.5, "starting x")
	minimizeCmd.Flags().Float64Var(&startY, "y", 0.5, "starting y")
	minimizeCmd.Flags().Float64Var(&descStep, "step", 0.1, "descent step size")
	minimizeCmd.Flags().IntVar(&descIters, "iters", 1000, "maximum iterations")
	minimizeCmd.Flags().Float64Var(&descTol, "tol", 1e-10, "gradient norm tolerance")

	presetsCmd := &cobra.Command{
		Use:   "presets [field]",
		Short: "list available presets for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for field: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sampleCmd, verifyCmd, listCmd, fieldsCmd, plotCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd,
		minimizeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func specFromFlags(cmd *cobra.Command, fieldName string) (grid.Spec, error) {
	if preset != "" {
		cfg := config.GetPreset(fieldName, preset)
		if cfg == nil {
			return grid.Spec{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(fieldName))
		}
		nx, ny = cfg.Nx, cfg.Ny
		x0, x1 = cfg.Domain.X0, cfg.Domain.X1
		y0, y1 = cfg.Domain.Y0, cfg.Domain.Y1
		quantity = cfg.Quantity
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return grid.Spec{}, fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override config
		if !cmd.Flags().Changed("nx") {
			nx = cfg.Nx
		}
		if !cmd.Flags().Changed("ny") {
			ny = cfg.Ny
		}
		if !cmd.Flags().Changed("x0") {
			x0 = cfg.Domain.X0
		}
		if !cmd.Flags().Changed("x1") {
			x1 = cfg.Domain.X1
		}
		if !cmd.Flags().Changed("y0") {
			y0 = cfg.Domain.Y0
		}
		if !cmd.Flags().Changed("y1") {
			y1 = cfg.Domain.Y1
		}
		if !cmd.Flags().Changed("quantity") {
			quantity = cfg.Quantity
		}
	}

	return grid.Spec{Nx: nx, Ny: ny, X0: x0, X1: x1, Y0: y0, Y1: y1, Quantity: quantity}, nil
}

func runSample(cmd *cobra.Command, args []string) error {
	fieldName := args[0]

	spec, err := specFromFlags(cmd, fieldName)
	if err != nil {
		return err
	}

	registry := field.NewRegistry()
	entry, err := registry.Get(fieldName)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("sampling %s (%s) on %dx%d grid...\n", fieldName, spec.Quantity, spec.Nx, spec.Ny)
	start := time.Now()

	result, err := grid.Run(context.Background(), entry, spec)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(fieldName, spec, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Points))
	fmt.Println("\nerror norms (AD vs finite differences):")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3e\n", name, val)
	}

	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	fieldName := args[0]

	registry := field.NewRegistry()
	entry, err := registry.Get(fieldName)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	maxErr := 0.0
	if entry.Kind == field.ScalarKind {
		fmt.Fprintln(w, "X\tY\tAD ∂/∂x\tFD ∂/∂x\tAD ∂/∂y\tFD ∂/∂y")
		for p := 0; p < numPoints; p++ {
			px := x0 + rng.Float64()*(x1-x0)
			py := y0 + rng.Float64()*(y1-y0)

			g := calculus.Gradient(entry.First(calculus.Coords(px, py)))
			fd := fdcheck.Gradient(entry.EvalPlain, []float64{px, py})

			for i := range fd {
				if d := abs(float64(g[i]) - fd[i]); d > maxErr {
					maxErr = d
				}
			}
			fmt.Fprintf(w, "%.4f\t%.4f\t%.8f\t%.8f\t%.8f\t%.8f\n",
				px, py, float64(g[0]), fd[0], float64(g[1]), fd[1])
		}
	} else {
		fmt.Fprintln(w, "X\tY\tAD div\tFD div")
		for p := 0; p < numPoints; p++ {
			px := x0 + rng.Float64()*(x1-x0)
			py := y0 + rng.Float64()*(y1-y0)

			div := float64(calculus.Divergence(entry.FirstVec(calculus.Coords(px, py))))
			fd, err := fdcheck.Divergence(entry.EvalPlainVec, []float64{px, py})
			if err != nil {
				return err
			}

			if d := abs(div - fd); d > maxErr {
				maxErr = d
			}
			fmt.Fprintf(w, "%.4f\t%.4f\t%.8f\t%.8f\n", px, py, div, fd)
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nmax abs deviation: %.3e\n", maxErr)
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tQUANTITY\tTIME\tGRID\tLINF")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%.2e\n",
			run.ID,
			run.Field,
			run.Quantity,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nx,
			run.Ny,
			run.Metrics["linf_err"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	cols, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	col := len(cols) - 1
	if plotCol != "" {
		col = -1
		for i, name := range cols {
			if name == plotCol {
				col = i
			}
		}
		if col < 0 {
			return fmt.Errorf("unknown column: %s (available: %v)", plotCol, cols)
		}
	}

	row := plotRow
	if row < 0 {
		row = meta.Ny / 2
	}
	if row >= meta.Ny {
		return fmt.Errorf("row %d out of range (ny=%d)", row, meta.Ny)
	}

	data := make([]float64, meta.Nx)
	for i := 0; i < meta.Nx; i++ {
		data[i] = rows[row*meta.Nx+i][col]
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("field: %s (%s)\n\n", meta.Field, meta.Quantity)

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s along row %d", cols[col], row)),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	cols, rows, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(cols); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = strconv.FormatFloat(val, 'f', 6, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	cols, rows, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, cols, rows)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	cols, rows, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	col := len(cols) - 1

	if svgSlice >= 0 {
		if svgSlice >= meta.Ny {
			return fmt.Errorf("slice %d out of range (ny=%d)", svgSlice, meta.Ny)
		}
		xs := make([]float64, meta.Nx)
		ys := make([]float64, meta.Nx)
		for i := 0; i < meta.Nx; i++ {
			xs[i] = rows[svgSlice*meta.Nx+i][0]
			ys[i] = rows[svgSlice*meta.Nx+i][col]
		}
		fmt.Println(export.CurveSVG(xs, ys, 640, 320, "#00ff00"))
		return nil
	}

	svg := export.HeatmapSVG(rows, meta.Nx, meta.Ny, col, cellSize)
	if svg == "" {
		return fmt.Errorf("sample shape does not match %dx%d grid", meta.Nx, meta.Ny)
	}
	fmt.Println(svg)
	return nil
}

func runMinimize(cmd *cobra.Command, args []string) error {
	fieldName := args[0]

	registry := field.NewRegistry()
	entry, err := registry.Get(fieldName)
	if err != nil {
		return err
	}
	if entry.Kind != field.ScalarKind {
		return fmt.Errorf("minimize requires a scalar field, %s is %s", fieldName, entry.Kind)
	}

	d := optim.Descent{Step: descStep, MaxIters: descIters, Tol: descTol}

	tr, err := d.Minimize(context.Background(), entry.First, []float64{startX, startY})
	if err != nil && tr == nil {
		return err
	}

	if err != nil {
		fmt.Printf("warning: %v\n\n", err)
	}

	fmt.Printf("field: %s\n", fieldName)
	fmt.Printf("iterations: %d\n", tr.Iters)
	fmt.Printf("point: (%.8f, %.8f)\n", tr.Point[0], tr.Point[1])
	fmt.Printf("value: %.8g\n", tr.Value)
	fmt.Printf("|grad|: %.3e\n", tr.Norm)

	if len(tr.Values) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(tr.Values,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("value per iteration"),
		))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	fieldName := args[0]

	registry := field.NewRegistry()
	entry, err := registry.Get(fieldName)
	if err != nil {
		return err
	}

	spec := grid.Spec{Nx: nx, Ny: ny, X0: x0, X1: x1, Y0: y0, Y1: y1, Quantity: quantity}

	m := viz.NewModel(entry, spec, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
