// Command stagecraft-demo is a small end-to-end exercise of the
// Screen/Player/Scene/Frame stack against a real terminal, grounded on
// vito-dang/cmd/dang's cobra root-command shape (SPEC_FULL.md §2
// "cmd/stagecraft-demo uses spf13/cobra").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/driver"
	"github.com/gostagecraft/stagecraft/renderers"
	"github.com/gostagecraft/stagecraft/widgets"
)

func main() {
	var (
		sceneName string
		fps       int
		seed      int64
		reduceCPU bool
		mouse     bool
		forceTTY  bool
	)

	root := &cobra.Command{
		Use:   "stagecraft-demo",
		Short: "Play a built-in demo reel against the real terminal",
		Long: `stagecraft-demo drives a small fixed set of Scenes (an intro banner,
a dashboard Frame with live widgets, and a particle fireworks display)
through stagecraft.Play against a real ANSIDriver.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(sceneName, fps, seed, reduceCPU, mouse, forceTTY)
		},
	}

	root.Flags().StringVar(&sceneName, "scene", "", "name of the Scene to start on (default: first)")
	root.Flags().IntVar(&fps, "fps", 30, "frames per second")
	root.Flags().Int64Var(&seed, "seed", 1, "seed for the process-wide PRNG, for reproducible playback")
	root.Flags().BoolVar(&reduceCPU, "reduce-cpu", false, "halve the redraw rate of every once-per-frame effect")
	root.Flags().BoolVar(&mouse, "mouse", true, "enable SGR mouse reporting")
	root.Flags().BoolVar(&forceTTY, "force-tty", false, "treat stdin/stdout as a real terminal even when redirected")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(sceneName string, fps int, seed int64, reduceCPU, mouse, forceTTY bool) error {
	stagecraft.SeedRNG(uint64(seed), uint64(seed)+1)

	if forceTTY {
		os.Setenv("FORCE_TTY", "1")
	}

	drv, err := driver.Open(mouse)
	if err != nil {
		return fmt.Errorf("open terminal driver: %w", err)
	}
	defer drv.Close()

	logger := stagecraft.NewLogger(256)
	screen := stagecraft.NewScreen(drv, 0, logger)
	defer screen.Close()

	opts := stagecraft.Options{
		FPS:           fps,
		StartScene:    sceneName,
		ReduceCPU:     reduceCPU,
		ForceTTY:      forceTTY,
		MouseTracking: mouse,
		Logger:        logger,
	}

	for {
		scenes := buildScenes(screen)
		err := stagecraft.Play(screen, scenes, &opts)
		var resize *stagecraft.ResizeError
		if ok := asResizeError(err, &resize); ok {
			// The terminal changed size mid-play: Screen.Resize already ran,
			// rebuild the Scenes against the new dimensions and resume on
			// the Scene that was active (spec.md §7 "ScreenResized").
			opts.StartScene = resize.Scene.Name
			continue
		}
		return err
	}
}

func asResizeError(err error, target **stagecraft.ResizeError) bool {
	if err == nil {
		return false
	}
	re, ok := err.(*stagecraft.ResizeError)
	if !ok {
		return false
	}
	*target = re
	return true
}

// buildScenes assembles the demo reel sized to the Screen's current
// dimensions: an intro banner, a live dashboard Frame, and a fireworks
// finale.
func buildScenes(screen *stagecraft.Screen) []*stagecraft.Scene {
	w, h := screen.Canvas.Width(), screen.Canvas.Height()

	intro := introScene(w, h)
	dashboard := dashboardScene(w, h)
	finale := fireworksScene(w, h)

	return []*stagecraft.Scene{intro, dashboard, finale}
}

func introScene(w, h int) *stagecraft.Scene {
	bubble := renderers.NewSpeechBubble("stagecraft demo", "", true)
	print := stagecraft.NewPrint(bubble, 0, h/2-2, true, stagecraft.DefaultStyle, false, false)
	return stagecraft.NewScene([]stagecraft.Effect{print}, 90, true, "intro")
}

// dashboardScene hosts a live BarChart renderer next to a small input
// Frame, both Effects in the same Scene so the chart keeps animating while
// the Frame takes focus (spec.md §4.6 "Scenes host any mix of Effects").
func dashboardScene(w, h int) *stagecraft.Scene {
	samples := []func() float64{
		func() float64 { return 20 + 60*stagecraft.RNG().Float64() },
		func() float64 { return 40 + 40*stagecraft.RNG().Float64() },
		func() float64 { return 10 + 80*stagecraft.RNG().Float64() },
	}
	chartW, chartH := w/2, h-2
	if chartW < 10 {
		chartW = 10
	}
	chart := renderers.NewBarChart(chartH, chartW, samples, renderers.AxesBoth, 100)
	chartPrint := stagecraft.NewPrint(chart, 1, 1, false, stagecraft.DefaultStyle, false, false)

	frame := buildInputFrame(chartW+2, 1, w-chartW-4, h-2)

	return stagecraft.NewScene([]stagecraft.Effect{chartPrint, frame}, -1, true, "dashboard")
}

// buildInputFrame is a small form demonstrating Text/CheckBox/Button/
// DropdownList wired through Frame's Data map (spec.md §4.7).
func buildInputFrame(x, y, w, h int) *widgets.Frame {
	if w < 20 {
		w = 20
	}
	if h < 8 {
		h = 8
	}
	frame := widgets.NewFrame(x, y, w, h, "settings", widgets.BorderSingle, false)

	name := widgets.NewText("name", "Name:")
	active := widgets.NewCheckBox("active", "active")
	mode := widgets.NewDropdownList("mode", []widgets.Option{
		{Label: "fast", Value: "fast"},
		{Label: "normal", Value: "normal"},
		{Label: "thorough", Value: "thorough"},
	})

	form := widgets.NewLayout([]int{1}, false)
	form.AddWidget(name, 0)
	form.AddWidget(active, 0)
	form.AddWidget(mode, 0)
	frame.AddLayout(form)

	buttons := widgets.NewLayout([]int{1, 1}, false)
	buttons.AddWidget(widgets.NewButton("OK", func() {
		_ = frame.Save(true)
	}), 0)
	buttons.AddWidget(widgets.NewButton("Cancel", func() {
		frame.Reset()
	}), 1)
	frame.AddLayout(buttons)

	frame.Fix()
	frame.SetData(map[string]any{"name": "demo", "active": true, "mode": "normal"})
	return frame
}

// fireworksScene launches a handful of ring fireworks against a cleared
// canvas, exercising the particle/emitter machinery (spec.md §4.5).
func fireworksScene(w, h int) *stagecraft.Scene {
	var effects []stagecraft.Effect
	colours := []stagecraft.Color{
		stagecraft.ColorRed, stagecraft.ColorYellow, stagecraft.ColorCyan, stagecraft.ColorGreen,
	}
	for i := 0; i < 4; i++ {
		x := float64(w) * (float64(i) + 1) / 5
		y := float64(h) / 3
		effects = append(effects, stagecraft.NewRingFirework(x, y, 20+i*5, colours[i%len(colours)]))
	}
	return stagecraft.NewScene(effects, 150, true, "finale")
}
