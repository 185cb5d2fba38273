package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"durotar/internal/assets"
	"durotar/internal/config"
	"durotar/internal/maps"
	"durotar/internal/render"
	"durotar/internal/tiles"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file for world size and assets")
	fs.Parse(os.Args[2:])
	if fs.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reg, err := loadTiles(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "validate":
		os.Exit(runValidate(path, cfg, reg))
	case "viz":
		runViz(path, cfg, reg)
	case "stats":
		runStats(path, cfg, reg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptools <command> [-config file.yaml] <map-file>

Commands:
  validate   Report malformed or unknown tiles and check the spawn
  viz        Render the map with tile colors
  stats      Show tile distribution and passable %`)
}

func loadTiles(cfg config.Config) (*tiles.Registry, error) {
	var b *assets.Bundle
	var err error
	if cfg.Assets.Dir == "" {
		b, err = assets.Builtin()
	} else {
		b, err = assets.Load(cfg.Assets.Dir)
	}
	if err != nil {
		return nil, err
	}
	return b.Tiles, nil
}

func loadWorld(path string, cfg config.Config, reg *tiles.Registry) (*maps.World, []maps.Warning) {
	loader := maps.NewLoader(cfg.World.Cols, cfg.World.Rows, reg.Len(), zap.NewNop())
	w, warnings, err := loader.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return w, warnings
}

// --- validate ---

func runValidate(path string, cfg config.Config, reg *tiles.Registry) int {
	w, warnings := loadWorld(path, cfg, reg)
	fmt.Printf("Validating %s (%dx%d)...\n", path, w.Cols(), w.Rows())

	errors := len(warnings)
	for _, warn := range warnings {
		fmt.Printf("  ERROR: %s\n", warn)
	}

	sc, sr := cfg.Player.SpawnCol, cfg.Player.SpawnRow
	if !reg.Passable(w.At(sc, sr)) {
		fmt.Printf("  ERROR: spawn (%d,%d) is not passable\n", sc, sr)
		errors++
	}

	fmt.Printf("  fingerprint %016x\n", w.Fingerprint())
	if errors > 0 {
		fmt.Printf("\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Println("  OK")
	return 0
}

// --- viz ---

func runViz(path string, cfg config.Config, reg *tiles.Registry) {
	w, _ := loadWorld(path, cfg, reg)
	fmt.Printf("%s (%dx%d)\n", path, w.Cols(), w.Rows())

	colors := make(map[int]render.Cell)
	for _, tt := range reg.Types() {
		if tt.Image != nil {
			colors[tt.ID] = render.Cell{Bg: render.AverageColor(tt.Image)}
		}
	}

	// Two map rows per line using the upper half block.
	var sb strings.Builder
	for r := 0; r < w.Rows(); r += 2 {
		for c := 0; c < w.Cols(); c++ {
			top := colors[w.At(c, r)]
			bottom := colors[w.At(c, r+1)]
			render.WriteCellSGR(&sb, render.Cell{Ch: render.UpperHalf, Fg: top.Bg, Bg: bottom.Bg})
		}
		sb.WriteString(render.Reset)
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	fmt.Printf("\nSpawn: (%d,%d)\n", cfg.Player.SpawnCol, cfg.Player.SpawnRow)
	for _, tt := range reg.Types() {
		var sw strings.Builder
		render.WriteCellSGR(&sw, render.Cell{Ch: ' ', Bg: colors[tt.ID].Bg})
		fmt.Printf("  %s%s %d %s\n", sw.String(), render.Reset, tt.ID, tt.Name)
	}
}

// --- stats ---

func runStats(path string, cfg config.Config, reg *tiles.Registry) {
	w, warnings := loadWorld(path, cfg, reg)
	total := w.Cols() * w.Rows()
	fmt.Printf("%s (%dx%d = %d tiles)\n\n", path, w.Cols(), w.Rows(), total)

	type entry struct {
		name     string
		count    int
		passable bool
	}
	var sorted []entry
	passable := 0
	for id, count := range w.Counts() {
		tt, _ := reg.Lookup(id)
		sorted = append(sorted, entry{tt.Name, count, tt.Passable})
		if tt.Passable {
			passable += count
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })

	for _, e := range sorted {
		pct := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  %-10s %4d (%5.1f%%) %s\n", e.name, e.count, pct, bar)
	}

	fmt.Printf("\nPassable:    %d/%d (%.1f%%)\n", passable, total, float64(passable)/float64(total)*100)
	fmt.Printf("Warnings:    %d\n", len(warnings))
	fmt.Printf("Fingerprint: %016x\n", w.Fingerprint())
}
