package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"durotar/internal/maps"
)

var tileNames = map[int]string{
	maps.DefaultGround: "field",
	maps.DefaultBorder: "border",
	maps.DefaultWater:  "water",
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	size := flag.String("size", "50x50", "map size as COLSxROWS")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	cols, rows, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d map (seed %d)...\n", cols, rows, *seed)
	world, spawnCol, spawnRow := maps.Generate(cols, rows, *seed)

	if *out == "" {
		err = world.WriteText(os.Stdout)
	} else {
		err = writeFile(*out, world)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing map: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Spawn: player.spawn_col=%d player.spawn_row=%d\n", spawnCol, spawnRow)
	fmt.Fprintf(os.Stderr, "Fingerprint: %016x\n", world.Fingerprint())

	counts := world.Counts()
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	total := cols * rows
	fmt.Fprintf(os.Stderr, "\nTile distribution:\n")
	for _, id := range ids {
		fmt.Fprintf(os.Stderr, "  %-8s %5d (%5.1f%%)\n", tileNames[id], counts[id], float64(counts[id])/float64(total)*100)
	}
}

func writeFile(path string, world *maps.World) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := world.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected COLSxROWS)", s)
	}
	cols, err := strconv.Atoi(parts[0])
	if err != nil || cols < 10 {
		return 0, 0, fmt.Errorf("invalid cols %q (minimum 10)", parts[0])
	}
	rows, err := strconv.Atoi(parts[1])
	if err != nil || rows < 10 {
		return 0, 0, fmt.Errorf("invalid rows %q (minimum 10)", parts[1])
	}
	return cols, rows, nil
}
