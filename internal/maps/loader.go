package maps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Warning reasons recorded while loading a map.
const (
	ReasonMalformed  = "malformed"
	ReasonOutOfRange = "out of range"
)

// Warning describes a map value that was replaced by tile 0.
type Warning struct {
	Row, Col int
	Token    string
	Reason   string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d col %d: %s token %q", w.Row, w.Col, w.Reason, w.Token)
}

// Loader reads text maps into fixed-size worlds.
type Loader struct {
	cols, rows int
	tileCount  int
	log        *zap.Logger
}

// NewLoader creates a loader for cols x rows worlds. Ids outside
// [0, tileCount) are coerced to 0; a tileCount of 0 disables that check.
func NewLoader(cols, rows, tileCount int, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cols: cols, rows: rows, tileCount: tileCount, log: logger}
}

// LoadFile reads a text map from disk.
func (l *Loader) LoadFile(path string) (*World, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open map file: %w", err)
	}
	defer f.Close()

	w, warnings, err := l.Load(f)
	if err != nil {
		return nil, warnings, fmt.Errorf("load %s: %w", path, err)
	}
	return w, warnings, nil
}

// Load parses up to rows lines of whitespace-separated ids, each holding up
// to cols values. Missing lines and values stay 0. Bad values become 0 and
// are reported as warnings; only read errors fail the load.
func (l *Loader) Load(r io.Reader) (*World, []Warning, error) {
	w := NewWorld(l.cols, l.rows)
	var warnings []Warning

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for row := 0; row < l.rows && sc.Scan(); row++ {
		fields := strings.Fields(sc.Text())
		for col := 0; col < l.cols && col < len(fields); col++ {
			tok := fields[col]
			id, err := strconv.Atoi(tok)
			reason := ""
			switch {
			case err != nil:
				reason = ReasonMalformed
			case id < 0 || (l.tileCount > 0 && id >= l.tileCount):
				reason = ReasonOutOfRange
			}
			if reason != "" {
				wn := Warning{Row: row, Col: col, Token: tok, Reason: reason}
				warnings = append(warnings, wn)
				l.log.Warn("invalid tile id, using 0",
					zap.Int("row", row),
					zap.Int("col", col),
					zap.String("token", tok),
					zap.String("reason", reason))
				continue
			}
			w.set(col, row, id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read map: %w", err)
	}

	l.log.Info("map loaded",
		zap.Int("cols", w.Cols()),
		zap.Int("rows", w.Rows()),
		zap.Int("warnings", len(warnings)),
		zap.String("fingerprint", fmt.Sprintf("%016x", w.Fingerprint())))
	return w, warnings, nil
}

// Coerce replaces every id outside [0, tileCount) with 0 and returns one
// warning per replaced cell.
func (w *World) Coerce(tileCount int) []Warning {
	var warnings []Warning
	for i, id := range w.cells {
		if id >= 0 && id < tileCount {
			continue
		}
		warnings = append(warnings, Warning{
			Row:    i / w.cols,
			Col:    i % w.cols,
			Token:  strconv.Itoa(id),
			Reason: ReasonOutOfRange,
		})
		w.cells[i] = 0
	}
	return warnings
}
