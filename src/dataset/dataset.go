// Package dataset loads the creature-stats table and derives the immutable
// lookup structures (palette, extents) the views are built from.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/slothcoder21/ecs163-25s/src/logging"
)

// NumStats is the number of numeric stat dimensions per record.
const NumStats = 6

// Stat dimension indices, in the fixed order the parallel view draws them.
const (
	StatHP = iota
	StatAttack
	StatDefense
	StatSpAtk
	StatSpDef
	StatSpeed
)

// DimensionNames holds the display label per stat dimension, indexed by the
// Stat* constants. The order is fixed and shared by scales and views.
var DimensionNames = [NumStats]string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}

// columnNames maps stat index to the expected CSV header name.
var columnNames = [NumStats]string{"HP", "Attack", "Defense", "Sp_Atk", "Sp_Def", "Speed"}

// Record is one dataset row. Stats are float64 so a failed numeric coercion
// can stay NaN instead of becoming an error; NaN positions simply fall off
// the plot, mirroring the upstream behaviour.
type Record struct {
	Name        string
	PrimaryType string
	Stats       [NumStats]float64
	Legendary   bool

	// ID is Name + "_" + PrimaryType and correlates the same record across
	// views. Two rows sharing name and type collide; that is an accepted
	// limitation of the dataset, not an error.
	ID string
}

// Stat returns the value for a dimension index; out-of-range indices yield NaN.
func (r *Record) Stat(dim int) float64 {
	if dim < 0 || dim >= NumStats {
		return math.NaN()
	}
	return r.Stats[dim]
}

// Load parses CSV rows into records, preserving input order.
// Required columns: Name, Type_1. Stat columns that are absent or
// non-numeric yield NaN. isLegendary is true iff the cell is exactly "True".
func Load(r io.Reader) ([]Record, error) {
	start := time.Now()
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	nameIdx, ok := col["Name"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "Name")
	}
	typeIdx, ok := col["Type_1"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "Type_1")
	}
	var statIdx [NumStats]int
	for i, c := range columnNames {
		if j, ok := col[c]; ok {
			statIdx[i] = j
		} else {
			statIdx[i] = -1
			logging.Warnf("dataset: column %q not present; values default to NaN", c)
		}
	}
	legendIdx := -1
	if j, ok := col["isLegendary"]; ok {
		legendIdx = j
	}

	var out []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec := Record{
			Name:        field(row, nameIdx),
			PrimaryType: field(row, typeIdx),
		}
		for i := range rec.Stats {
			rec.Stats[i] = parseStat(field(row, statIdx[i]))
			if math.IsNaN(rec.Stats[i]) && statIdx[i] >= 0 {
				logging.Debugf("dataset: line %d: non-numeric %s %q kept as NaN", line, columnNames[i], field(row, statIdx[i]))
			}
		}
		// Exact-match coercion: anything but the literal token "True" is false.
		rec.Legendary = field(row, legendIdx) == "True"
		rec.ID = rec.Name + "_" + rec.PrimaryType
		out = append(out, rec)
	}
	logging.TimeTrack(start, fmt.Sprintf("dataset load (%d rows)", len(out)))
	return out, nil
}

// LoadFile loads records from a local CSV file.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	recs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Fetch performs the one-shot dataset download. No retries and no timeout
// tuning: the dashboard is best-effort and a failed fetch leaves it empty.
func Fetch(url string) ([]Record, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	recs, err := Load(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return recs, nil
}

// LoadSource loads from a http(s) URL or a local path.
func LoadSource(src string) ([]Record, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return Fetch(src)
	}
	return LoadFile(src)
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseStat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
