package dataset

import (
	"math"
	"strings"
	"testing"
)

const sampleCSV = `Name,Type_1,HP,Attack,Defense,Sp_Atk,Sp_Def,Speed,isLegendary
Bulbasaur,Grass,45,49,49,65,65,45,False
Charmander,Fire,39,52,43,60,50,65,False
Articuno,Ice,90,85,100,95,125,85,True
Moltres,Fire,90,100,90,125,85,90,TRUE
Glitchmon,Fire,??,52,43,60,50,65,False
`

func mustLoad(t *testing.T, csv string) []Record {
	t.Helper()
	recs, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return recs
}

func TestLoad_DerivedIDAndOrder(t *testing.T) {
	recs := mustLoad(t, sampleCSV)
	if len(recs) != 5 {
		t.Fatalf("expected 5 records, got %d", len(recs))
	}
	// Input order preserved
	wantNames := []string{"Bulbasaur", "Charmander", "Articuno", "Moltres", "Glitchmon"}
	for i, w := range wantNames {
		if recs[i].Name != w {
			t.Fatalf("row %d: got %q want %q", i, recs[i].Name, w)
		}
	}
	if recs[0].ID != "Bulbasaur_Grass" {
		t.Fatalf("id derivation mismatch: %q", recs[0].ID)
	}
}

func TestLoad_IDCollisionForEqualNameAndType(t *testing.T) {
	csv := "Name,Type_1,HP,isLegendary\nDitto,Normal,48,False\nDitto,Normal,48,False\n"
	recs := mustLoad(t, csv)
	if recs[0].ID != recs[1].ID {
		t.Fatalf("expected colliding ids, got %q vs %q", recs[0].ID, recs[1].ID)
	}
}

func TestLoad_LegendaryExactTokenOnly(t *testing.T) {
	recs := mustLoad(t, sampleCSV)
	if !recs[2].Legendary {
		t.Fatalf("Articuno should be legendary")
	}
	// "TRUE" is not the literal token "True" and must coerce to false.
	if recs[3].Legendary {
		t.Fatalf("case-insensitive match must not count as legendary")
	}
	if recs[0].Legendary || recs[1].Legendary {
		t.Fatalf("False rows flagged legendary")
	}
}

func TestLoad_NonNumericStatStaysNaN(t *testing.T) {
	recs := mustLoad(t, sampleCSV)
	g := recs[4]
	if !math.IsNaN(g.Stats[StatHP]) {
		t.Fatalf("expected NaN HP for %q, got %v", g.Name, g.Stats[StatHP])
	}
	// Neighbouring columns unaffected
	if g.Stats[StatAttack] != 52 {
		t.Fatalf("attack corrupted: %v", g.Stats[StatAttack])
	}
}

func TestLoad_MissingStatColumnYieldsNaN(t *testing.T) {
	csv := "Name,Type_1,Attack,isLegendary\nPidgey,Normal,45,False\n"
	recs := mustLoad(t, csv)
	if !math.IsNaN(recs[0].Stats[StatHP]) || !math.IsNaN(recs[0].Stats[StatSpeed]) {
		t.Fatalf("absent columns should load as NaN")
	}
	if recs[0].Stats[StatAttack] != 45 {
		t.Fatalf("present column lost: %v", recs[0].Stats[StatAttack])
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	if _, err := Load(strings.NewReader("Name,HP\nA,1\n")); err == nil {
		t.Fatalf("expected error for missing Type_1")
	}
	if _, err := Load(strings.NewReader("Type_1,HP\nGrass,1\n")); err == nil {
		t.Fatalf("expected error for missing Name")
	}
}

func TestBuildPalette_PureAndSortedDomain(t *testing.T) {
	recs := mustLoad(t, sampleCSV)
	p := BuildPalette(recs)
	want := []string{"Fire", "Grass", "Ice"}
	got := p.Types()
	if len(got) != len(want) {
		t.Fatalf("domain size: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("domain order: got %v want %v", got, want)
		}
	}
	// Same type always yields the same color; rebuild yields identical mapping.
	p2 := BuildPalette(recs)
	for _, ty := range want {
		if p.Color(ty) != p2.Color(ty) {
			t.Fatalf("palette not stable for %q", ty)
		}
	}
	// Distinct types get distinct colors within the cycle size.
	if p.Color("Fire") == p.Color("Grass") {
		t.Fatalf("adjacent types share a color")
	}
	// Outside the domain: fallback, not a zero value.
	if p.Color("Dragon") != fallbackColor {
		t.Fatalf("unknown type should map to fallback")
	}
}

func TestSummarize_ExtentsSkipNaN(t *testing.T) {
	recs := mustLoad(t, sampleCSV)
	s := Summarize(recs)
	if s.Rows != 5 || s.Legendary != 1 {
		t.Fatalf("rows/legendary: got %d/%d", s.Rows, s.Legendary)
	}
	hp := s.Stats[StatHP]
	if hp.Count != 4 {
		t.Fatalf("NaN HP row included in count: %d", hp.Count)
	}
	if hp.Min != 39 || hp.Max != 90 {
		t.Fatalf("hp extent: got [%v,%v]", hp.Min, hp.Max)
	}
	wantMean := (45.0 + 39 + 90 + 90) / 4
	if math.Abs(hp.Mean-wantMean) > 1e-9 {
		t.Fatalf("hp mean: got %v want %v", hp.Mean, wantMean)
	}
}

func TestValues_FiniteOnlyInOrder(t *testing.T) {
	recs := mustLoad(t, sampleCSV)
	vs := Values(recs, StatHP)
	want := []float64{45, 39, 90, 90}
	if len(vs) != len(want) {
		t.Fatalf("got %v", vs)
	}
	for i := range want {
		if vs[i] != want[i] {
			t.Fatalf("got %v want %v", vs, want)
		}
	}
}
