package parser

import (
	"errors"
	"testing"
)

// resultsPage has three data rows plus the trailing artifact row every page
// of the source carries.
const resultsPage = `
<table>
<tbody>
  <tr>
    <td>1</td><td>2023-07-05</td><td>3</td>
    <td><a href="race/tour-de-france/2023/stage-5">Tour de France | Stage 5</a></td>
    <td>2.UWT</td><td>162.7</td><td>60</td><td>25</td>
  </tr>
  <tr>
    <td>2</td><td>2023-06-11</td><td></td>
    <td><a href="race/criterium-du-dauphine/2023/gc">Dauphin&eacute; | GC</a></td>
    <td>2.UWT</td><td></td><td></td><td></td>
  </tr>
  <tr>
    <td>3</td><td>2023-04-23</td><td>12</td>
    <td><a href="race/liege-bastogne-liege/2023/result">Li&egrave;ge-Bastogne-Li&egrave;ge</a></td>
    <td>1.UWT</td><td>258.1</td><td>20</td><td>50</td>
  </tr>
  <tr>
    <td></td><td></td><td></td>
    <td><a href="race/liege-bastogne-liege/2023/result">Li&egrave;ge-Bastogne-Li&egrave;ge</a></td>
    <td></td><td></td><td></td><td></td>
  </tr>
</tbody>
</table>
`

func TestRows(t *testing.T) {
	rows, err := NewResultsParser().Rows(mustDoc(t, resultsPage))
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Rows() returned %d records, want 3 (trailing artifact row dropped)", len(rows))
	}

	first := rows[0]
	if first.Date != "2023-07-05" {
		t.Errorf("Date = %q", first.Date)
	}
	if first.Result != "3" {
		t.Errorf("Result = %q", first.Result)
	}
	if first.RaceName != "Tour de France | Stage 5" {
		t.Errorf("RaceName = %q", first.RaceName)
	}
	if first.RaceHref != "race/tour-de-france/2023/stage-5" {
		t.Errorf("RaceHref = %q", first.RaceHref)
	}
	if first.RaceSlug != "tour-de-france" {
		t.Errorf("RaceSlug = %q, want %q", first.RaceSlug, "tour-de-france")
	}
	if first.RaceYear != "2023" {
		t.Errorf("RaceYear = %q, want %q", first.RaceYear, "2023")
	}
	if first.Classification != "2.UWT" {
		t.Errorf("Classification = %q", first.Classification)
	}
	if first.Distance != "162.7" || first.PCSPoints != "60" || first.UCIPoints != "25" {
		t.Errorf("row = %+v", first)
	}

	// empty cells carry the "-" sentinel, never an empty string
	second := rows[1]
	if second.Result != "-" {
		t.Errorf("empty result = %q, want %q", second.Result, "-")
	}
	if second.Distance != "-" || second.PCSPoints != "-" || second.UCIPoints != "-" {
		t.Errorf("empty cells = %+v, want \"-\" sentinels", second)
	}

	// document order preserved
	if rows[2].RaceSlug != "liege-bastogne-liege" {
		t.Errorf("third row = %+v", rows[2])
	}
}

func TestRowsKeepTrailing(t *testing.T) {
	p := NewResultsParser()
	p.SkipTrailingRow = false
	rows, err := p.Rows(mustDoc(t, resultsPage))
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("Rows() returned %d records, want 4 with skip disabled", len(rows))
	}
}

func TestRowsMissingBody(t *testing.T) {
	var structErr *StructureError
	if _, err := NewResultsParser().Rows(mustDoc(t, `<table></table>`)); !errors.As(err, &structErr) {
		t.Errorf("Rows() error = %v, want StructureError", err)
	}
}

func TestRowsMissingRaceLink(t *testing.T) {
	page := `
<table><tbody>
  <tr><td>1</td><td>2023-07-05</td><td>3</td><td>no link</td><td>2.UWT</td><td></td><td></td><td></td></tr>
  <tr><td></td><td></td><td></td><td><a href="race/x/2023/gc">x</a></td><td></td><td></td><td></td><td></td></tr>
</tbody></table>`
	var structErr *StructureError
	if _, err := NewResultsParser().Rows(mustDoc(t, page)); !errors.As(err, &structErr) {
		t.Errorf("Rows() error = %v, want StructureError", err)
	}
}

func TestOffsets(t *testing.T) {
	page := `
<select name="offset">
  <option value="0">1-100</option>
  <option value="100">101-200</option>
  <option value="200">201-300</option>
</select>`
	offsets, err := NewResultsParser().Offsets(mustDoc(t, page))
	if err != nil {
		t.Fatalf("Offsets() error = %v", err)
	}
	want := []string{"0", "100", "200"}
	if len(offsets) != len(want) {
		t.Fatalf("Offsets() = %v, want %v", offsets, want)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("Offsets()[%d] = %q, want %q", i, offsets[i], want[i])
		}
	}
}

func TestOffsetsMissingSelector(t *testing.T) {
	var structErr *StructureError
	if _, err := NewResultsParser().Offsets(mustDoc(t, `<div></div>`)); !errors.As(err, &structErr) {
		t.Errorf("Offsets() error = %v, want StructureError", err)
	}
}

func TestRaceRef(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		wantSlug string
		wantYear string
		wantErr  bool
	}{
		{"stage result", "race/tour-de-france/2023/stage-5", "tour-de-france", "2023", false},
		{"one-day race", "race/liege-bastogne-liege/2023/result", "liege-bastogne-liege", "2023", false},
		{"short gc href", "race/paris-nice/gc", "paris-nice", "paris-nice", false},
		{"malformed", "race", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, year, err := RaceRef(tt.href)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RaceRef() error = %v, wantErr %v", err, tt.wantErr)
			}
			if slug != tt.wantSlug || year != tt.wantYear {
				t.Errorf("RaceRef() = (%q, %q), want (%q, %q)", slug, year, tt.wantSlug, tt.wantYear)
			}
		})
	}
}
