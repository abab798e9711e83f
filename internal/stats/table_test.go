package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Oefening", "Goed", "Score"}
	rows := [][]string{
		{"Analoog → Digitaal", "12", "80%"},
		{"Tekst → Analoge klok", "3", "100%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Oefening              Goed  Score" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "────────────────────  ────  ─────" {
		t.Fatalf("unexpected rule line: %q", lines[1])
	}
	if lines[2] != "Analoog → Digitaal      12    80%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
	if lines[3] != "Tekst → Analoge klok     3   100%" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
