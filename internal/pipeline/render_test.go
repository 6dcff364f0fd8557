package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"switchports/internal"
)

func TestRenderDoesNotTruncate(t *testing.T) {
	longDevice := strings.Repeat("d", 40)
	longSwitch := strings.Repeat("s", 30)
	rows := []internal.ReportRow{
		{DeviceName: longDevice, SwitchName: longSwitch, Port: "12"},
		{DeviceName: "AP", SwitchName: "Core", Port: "?"},
	}

	var out bytes.Buffer
	if err := Render(&out, rows); err != nil {
		t.Fatal(err)
	}

	want := expectedReport(
		longDevice+" | "+longSwitch+" | 12",
		reportLine("AP", "Core", "?"),
	)
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := Render(&out, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%d", len(lines))
	}
	if lines[0] != "" || len(lines[2]) != 85 {
		t.Fatalf("unexpected header block: %q", out.String())
	}
	if got := lines[1]; got != "DEVICE                              | CONNECTED TO SWITCH       | PORT" {
		t.Fatalf("header=%q", got)
	}
}
