package table

import (
	"bytes"
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	got := Format([][]string{
		{"Network", "ping", "1"},
		{"Disk", "cleanup", "12"},
	}, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"Network  ping      1",
		"Disk     cleanup  12",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatIgnoresANSIWidth(t *testing.T) {
	got := Format([][]string{
		{"\x1b[32mok\x1b[0m", "a"},
		{"error", "b"},
	}, nil)
	want := []string{
		"\x1b[32mok\x1b[0m     a",
		"error  b",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}

func TestWriteIncludesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"ID", "NAME"}, [][]string{{"tokyo", "Tokyo Night"}}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ID     NAME\ntokyo  Tokyo Night\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}
