package sheet

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := "\ufeffName, Date ,Description\n" +
		"Game Night,25-Oct-2026,\"Board games, snacks\"\n" +
		"\n" +
		"Short Row,01-Nov-2026\n"

	table, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if want := []string{"Name", "Date", "Description"}; !reflect.DeepEqual(table.Header(), want) {
		t.Errorf("Header() = %v, want %v", table.Header(), want)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	rows := table.Rows()
	if got := rows[0].Get("Description"); got != "Board games, snacks" {
		t.Errorf("Description = %q", got)
	}
	if got := rows[1].Get("Date"); got != "01-Nov-2026" {
		t.Errorf("Date = %q", got)
	}
	if got := rows[1].Get("Description"); got != "" {
		t.Errorf("missing cell = %q, want empty", got)
	}
	if got := rows[0].Get("Unknown"); got != "" {
		t.Errorf("unknown column = %q, want empty", got)
	}
	if rows[1].Index != 1 {
		t.Errorf("Index = %d, want 1", rows[1].Index)
	}
}

func TestRead_Empty(t *testing.T) {
	table, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}

	var colErr *ColumnError
	if err := table.Require("Name"); !errors.As(err, &colErr) {
		t.Errorf("Require() error = %v, want ColumnError", err)
	}
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader("Name,Date\n\"unterminated,25-Oct-2026\n"))
	if err == nil {
		t.Fatal("expected error for unterminated quote")
	}
}

func TestRequire(t *testing.T) {
	table, err := Read(strings.NewReader("Name,Date\nA,01-Jan-2026\n"))
	if err != nil {
		t.Fatal(err)
	}

	if err := table.Require("Name", "Date"); err != nil {
		t.Errorf("Require() error = %v", err)
	}

	err = table.Require("Name", "Kind")
	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("Require() error = %v, want ColumnError", err)
	}
	if colErr.Column != "Kind" {
		t.Errorf("Column = %q, want Kind", colErr.Column)
	}
	if !strings.Contains(err.Error(), `"Kind"`) {
		t.Errorf("Error() = %q", err.Error())
	}
}
