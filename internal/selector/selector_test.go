package selector

import (
	"bufio"
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func runMenu(t *testing.T, items []string, input string) ([]string, *bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	m := New("Test Menu", items, bufio.NewReader(strings.NewReader(input)), &out)
	got, err := m.Run()
	return got, &out, err
}

func TestRun_SelectAllConfirm(t *testing.T) {
	items := []string{"Alfa", "Bravo", "Charlie"}
	got, _, err := runMenu(t, items, "a\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, items) {
		t.Errorf("Run() = %v, want all of %v", got, items)
	}
}

func TestRun_ToggleTwiceRestoresState(t *testing.T) {
	items := []string{"Alfa", "Bravo", "Charlie"}
	got, _, err := runMenu(t, items, "1\n2\n2\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Alfa"}) {
		t.Errorf("Run() = %v, want [Alfa] after toggling Bravo twice", got)
	}
}

func TestRun_ConfirmEmptyKeepsLooping(t *testing.T) {
	items := []string{"Alfa", "Bravo"}
	got, out, err := runMenu(t, items, "done\ndone\n1\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Alfa"}) {
		t.Errorf("Run() = %v, want [Alfa]", got)
	}
	if !strings.Contains(out.String(), "Nothing selected!") {
		t.Error("empty confirm did not warn")
	}
}

func TestRun_SelectNoneClears(t *testing.T) {
	items := []string{"Alfa", "Bravo"}
	got, _, err := runMenu(t, items, "a\nn\n2\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Bravo"}) {
		t.Errorf("Run() = %v, want [Bravo] after clearing and reselecting", got)
	}
}

func TestRun_PreservesMenuOrder(t *testing.T) {
	items := []string{"Alfa", "Bravo", "Charlie"}
	got, _, err := runMenu(t, items, "3\n1\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Alfa", "Charlie"}) {
		t.Errorf("Run() = %v, want menu order [Alfa Charlie]", got)
	}
}

func TestRun_InvalidIndexNoStateChange(t *testing.T) {
	items := []string{"Alfa", "Bravo"}
	got, out, err := runMenu(t, items, "1\n99\n0\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Alfa"}) {
		t.Errorf("Run() = %v, want [Alfa] untouched by invalid indices", got)
	}
	if !strings.Contains(out.String(), "Invalid selection number") {
		t.Error("invalid index did not report an error")
	}
}

func TestRun_InvalidChoiceNoStateChange(t *testing.T) {
	items := []string{"Alfa"}
	got, out, err := runMenu(t, items, "1\nbogus\n-1\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Alfa"}) {
		t.Errorf("Run() = %v, want [Alfa] untouched by junk input", got)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Error("junk input did not report an error")
	}
}

func TestRun_InputCaseInsensitive(t *testing.T) {
	items := []string{"Alfa", "Bravo"}
	got, _, err := runMenu(t, items, "A\nDONE\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, items) {
		t.Errorf("Run() = %v, want all items via uppercase commands", got)
	}
}

func TestRun_EOFCancels(t *testing.T) {
	_, _, err := runMenu(t, []string{"Alfa"}, "1\n")
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("Run() error = %v, want ErrCancelled", err)
	}
}

func TestRun_EmptyItemsReturnsImmediately(t *testing.T) {
	got, _, err := runMenu(t, nil, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Run() = %v, want empty selection for empty menu", got)
	}
}

func TestRun_RendersMarkers(t *testing.T) {
	_, out, err := runMenu(t, []string{"Alfa", "Bravo"}, "1\ndone\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "[*]") {
		t.Error("selected item not marked with [*]")
	}
	if !strings.Contains(s, "[ ]") {
		t.Error("unselected item not marked with [ ]")
	}
	if !strings.Contains(s, "Selected: Alfa") {
		t.Error("summary line missing selected item")
	}
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	got, _, err := runMenu(t, []string{"Alfa"}, "1\ndone")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(got, []string{"Alfa"}) {
		t.Errorf("Run() = %v, want [Alfa] from unterminated final line", got)
	}
}
