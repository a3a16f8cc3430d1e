package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/service"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(packages []config.Package) *App {
	session := service.NewSessionService(nil).Process(packages)
	app := NewApp(session, config.DefaultConfig().Display)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

// send applies a key and runs any command it returns, feeding the result back
func send(app *App, key string) {
	_, cmd := app.Update(keyMsg(key))
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		app.Update(msg)
	}
}

func TestAppNavigation(t *testing.T) {
	app := newTestApp(config.SamplePackages())

	if app.Screen() != ScreenWorkouts {
		t.Fatalf("initial screen = %v, want ScreenWorkouts", app.Screen())
	}

	send(app, "2")
	if app.Screen() != ScreenStats {
		t.Errorf("after '2' screen = %v, want ScreenStats", app.Screen())
	}

	send(app, "?")
	if app.Screen() != ScreenHelp {
		t.Errorf("after '?' screen = %v, want ScreenHelp", app.Screen())
	}

	send(app, "esc")
	if app.Screen() != ScreenStats {
		t.Errorf("esc from help should return to stats, got %v", app.Screen())
	}

	send(app, "1")
	if app.Screen() != ScreenWorkouts {
		t.Errorf("after '1' screen = %v, want ScreenWorkouts", app.Screen())
	}

	_, cmd := app.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestAppOpensDetail(t *testing.T) {
	app := newTestApp(config.SamplePackages())

	send(app, "j")
	send(app, "enter")

	if app.Screen() != ScreenDetail {
		t.Fatalf("enter should open detail, screen = %v", app.Screen())
	}

	view := app.View()
	want := "Workout type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 797.805."
	if !strings.Contains(view, want) {
		t.Errorf("detail view should contain the summary message, got:\n%s", view)
	}

	send(app, "esc")
	if app.Screen() != ScreenWorkouts {
		t.Errorf("esc from detail should return to list, got %v", app.Screen())
	}
}

func TestDetailShowsSensorFields(t *testing.T) {
	app := newTestApp(config.SamplePackages())

	// first sample row is the swim
	send(app, "enter")
	view := app.View()
	for _, want := range []string{"Actions", "720", "80 kg", "Pool length", "25 m", "Pool laps", "40"} {
		if !strings.Contains(view, want) {
			t.Errorf("swimming detail should contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Height") {
		t.Errorf("swimming detail should not show a height, got:\n%s", view)
	}

	send(app, "esc")
	send(app, "G")
	send(app, "enter")
	if view := app.View(); !strings.Contains(view, "Height") || !strings.Contains(view, "180 cm") {
		t.Errorf("walking detail should show the height, got:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"RUN", 14, "RUN"},
		{"ABCDEFGHIJKLMNOP", 14, "ABCDEFGHIJK..."},
		{"ЖЖЖЖЖЖЖЖЖЖЖЖЖЖ", 14, "ЖЖЖЖЖЖЖЖЖЖЖЖЖЖ"},
		{"ЖЖЖЖЖЖЖЖЖЖЖЖЖЖЖЖ", 14, "ЖЖЖЖЖЖЖЖЖЖЖ..."},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) returned invalid UTF-8", tt.in, tt.max)
		}
	}
}

func TestWorkoutsViewShowsRejected(t *testing.T) {
	app := newTestApp([]config.Package{
		{Kind: "RUN", Fields: []float64{15000, 1, 75}},
		{Kind: "XYZ", Fields: []float64{1, 2, 3}},
	})

	view := app.View()
	if !strings.Contains(view, "1 rejected") {
		t.Errorf("list should report rejected count, got:\n%s", view)
	}
	if !strings.Contains(view, "rejected") || !strings.Contains(view, "XYZ") {
		t.Errorf("list should flag the rejected row, got:\n%s", view)
	}

	send(app, "G")
	send(app, "enter")
	if !strings.Contains(app.View(), "unknown type of training") {
		t.Errorf("detail of rejected row should show the error, got:\n%s", app.View())
	}
}

func TestStatsView(t *testing.T) {
	app := newTestApp(config.SamplePackages())
	send(app, "2")

	view := app.View()
	for _, want := range []string{"Session Totals", "Calories per Workout", "SportsWalking"} {
		if !strings.Contains(view, want) {
			t.Errorf("stats view should contain %q", want)
		}
	}
}

func TestStatsViewEmpty(t *testing.T) {
	app := newTestApp([]config.Package{{Kind: "XYZ"}})
	send(app, "2")

	if !strings.Contains(app.View(), "No successful workouts") {
		t.Errorf("stats view should explain there is nothing to show, got:\n%s", app.View())
	}
}
