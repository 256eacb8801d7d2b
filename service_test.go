package roomplan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/roomplan/policy"
	"github.com/viant/roomplan/service/exporter"
	"github.com/viant/roomplan/service/selector"
)

func TestService_EndToEnd(t *testing.T) {
	location := filepath.Join(t.TempDir(), "requests.csv")
	content := `2024-01-01;2024-01-03;Alice
2024-01-02;2024-01-04;Bob
2024-01-01;2024-01-02;Carol
`
	assert.NoError(t, os.WriteFile(location, []byte(content), 0644))

	service, err := New(
		WithRooms(2),
		WithSelectorSource(selector.NewScripted(0, 0, 0)))
	assert.NoError(t, err)
	runtime := service.Runtime()

	session, err := runtime.ResolveLocation(context.Background(), location)
	assert.NoError(t, err)
	assert.True(t, session.IsDone())
	assert.Empty(t, session.Pruned)

	rendered, err := runtime.Render(session, exporter.FormatText)
	assert.NoError(t, err)
	expect := "Picked reservations:\n" +
		"    Alice (2024-01-01 .. 2024-01-03)\n" +
		"    Bob (2024-01-02 .. 2024-01-04)\n" +
		"    Carol (2024-01-01 .. 2024-01-02)\n"
	assert.Equal(t, expect, string(rendered))
}

func TestService_EndToEndWithPruning(t *testing.T) {
	location := filepath.Join(t.TempDir(), "requests.csv")
	content := `2024-01-01;2024-01-02;X
2024-01-01;2024-01-02;Y
2024-01-01;2024-01-02;Z
`
	assert.NoError(t, os.WriteFile(location, []byte(content), 0644))

	service, err := New(
		WithRooms(1),
		WithSelectorSource(selector.NewScripted(0)))
	assert.NoError(t, err)

	session, err := service.Runtime().ResolveLocation(context.Background(), location)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(session.Granted))
	assert.Equal(t, "X", session.Granted[0].Name)
	assert.Equal(t, 2, len(session.Pruned))
}

func TestService_EndToEndWithAdmission(t *testing.T) {
	location := filepath.Join(t.TempDir(), "requests.csv")
	content := `2024-01-01;2024-01-03;Alice
2024-01-02;2024-01-04;Mallory
`
	assert.NoError(t, os.WriteFile(location, []byte(content), 0644))

	service, err := New(
		WithRooms(2),
		WithAdmissionPolicy(&policy.Policy{BlockList: []string{"Mallory"}}),
		WithSelectorSource(selector.NewScripted(0)))
	assert.NoError(t, err)

	session, err := service.Runtime().ResolveLocation(context.Background(), location)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(session.Granted))
	assert.Equal(t, "Alice", session.Granted[0].Name)
}

func TestService_Export(t *testing.T) {
	requests := filepath.Join(t.TempDir(), "requests.csv")
	assert.NoError(t, os.WriteFile(requests, []byte("2024-01-01;2024-01-03;Alice\n"), 0644))

	service, err := New(WithSelectorSource(selector.NewScripted(0)))
	assert.NoError(t, err)
	runtime := service.Runtime()
	session, err := runtime.ResolveLocation(context.Background(), requests)
	assert.NoError(t, err)

	granted := filepath.Join(t.TempDir(), "granted.csv")
	assert.NoError(t, runtime.Export(context.Background(), session, exporter.FormatCSV, granted))
	data, err := os.ReadFile(granted)
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01;2024-01-03;\"Alice\"\n", string(data))
}

func TestService_Defaults(t *testing.T) {
	service, err := New()
	assert.NoError(t, err)
	assert.Equal(t, 2, service.Config().Resolver.Rooms)
	assert.NotNil(t, service.Runtime())
	assert.NotNil(t, service.Runtime().Events())
	assert.NotNil(t, service.Types())
	assert.NotNil(t, service.Types().Lookup("Reservation"))
}

func TestNew_InvalidConfig(t *testing.T) {
	// unknown queue vendor fails construction instead of silently dropping
	// the run-event observer
	_, err := New(WithConfig(&Config{
		Resolver: ResolverConfig{Rooms: 2},
		Events:   EventsConfig{Vendor: "kafka"},
	}))
	assert.Error(t, err)

	_, err = New(WithConfig(&Config{}))
	assert.Error(t, err)
}
