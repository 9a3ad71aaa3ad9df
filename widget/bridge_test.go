package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

type mockRunner struct {
	commands []string
	err      error
	closed   bool
}

func (m *mockRunner) Close() error {
	m.closed = true
	return nil
}

func (m *mockRunner) Run(_ context.Context, command string) (string, int, error) {
	m.commands = append(m.commands, command)
	if m.err != nil {
		return "", -1, m.err
	}
	return "Broadcast completed: result=0", 0, nil
}

func TestBridge_Update(t *testing.T) {
	var testCases = []struct {
		description string
		todos       string
		loggedIn    bool
		expect      string
		expectErr   bool
	}{
		{description: "todos", todos: `[{"id":1,"text":"Task A","completed":false}]`, loggedIn: true, expect: `{"todos":[{"id":1,"text":"Task A","completed":false}],"is_logged_in":true}`},
		{description: "compacted", todos: " [ 1, 2 ] ", expect: `{"todos":[1,2],"is_logged_in":false}`},
		{description: "empty input", todos: "", expect: `{"todos":[],"is_logged_in":false}`},
		{description: "object rejected", todos: `{"id":1}`, expectErr: true},
		{description: "invalid json", todos: `[1,`, expectErr: true},
	}
	for i, testCase := range testCases {
		ctx := context.Background()
		fs := afs.New()
		dirURL := fmt.Sprintf("mem://localhost/widget_update_%d", i)
		require.NoError(t, fs.Create(ctx, dirURL, 0o755, true), testCase.description)
		runner := &mockRunner{}
		bridge := New(WithEnabled(true), WithFS(fs), WithRunner(runner), WithDir(dirURL))
		err := bridge.Update(ctx, testCase.todos, testCase.loggedIn)
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrInvalidTodos, testCase.description)
			assert.Empty(t, runner.commands, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		data, err := fs.DownloadWithURL(ctx, dirURL+"/widget_data.json")
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, string(data), testCase.description)
		assert.Equal(t, []string{"am broadcast -a android.appwidget.action.APPWIDGET_UPDATE -n com.hasu.todo/.TodoWidgetProvider"}, runner.commands, testCase.description)
	}
}

func TestBridge_BroadcastFailureIgnored(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	require.NoError(t, fs.Create(ctx, "mem://localhost/widget_broadcast_failure", 0o755, true))
	runner := &mockRunner{err: errors.New("am: not found")}
	bridge := New(WithEnabled(true), WithFS(fs), WithRunner(runner), WithDir("mem://localhost/widget_broadcast_failure"), WithPackage("org.example"))
	require.NoError(t, bridge.Clear(ctx))
	data, err := fs.DownloadWithURL(ctx, bridge.Location())
	require.NoError(t, err)
	assert.Equal(t, `{"todos":[],"is_logged_in":false}`, string(data))
	assert.Equal(t, []string{BroadcastCommand("org.example")}, runner.commands)
}

func TestBridge_Disabled(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	runner := &mockRunner{}
	bridge := New(WithEnabled(false), WithFS(fs), WithRunner(runner), WithDir("mem://localhost/widget_disabled"))
	require.NoError(t, bridge.Update(ctx, "not even json", true))
	ok, _ := fs.Exists(ctx, bridge.Location())
	assert.False(t, ok)
	assert.Empty(t, runner.commands)
}

func TestNew_Defaults(t *testing.T) {
	bridge := New(WithPackage("org.example"))
	assert.Equal(t, Supported, bridge.Enabled())
	assert.True(t, strings.HasSuffix(bridge.Location(), "/data/data/org.example/files/widget_data.json"), bridge.Location())
}

func TestBridge_Close(t *testing.T) {
	runner := &mockRunner{}
	bridge := New(WithRunner(runner))
	require.NoError(t, bridge.Close())
	assert.True(t, runner.closed)

	assert.NoError(t, New().Close())
}
