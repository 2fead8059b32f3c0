package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/confessional/internal/transcript"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBreakpoints_CurrentAndPrevious(t *testing.T) {
	db := openTestDB(t)

	bp, err := db.CurrentBreakpoint("demo")
	require.NoError(t, err)
	assert.Nil(t, bp)

	first, err := db.AddBreakpoint("demo", "start")
	require.NoError(t, err)
	second, err := db.AddBreakpoint("demo", "checkpoint")
	require.NoError(t, err)

	current, err := db.CurrentBreakpoint("demo")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "checkpoint", current.Note)

	previous, err := db.PreviousBreakpoint("demo")
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, first.ID, previous.ID)

	all, err := db.Breakpoints("demo")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Other projects are isolated.
	other, err := db.CurrentBreakpoint("other")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestInit_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Init("demo"))
	require.NoError(t, db.Init("demo"))

	all, err := db.Breakpoints("demo")
	require.NoError(t, err)
	assert.Len(t, all, 1, "init must not stack initial breakpoints")

	recording, err := db.IsRecording("demo")
	require.NoError(t, err)
	assert.True(t, recording)
}

func TestRecordTurn_AndWindow(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Init("demo"))

	turn := transcript.Turn{
		Prompt:   "fix the handler",
		Response: "Done.",
		Tools: []transcript.ToolCall{
			{ToolName: "Edit", InputSummary: "/h.go", FilesTouched: "/h.go"},
			{ToolName: "Task", InputSummary: "run the test suite", IsSubagent: true},
		},
	}
	promptID, err := db.RecordTurn("demo", turn)
	require.NoError(t, err)
	assert.Positive(t, promptID)

	window, err := db.CurrentWindow("demo")
	require.NoError(t, err)
	require.Equal(t, 1, window.Count)
	assert.Equal(t, "fix the handler", window.Interactions[0].Prompt)
	assert.Equal(t, "Done.", window.Interactions[0].Response)
	require.NotNil(t, window.End)
	assert.Nil(t, window.Start)

	tools, err := db.ToolsSinceBreakpoint("demo")
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "Edit", tools[0].ToolName)
	assert.True(t, tools[1].IsSubagent)
	assert.Equal(t, "run the test suite", tools[1].SubagentTask)

	stats, err := db.Stats("demo")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Prompts)
	assert.Equal(t, 1, stats.Responses)
	assert.Equal(t, 2, stats.ToolCalls)
	assert.Equal(t, 1, stats.SubagentSpawns)
}

func TestCurrentWindow_BoundedByBreakpoint(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Init("demo"))

	_, err := db.RecordTurn("demo", transcript.Turn{Prompt: "old work", Response: "ok"})
	require.NoError(t, err)

	_, err = db.AddBreakpoint("demo", "new window")
	require.NoError(t, err)

	_, err = db.RecordTurn("demo", transcript.Turn{Prompt: "new work", Response: "ok"})
	require.NoError(t, err)

	window, err := db.CurrentWindow("demo")
	require.NoError(t, err)
	require.Equal(t, 1, window.Count)
	assert.Equal(t, "new work", window.Interactions[0].Prompt)
	require.NotNil(t, window.Start)
	assert.Equal(t, "Initial breakpoint", window.Start.Note)
}

func TestStoreReflection_LinksBreakpointWindow(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Init("demo"))
	second, err := db.AddBreakpoint("demo", "end of slice")
	require.NoError(t, err)

	ref, err := db.StoreReflection("demo", "Spent the slice untangling the parser.", "3 commits", 7)
	require.NoError(t, err)
	assert.Equal(t, second.ID, ref.BreakpointEndID)
	assert.NotZero(t, ref.BreakpointStartID)
	assert.Equal(t, 7, ref.PromptCount)

	refs, err := db.Reflections("demo")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Spent the slice untangling the parser.", refs[0].Reflection)
	assert.Equal(t, "3 commits", refs[0].GitSummary)
}

func TestRecordingState(t *testing.T) {
	db := openTestDB(t)

	recording, err := db.IsRecording("demo")
	require.NoError(t, err)
	assert.False(t, recording, "unknown projects default to disabled")

	require.NoError(t, db.EnableRecording("demo"))
	recording, err = db.IsRecording("demo")
	require.NoError(t, err)
	assert.True(t, recording)

	require.NoError(t, db.DisableRecording("demo"))
	recording, err = db.IsRecording("demo")
	require.NoError(t, err)
	assert.False(t, recording)
}

func TestSessionContext(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Init("demo"))

	ctx, err := db.LatestSessionContext("demo")
	require.NoError(t, err)
	assert.Nil(t, ctx)

	require.NoError(t, db.RecordSessionContext("demo", "claude-opus", "main", "abc1234"))
	require.NoError(t, db.RecordSessionContext("demo", "claude-opus", "feature", "def5678"))

	ctx, err = db.LatestSessionContext("demo")
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.Equal(t, "feature", ctx.GitBranch)
	assert.Equal(t, "def5678", ctx.GitCommit)
}

func TestDashboardManifest(t *testing.T) {
	db := openTestDB(t)

	entries, err := db.DashboardManifest("demo")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entry, err := db.AppendDashboard("demo", 1, 2, "/tmp/demo/reflection_2.html")
	require.NoError(t, err)
	assert.Positive(t, entry.ID)
	assert.NotEmpty(t, entry.GeneratedAt)

	entries, err = db.DashboardManifest("demo")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/tmp/demo/reflection_2.html", entries[0].HTMLPath)
}

func TestBreakpointAndReflection_DoNotTouchRecordingState(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Init("demo"))
	require.NoError(t, db.DisableRecording("demo"))

	_, err := db.AddBreakpoint("demo", "closing the window")
	require.NoError(t, err)
	_, err = db.StoreReflection("demo", "Went fine.", "", 0)
	require.NoError(t, err)

	recording, err := db.IsRecording("demo")
	require.NoError(t, err)
	assert.False(t, recording, "only enable/disable may change recording state")
}
