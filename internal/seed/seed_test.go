package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	counts := data.Counts()
	assert.Equal(t, 4, counts["users"])
	assert.Equal(t, 2, counts["events"])
	assert.Equal(t, 3, counts["tracks"])
	assert.Equal(t, 4, counts["tasks"])
	assert.Equal(t, 3, counts["meetings"])
	assert.Equal(t, 2, counts["meeting_notes"])

	require.NotEmpty(t, data.Meetings)
	kickoff := data.Meetings[0]
	assert.Equal(t, "m-kickoff", kickoff.ID)
	assert.Equal(t, []string{"u-alice", "u-bob", "u-carla"}, kickoff.AttendeeIDs)
	assert.Equal(t, 10, kickoff.StartsAt.Hour())

	require.NotNil(t, data.Tasks[0].DueDate)
	assert.Equal(t, 2025, data.Tasks[0].DueDate.Year())
}

func TestLoad_Empty(t *testing.T) {
	data, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, data.Users)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("users:\n  - id: u1\n    name: A\n    nickname: a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode seed data")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "duplicate user id",
			yaml: `
users:
  - {id: u1, name: A}
  - {id: u1, name: B}
`,
			wantErr: "user u1: duplicate id",
		},
		{
			name: "track with unknown event",
			yaml: `
tracks:
  - {id: t1, eventId: nope, name: Track}
`,
			wantErr: `track t1: unknown event "nope"`,
		},
		{
			name: "task with unknown assignee",
			yaml: `
events:
  - id: e1
    name: E
    startsAt: 2025-01-01T00:00:00Z
    endsAt: 2025-01-02T00:00:00Z
tracks:
  - {id: t1, eventId: e1, name: Track}
tasks:
  - {id: k1, trackId: t1, title: Do, assigneeId: ghost}
`,
			wantErr: `task k1: unknown assignee "ghost"`,
		},
		{
			name: "invalid task status",
			yaml: `
events:
  - id: e1
    name: E
    startsAt: 2025-01-01T00:00:00Z
    endsAt: 2025-01-02T00:00:00Z
tracks:
  - {id: t1, eventId: e1, name: Track}
tasks:
  - {id: k1, trackId: t1, title: Do, status: blocked}
`,
			wantErr: `task k1: invalid status "blocked"`,
		},
		{
			name: "second note for a meeting",
			yaml: `
events:
  - id: e1
    name: E
    startsAt: 2025-01-01T00:00:00Z
    endsAt: 2025-01-02T00:00:00Z
meetings:
  - id: m1
    eventId: e1
    title: M
    startsAt: 2025-01-01T10:00:00Z
    endsAt: 2025-01-01T11:00:00Z
notes:
  - {id: n1, meetingId: m1, content: first}
  - {id: n2, meetingId: m1, content: second}
`,
			wantErr: `note n2: meeting "m1" already has a note`,
		},
		{
			name: "meeting ends before start",
			yaml: `
events:
  - id: e1
    name: E
    startsAt: 2025-01-01T00:00:00Z
    endsAt: 2025-01-02T00:00:00Z
meetings:
  - id: m1
    eventId: e1
    title: M
    startsAt: 2025-01-01T10:00:00Z
    endsAt: 2025-01-01T09:00:00Z
`,
			wantErr: "meeting m1: ends before it starts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_UnknownAttendeeAllowed(t *testing.T) {
	_, err := Load(strings.NewReader(`
events:
  - id: e1
    name: E
    startsAt: 2025-01-01T00:00:00Z
    endsAt: 2025-01-02T00:00:00Z
meetings:
  - id: m1
    eventId: e1
    title: M
    startsAt: 2025-01-01T10:00:00Z
    endsAt: 2025-01-01T11:00:00Z
    attendeeIds: [ghost]
`))
	require.NoError(t, err)
}

func TestSource(t *testing.T) {
	data, err := Source("")()
	require.NoError(t, err)
	assert.NotEmpty(t, data.Users)

	_, err = Source("/does/not/exist.yaml")()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open seed file")
}
