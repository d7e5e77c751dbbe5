package event_test

import (
	"testing"

	"mr-notifier/internal/event"

	"github.com/stretchr/testify/require"
)

func TestParse_MergeRequest(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "merge_request",
			"user": {"username": "alice", "name": "Alice"},
			"project": {"id": 10, "path_with_namespace": "team/app"},
			"object_attributes": {
				"id": 777,
				"iid": 5,
				"action": "open",
				"title": "Add search",
				"source_branch": "TASK-42-search",
				"target_branch": "main",
				"url": "https://gitlab.example.com/team/app/-/merge_requests/5",
				"state": "opened",
				"merge_status": "unchecked",
				"detailed_merge_status": "not_approved",
				"approvals_required": 2,
				"approvals_left": 2,
				"work_in_progress": false,
				"author": {"username": "alice", "name": "Alice"},
				"created_at": "2026-08-28 10:00:00 UTC"
			}
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		mr, ok := ev.(*event.MergeRequestEvent)
		require.True(t, ok)
		require.Equal(t, event.KindMergeRequest, mr.Kind())
		require.Equal(t, int64(10), mr.ProjectID)
		require.Equal(t, int64(5), mr.IID)
		require.Equal(t, int64(777), mr.MRID)
		require.Equal(t, "team/app", mr.ProjectPath)
		require.Equal(t, "open", mr.Action)
		require.Equal(t, "alice", mr.Actor.Username)
		require.Equal(t, "alice", mr.AuthorUsername)
		require.NotNil(t, mr.ApprovalsRequired)
		require.Equal(t, 2, *mr.ApprovalsRequired)
		require.NotNil(t, mr.ApprovalsLeft)
		require.Equal(t, 2, *mr.ApprovalsLeft)
		require.NotNil(t, mr.CreatedAt)
	})

	t.Run("absent approvals stay nil", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "merge_request",
			"project": {"id": 10},
			"object_attributes": {"iid": 5, "action": "update"}
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		mr := ev.(*event.MergeRequestEvent)
		require.Nil(t, mr.ApprovalsRequired)
		require.Nil(t, mr.ApprovalsLeft)
	})

	t.Run("author falls back to the event user", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "merge_request",
			"user": {"username": "alice", "name": "Alice"},
			"project": {"id": 10},
			"object_attributes": {"iid": 5}
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		mr := ev.(*event.MergeRequestEvent)
		require.Equal(t, "alice", mr.AuthorUsername)
		require.Equal(t, "Alice", mr.AuthorName)
	})

	t.Run("missing iid is malformed", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "merge_request",
			"project": {"id": 10},
			"object_attributes": {"action": "open"}
		}`)

		_, err := event.Parse(body)
		require.ErrorIs(t, err, event.ErrMalformed)
	})
}

func TestParse_Pipeline(t *testing.T) {
	t.Run("merge request reference at top level", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "pipeline",
			"user": {"username": "alice"},
			"object_attributes": {
				"source": "merge_request_event",
				"status": "success",
				"stages": ["build", "lint"]
			},
			"merge_request": {"iid": 5, "target_project_id": 10},
			"builds": [{"name": "golangci-lint"}, {"name": "unit"}]
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		p := ev.(*event.PipelineEvent)
		require.Equal(t, "merge_request_event", p.Source)
		require.Equal(t, "success", p.Status)
		require.Equal(t, []string{"build", "lint"}, p.Stages)
		require.Equal(t, []string{"golangci-lint", "unit"}, p.BuildNames)
		require.Equal(t, int64(10), p.MRProjectID)
		require.Equal(t, int64(5), p.MRIID)
	})

	t.Run("reference nested in attributes with source project fallback", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "pipeline",
			"object_attributes": {
				"source": "merge_request_event",
				"status": "failed",
				"merge_request": {"iid": 5, "source_project_id": 11}
			}
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		p := ev.(*event.PipelineEvent)
		require.Equal(t, int64(11), p.MRProjectID)
		require.Equal(t, int64(5), p.MRIID)
	})

	t.Run("no reference leaves zeroes", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "pipeline",
			"object_attributes": {"source": "push", "status": "success"}
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		p := ev.(*event.PipelineEvent)
		require.Zero(t, p.MRProjectID)
		require.Zero(t, p.MRIID)
	})
}

func TestParse_Note(t *testing.T) {
	body := []byte(`{
		"object_kind": "note",
		"user": {"username": "bob", "name": "Bob"},
		"object_attributes": {
			"noteable_type": "MergeRequest",
			"note": "Please rename this"
		},
		"merge_request": {"iid": 5, "target_project_id": 10}
	}`)

	ev, err := event.Parse(body)
	require.NoError(t, err)

	n := ev.(*event.NoteEvent)
	require.Equal(t, "MergeRequest", n.NoteableType)
	require.Equal(t, "Please rename this", n.Note)
	require.Equal(t, "bob", n.Actor.Username)
	require.Equal(t, int64(10), n.MRProjectID)
	require.Equal(t, int64(5), n.MRIID)
}

func TestParse_Push(t *testing.T) {
	t.Run("valid push", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "push",
			"user": {"username": "alice"},
			"ref": "refs/heads/TASK-42-search",
			"project": {"id": 10, "path_with_namespace": "team/app"}
		}`)

		ev, err := event.Parse(body)
		require.NoError(t, err)

		p := ev.(*event.PushEvent)
		require.Equal(t, "refs/heads/TASK-42-search", p.Ref)
		require.Equal(t, "team/app", p.ProjectPath)
	})

	t.Run("missing ref is malformed", func(t *testing.T) {
		body := []byte(`{
			"object_kind": "push",
			"project": {"path_with_namespace": "team/app"}
		}`)

		_, err := event.Parse(body)
		require.ErrorIs(t, err, event.ErrMalformed)
	})
}

func TestParse_Rejects(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, err := event.Parse([]byte(`{"object_kind": "wiki_page"}`))
		require.ErrorIs(t, err, event.ErrUnknownKind)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := event.Parse([]byte(`{not json`))
		require.ErrorIs(t, err, event.ErrMalformed)
	})
}
