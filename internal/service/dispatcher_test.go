package service_test

import (
	"errors"
	"testing"

	"mr-notifier/internal/event"
	"mr-notifier/internal/mocks"
	"mr-notifier/internal/models"
	"mr-notifier/internal/repository"
	"mr-notifier/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func intPtr(v int) *int { return &v }

func newDispatcher(t *testing.T) (
	*service.Dispatcher,
	*mocks.MockMergeRequestStore,
	*mocks.MockReviewerRotation,
	*mocks.MockRecipients,
	*mocks.MockNotifier,
) {
	ctrl := gomock.NewController(t)

	mrs := mocks.NewMockMergeRequestStore(ctrl)
	rotation := mocks.NewMockReviewerRotation(ctrl)
	directory := mocks.NewMockRecipients(ctrl)
	delivery := mocks.NewMockNotifier(ctrl)

	svc := service.NewDispatcher(
		mrs,
		rotation,
		directory,
		delivery,
		service.TxManagerStub{},
		service.DispatcherConfig{
			DefaultRequiredApprovals: 2,
			ReviewersPerMR:           2,
			JiraBaseURL:              "https://jira.example.com/browse",
		},
		zap.NewNop(),
	)

	return svc, mrs, rotation, directory, delivery
}

func TestDispatcher_MergeRequestOpen(t *testing.T) {
	ctx := t.Context()

	openEvent := func() *event.MergeRequestEvent {
		return &event.MergeRequestEvent{
			ProjectID:    10,
			IID:          5,
			ProjectPath:  "team/app",
			Actor:        event.Actor{Username: "alice", Name: "Alice"},
			Action:       "open",
			Title:        "Add search",
			SourceBranch: "TASK-42-search",
			URL:          "https://gitlab.example.com/team/app/-/merge_requests/5",
			State:        "opened",
			AuthorUsername: "alice",
			AuthorName:     "Alice",
		}
	}

	t.Run("assigns reviewers and notifies on first open", func(t *testing.T) {
		svc, mrs, rotation, directory, delivery := newDispatcher(t)

		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}
		author := &models.Recipient{ChatID: 200, GitlabUsername: "alice"}

		directory.EXPECT().UpsertProfile(ctx, "alice", "Alice").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		rotation.EXPECT().PullReviewers(ctx, []string{"alice"}, 2).Return([]string{"bob", "carol"}, nil)
		mrs.EXPECT().SetReviewers(ctx, int64(10), int64(5), []string{"bob", "carol"}).Return(true, nil)
		directory.EXPECT().Label(ctx, "bob", "").Return("Bob")
		directory.EXPECT().Label(ctx, "carol", "").Return("Carol")
		directory.EXPECT().Label(ctx, "alice", "Alice").Return("Alice")
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)
		directory.EXPECT().Resolve(ctx, "alice").Return(author, nil)
		delivery.EXPECT().Notify(ctx, author, gomock.Any()).Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).
			Return(&models.MergeRequest{ProjectID: 10, IID: 5, ApprovedBy: []string{}}, nil)

		err := svc.Reconcile(ctx, openEvent())
		require.NoError(t, err)
	})

	t.Run("duplicate open emits nothing", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		existing := &models.MergeRequest{
			ProjectID:      10,
			IID:            5,
			AuthorUsername: "alice",
			Reviewers:      []string{"bob", "carol"},
			ApprovedBy:     []string{},
		}

		directory.EXPECT().UpsertProfile(ctx, "alice", "Alice").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(existing, nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(existing, nil)

		err := svc.Reconcile(ctx, openEvent())
		require.NoError(t, err)
	})

	t.Run("lost reviewer claim emits nothing", func(t *testing.T) {
		svc, mrs, rotation, directory, _ := newDispatcher(t)

		directory.EXPECT().UpsertProfile(ctx, "alice", "Alice").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		rotation.EXPECT().PullReviewers(ctx, []string{"alice"}, 2).Return([]string{"bob", "carol"}, nil)
		mrs.EXPECT().SetReviewers(ctx, int64(10), int64(5), []string{"bob", "carol"}).Return(false, nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).
			Return(&models.MergeRequest{ProjectID: 10, IID: 5, ApprovedBy: []string{}}, nil)

		err := svc.Reconcile(ctx, openEvent())
		require.NoError(t, err)
	})

	t.Run("draft open skips reviewer assignment", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		ev := openEvent()
		ev.Title = "Draft: Add search"

		directory.EXPECT().UpsertProfile(ctx, "alice", "Alice").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)

		err := svc.Reconcile(ctx, ev)
		require.NoError(t, err)
	})

	t.Run("empty rotation assigns nobody", func(t *testing.T) {
		svc, mrs, rotation, directory, _ := newDispatcher(t)

		directory.EXPECT().UpsertProfile(ctx, "alice", "Alice").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		rotation.EXPECT().PullReviewers(ctx, []string{"alice"}, 2).Return(nil, nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).
			Return(&models.MergeRequest{ProjectID: 10, IID: 5, ApprovedBy: []string{}}, nil)

		err := svc.Reconcile(ctx, openEvent())
		require.NoError(t, err)
	})

	t.Run("upsert failure propagates", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		directory.EXPECT().UpsertProfile(ctx, "alice", "Alice").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db error"))

		err := svc.Reconcile(ctx, openEvent())
		require.Error(t, err)
		require.Contains(t, err.Error(), "db error")
	})
}

func TestDispatcher_Approvals(t *testing.T) {
	ctx := t.Context()

	approveEvent := func(action string) *event.MergeRequestEvent {
		return &event.MergeRequestEvent{
			ProjectID:      10,
			IID:            5,
			Actor:          event.Actor{Username: "bob", Name: "Bob"},
			Action:         action,
			Title:          "Add search",
			State:          "opened",
			AuthorUsername: "alice",
		}
	}

	tracked := func() *models.MergeRequest {
		return &models.MergeRequest{
			ProjectID:      10,
			IID:            5,
			AuthorUsername: "alice",
			Reviewers:      []string{"bob", "carol"},
			ApprovedBy:     []string{},
		}
	}

	t.Run("approved records the approver", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		after := tracked()
		after.ApprovedBy = []string{"bob"}

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().AddApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(after, nil)

		err := svc.Reconcile(ctx, approveEvent("approved"))
		require.NoError(t, err)
	})

	t.Run("unapproved removes the approver", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().RemoveApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)

		err := svc.Reconcile(ctx, approveEvent("unapproved"))
		require.NoError(t, err)
	})

	t.Run("approvals_left zero triggers final review", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		after := tracked()
		after.ApprovalsLeft = intPtr(0)
		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().AddApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(after, nil)
		mrs.EXPECT().ClaimFinalReview(ctx, int64(10), int64(5)).Return(true, nil)
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)

		err := svc.Reconcile(ctx, approveEvent("approved"))
		require.NoError(t, err)
	})

	t.Run("approver count fallback triggers final review", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		after := tracked()
		after.ApprovedBy = []string{"bob", "carol"}
		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().AddApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(after, nil)
		mrs.EXPECT().ClaimFinalReview(ctx, int64(10), int64(5)).Return(true, nil)
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)

		err := svc.Reconcile(ctx, approveEvent("approved"))
		require.NoError(t, err)
	})

	t.Run("approvals_left overrides a full approver set", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		after := tracked()
		after.ApprovedBy = []string{"bob", "carol"}
		after.ApprovalsLeft = intPtr(1)

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().AddApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(after, nil)

		err := svc.Reconcile(ctx, approveEvent("approved"))
		require.NoError(t, err)
	})

	t.Run("latched record never re-notifies", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		after := tracked()
		after.ApprovalsLeft = intPtr(0)
		after.FinalReviewNotified = true

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().AddApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(after, nil)

		err := svc.Reconcile(ctx, approveEvent("approved"))
		require.NoError(t, err)
	})

	t.Run("lost latch claim emits nothing", func(t *testing.T) {
		svc, mrs, _, directory, _ := newDispatcher(t)

		after := tracked()
		after.ApprovalsLeft = intPtr(0)

		directory.EXPECT().UpsertProfile(ctx, "bob", "Bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		mrs.EXPECT().AddApprover(ctx, int64(10), int64(5), "bob").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(after, nil)
		mrs.EXPECT().ClaimFinalReview(ctx, int64(10), int64(5)).Return(false, nil)

		err := svc.Reconcile(ctx, approveEvent("approved"))
		require.NoError(t, err)
	})
}

func TestDispatcher_MergeRequestClosed(t *testing.T) {
	ctx := t.Context()

	t.Run("merge notifies leads and author", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		ev := &event.MergeRequestEvent{
			ProjectID:      10,
			IID:            5,
			Actor:          event.Actor{Username: "lead", Name: "Lead"},
			Action:         "merge",
			Title:          "Add search",
			State:          "merged",
			AuthorUsername: "alice",
		}
		existing := &models.MergeRequest{
			ProjectID:      10,
			IID:            5,
			AuthorUsername: "alice",
			AuthorName:     "Alice",
			Reviewers:      []string{"bob"},
		}
		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}
		author := &models.Recipient{ChatID: 200, GitlabUsername: "alice"}

		directory.EXPECT().UpsertProfile(ctx, "lead", "Lead").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(existing, nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		directory.EXPECT().Label(ctx, "alice", "Alice").Return("Alice")
		directory.EXPECT().Label(ctx, "lead", "Lead").Return("Lead")
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)
		directory.EXPECT().Resolve(ctx, "alice").Return(author, nil)
		delivery.EXPECT().Notify(ctx, author, gomock.Any()).Return(nil)

		err := svc.Reconcile(ctx, ev)
		require.NoError(t, err)
	})

	t.Run("unresolvable author is skipped", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		ev := &event.MergeRequestEvent{
			ProjectID:      10,
			IID:            5,
			Action:         "close",
			Title:          "Add search",
			State:          "closed",
			AuthorUsername: "ghost",
		}
		existing := &models.MergeRequest{ProjectID: 10, IID: 5, AuthorUsername: "ghost"}
		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}

		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(existing, nil)
		mrs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		directory.EXPECT().Label(ctx, "ghost", "").Return("ghost")
		directory.EXPECT().Label(ctx, "", "").Return("—")
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)
		directory.EXPECT().Resolve(ctx, "ghost").Return(nil, service.ErrNoRecipient)

		err := svc.Reconcile(ctx, ev)
		require.NoError(t, err)
	})
}

func TestDispatcher_Pipeline(t *testing.T) {
	ctx := t.Context()

	lintEvent := func(status string) *event.PipelineEvent {
		return &event.PipelineEvent{
			Source:      "merge_request_event",
			Status:      status,
			Stages:      []string{"build", "lint"},
			MRProjectID: 10,
			MRIID:       5,
		}
	}

	tracked := func() *models.MergeRequest {
		return &models.MergeRequest{
			ProjectID:      10,
			IID:            5,
			Title:          "Add search",
			AuthorUsername: "alice",
			Reviewers:      []string{"bob", "carol"},
		}
	}

	t.Run("non merge request pipeline is ignored", func(t *testing.T) {
		svc, _, _, _, _ := newDispatcher(t)

		ev := lintEvent("failed")
		ev.Source = "push"

		require.NoError(t, svc.Reconcile(ctx, ev))
	})

	t.Run("non lint pipeline is ignored", func(t *testing.T) {
		svc, _, _, _, _ := newDispatcher(t)

		ev := lintEvent("failed")
		ev.Stages = []string{"build", "deploy"}
		ev.BuildNames = []string{"compile"}

		require.NoError(t, svc.Reconcile(ctx, ev))
	})

	t.Run("lint job name matches without a lint stage", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		ev := lintEvent("failed")
		ev.Stages = []string{"test"}
		ev.BuildNames = []string{"golangci-lint"}
		author := &models.Recipient{ChatID: 200, GitlabUsername: "alice"}

		mrs.EXPECT().SetLintStatus(ctx, int64(10), int64(5), "failed").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		directory.EXPECT().Resolve(ctx, "alice").Return(author, nil)
		delivery.EXPECT().Notify(ctx, author, gomock.Any()).Return(nil)

		require.NoError(t, svc.Reconcile(ctx, ev))
	})

	t.Run("lint failure notifies the author", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		author := &models.Recipient{ChatID: 200, GitlabUsername: "alice"}

		mrs.EXPECT().SetLintStatus(ctx, int64(10), int64(5), "failed").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		directory.EXPECT().Resolve(ctx, "alice").Return(author, nil)
		delivery.EXPECT().Notify(ctx, author, gomock.Any()).Return(nil)

		require.NoError(t, svc.Reconcile(ctx, lintEvent("failed")))
	})

	t.Run("lint success notifies leads and reviewers", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}
		bob := &models.Recipient{ChatID: 300, GitlabUsername: "bob"}

		mrs.EXPECT().SetLintStatus(ctx, int64(10), int64(5), "success").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)
		directory.EXPECT().Resolve(ctx, "bob").Return(bob, nil)
		delivery.EXPECT().Notify(ctx, bob, gomock.Any()).Return(nil)
		// Reviewers without a delivery address are skipped.
		directory.EXPECT().Resolve(ctx, "carol").Return(nil, service.ErrNoRecipient)

		require.NoError(t, svc.Reconcile(ctx, lintEvent("success")))
	})

	t.Run("untracked merge request is dropped", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		mrs.EXPECT().SetLintStatus(ctx, int64(10), int64(5), "failed").Return(repository.ErrNotFound)

		require.NoError(t, svc.Reconcile(ctx, lintEvent("failed")))
	})

	t.Run("running pipeline updates status silently", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		mrs.EXPECT().SetLintStatus(ctx, int64(10), int64(5), "running").Return(nil)
		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked(), nil)

		require.NoError(t, svc.Reconcile(ctx, lintEvent("running")))
	})
}

func TestDispatcher_Note(t *testing.T) {
	ctx := t.Context()

	noteEvent := func(actor string) *event.NoteEvent {
		return &event.NoteEvent{
			Actor:        event.Actor{Username: actor, Name: ""},
			NoteableType: "MergeRequest",
			Note:         "Please rename this",
			MRProjectID:  10,
			MRIID:        5,
		}
	}

	tracked := &models.MergeRequest{
		ProjectID:      10,
		IID:            5,
		Title:          "Add search",
		AuthorUsername: "alice",
	}

	t.Run("comment notifies leads and author", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		leads := []*models.Recipient{{ChatID: 100, GitlabUsername: "lead"}}
		author := &models.Recipient{ChatID: 200, GitlabUsername: "alice"}

		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked, nil)
		directory.EXPECT().Leads(ctx).Return(leads, nil)
		delivery.EXPECT().NotifyAll(ctx, leads, gomock.Any()).Return(nil)
		directory.EXPECT().Resolve(ctx, "alice").Return(author, nil)
		delivery.EXPECT().Notify(ctx, author, gomock.Any()).Return(nil)

		require.NoError(t, svc.Reconcile(ctx, noteEvent("bob")))
	})

	t.Run("author's own comment is suppressed", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(tracked, nil)

		require.NoError(t, svc.Reconcile(ctx, noteEvent("Alice")))
	})

	t.Run("non merge request note is ignored", func(t *testing.T) {
		svc, _, _, _, _ := newDispatcher(t)

		ev := noteEvent("bob")
		ev.NoteableType = "Issue"

		require.NoError(t, svc.Reconcile(ctx, ev))
	})

	t.Run("note for untracked merge request is dropped", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		mrs.EXPECT().Find(ctx, int64(10), int64(5)).Return(nil, repository.ErrNotFound)

		require.NoError(t, svc.Reconcile(ctx, noteEvent("bob")))
	})
}

func TestDispatcher_Push(t *testing.T) {
	ctx := t.Context()

	pushEvent := &event.PushEvent{
		Ref:         "refs/heads/TASK-42-search",
		ProjectPath: "team/app",
	}

	t.Run("push notifies reviewers", func(t *testing.T) {
		svc, mrs, _, directory, delivery := newDispatcher(t)

		tracked := &models.MergeRequest{
			ProjectID: 10,
			IID:       5,
			Title:     "Add search",
			State:     "opened",
			Reviewers: []string{"bob", "carol"},
		}
		bob := &models.Recipient{ChatID: 300, GitlabUsername: "bob"}
		carol := &models.Recipient{ChatID: 400, GitlabUsername: "carol"}

		mrs.EXPECT().FindByBranch(ctx, "team/app", "TASK-42-search").Return(tracked, nil)
		directory.EXPECT().Resolve(ctx, "bob").Return(bob, nil)
		delivery.EXPECT().Notify(ctx, bob, gomock.Any()).Return(nil)
		directory.EXPECT().Resolve(ctx, "carol").Return(carol, nil)
		delivery.EXPECT().Notify(ctx, carol, gomock.Any()).Return(nil)

		require.NoError(t, svc.Reconcile(ctx, pushEvent))
	})

	t.Run("merged record triggers nothing", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		tracked := &models.MergeRequest{
			ProjectID: 10,
			IID:       5,
			State:     models.MRStateMerged,
			Reviewers: []string{"bob"},
		}

		mrs.EXPECT().FindByBranch(ctx, "team/app", "TASK-42-search").Return(tracked, nil)

		require.NoError(t, svc.Reconcile(ctx, pushEvent))
	})

	t.Run("record without reviewers triggers nothing", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		tracked := &models.MergeRequest{ProjectID: 10, IID: 5, State: "opened"}

		mrs.EXPECT().FindByBranch(ctx, "team/app", "TASK-42-search").Return(tracked, nil)

		require.NoError(t, svc.Reconcile(ctx, pushEvent))
	})

	t.Run("push to unknown branch is ignored", func(t *testing.T) {
		svc, mrs, _, _, _ := newDispatcher(t)

		mrs.EXPECT().FindByBranch(ctx, "team/app", "TASK-42-search").Return(nil, repository.ErrNotFound)

		require.NoError(t, svc.Reconcile(ctx, pushEvent))
	})
}
