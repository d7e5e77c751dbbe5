//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks .

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mr-notifier/internal/event"
	"mr-notifier/internal/message"
	"mr-notifier/internal/models"
	"mr-notifier/internal/repository"

	"go.uber.org/zap"
)

type MergeRequestStore interface {
	// Создать запись или обновить изменяемые поля
	Upsert(ctx context.Context, mr *models.MergeRequest) error

	// Найти запись по ключу (projectID, iid)
	Find(ctx context.Context, projectID, iid int64) (*models.MergeRequest, error)

	// Найти запись по проекту и исходной ветке
	FindByBranch(ctx context.Context, projectPath, sourceBranch string) (*models.MergeRequest, error)

	// Назначить ревьюеров (однократно)
	SetReviewers(ctx context.Context, projectID, iid int64, reviewers []string) (bool, error)

	// Добавить апрув (идемпотентно по актору)
	AddApprover(ctx context.Context, projectID, iid int64, username string) error

	// Снять апрув (идемпотентно по актору)
	RemoveApprover(ctx context.Context, projectID, iid int64, username string) error

	// Обновить статус линта
	SetLintStatus(ctx context.Context, projectID, iid int64, status string) error

	// Защёлкнуть флаг финального ревью (однократно)
	ClaimFinalReview(ctx context.Context, projectID, iid int64) (bool, error)
}

type ReviewerRotation interface {
	// Выбрать ревьюеров из ротации
	PullReviewers(ctx context.Context, exclude []string, n int) ([]string, error)
}

type Recipients interface {
	// Разрешить получателя по GitLab-логину
	Resolve(ctx context.Context, gitlabUsername string) (*models.Recipient, error)

	// Получатели-лиды
	Leads(ctx context.Context) ([]*models.Recipient, error)

	// Подпись пользователя для текста сообщения
	Label(ctx context.Context, gitlabUsername, fallbackName string) string

	// Обновить профиль актора события
	UpsertProfile(ctx context.Context, gitlabUsername, name string) error
}

type Notifier interface {
	// Доставить сообщение одному получателю
	Notify(ctx context.Context, rcpt *models.Recipient, text string) error

	// Доставить сообщение списку получателей
	NotifyAll(ctx context.Context, rcpts []*models.Recipient, text string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type TxManagerStub struct{}

func (TxManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// DispatcherConfig carries the reconciliation policy knobs.
type DispatcherConfig struct {
	// DefaultRequiredApprovals applies when the upstream never reported a
	// required count for the record.
	DefaultRequiredApprovals int

	// ReviewersPerMR is the rotation pull size for new merge requests.
	ReviewersPerMR int

	// JiraBaseURL, when set, turns extracted task keys into links.
	JiraBaseURL string
}

// Dispatcher is the single entry point for inbound events. It reconciles
// the per-key record from a stream of possibly out-of-order, possibly
// duplicated events and decides which notifications to fire. All rules are
// idempotent per key; the reviewer assignment and the final-review latch
// are the only read-modify-write points and both are claimed atomically in
// the store.
type Dispatcher struct {
	mrs       MergeRequestStore
	rotation  ReviewerRotation
	directory Recipients
	delivery  Notifier

	trManager TxManager

	cfg DispatcherConfig
	log *zap.Logger
}

func NewDispatcher(
	mrs MergeRequestStore,
	rotation ReviewerRotation,
	directory Recipients,
	delivery Notifier,
	trManager TxManager,
	cfg DispatcherConfig,
	log *zap.Logger,
) *Dispatcher {
	if cfg.ReviewersPerMR <= 0 {
		cfg.ReviewersPerMR = 2
	}
	return &Dispatcher{
		mrs:       mrs,
		rotation:  rotation,
		directory: directory,
		delivery:  delivery,
		trManager: trManager,
		cfg:       cfg,
		log:       log,
	}
}

// Reconcile applies one inbound event to the state store and triggers the
// notifications it warrants. Unknown references and malformed payloads are
// dropped with a log; persistence failures propagate.
func (s *Dispatcher) Reconcile(ctx context.Context, ev event.Event) error {
	switch e := ev.(type) {
	case *event.MergeRequestEvent:
		return s.handleMergeRequest(ctx, e)
	case *event.PipelineEvent:
		return s.handlePipeline(ctx, e)
	case *event.NoteEvent:
		return s.handleNote(ctx, e)
	case *event.PushEvent:
		return s.handlePush(ctx, e)
	default:
		s.log.Warn("unsupported event type dropped")
		return nil
	}
}

var taskKeyRegexp = regexp.MustCompile(`([A-Z]+-\d+)`)

func (s *Dispatcher) handleMergeRequest(ctx context.Context, e *event.MergeRequestEvent) error {
	s.captureActorProfile(ctx, e.Actor)

	existing, err := s.mrs.Find(ctx, e.ProjectID, e.IID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("find merge request: %w", err)
	}

	doc := s.buildRecord(e, existing)

	if e.Action == "open" && !isDraft(e) {
		if err := s.createWithReviewers(ctx, doc, existing); err != nil {
			return err
		}
	} else {
		if err := s.mrs.Upsert(ctx, doc); err != nil {
			s.log.Error("failed to upsert merge request",
				zap.Error(err),
				zap.Int64("project_id", e.ProjectID),
				zap.Int64("iid", e.IID),
			)
			return err
		}
	}

	switch e.Action {
	case "approved":
		if e.Actor.Username != "" {
			if err := s.mrs.AddApprover(ctx, e.ProjectID, e.IID, e.Actor.Username); err != nil {
				return fmt.Errorf("add approver: %w", err)
			}
		}
	case "unapproved":
		if e.Actor.Username != "" {
			if err := s.mrs.RemoveApprover(ctx, e.ProjectID, e.IID, e.Actor.Username); err != nil {
				return fmt.Errorf("remove approver: %w", err)
			}
		}
	case "close", "merge":
		return s.notifyClosed(ctx, e, doc)
	}

	return s.maybeNotifyFinalReview(ctx, e.ProjectID, e.IID)
}

// buildRecord maps the event onto the record shape. The author is pinned
// from the first open event and never replaced afterwards (the store keeps
// it insert-only as well).
func (s *Dispatcher) buildRecord(e *event.MergeRequestEvent, existing *models.MergeRequest) *models.MergeRequest {
	doc := &models.MergeRequest{
		ProjectID:           e.ProjectID,
		IID:                 e.IID,
		MRID:                e.MRID,
		ProjectPath:         e.ProjectPath,
		Title:               e.Title,
		Description:         e.Description,
		SourceBranch:        e.SourceBranch,
		TargetBranch:        e.TargetBranch,
		URL:                 e.URL,
		State:               e.State,
		MergeStatus:         e.MergeStatus,
		DetailedMergeStatus: e.DetailedMergeStatus,
		ApprovalsRequired:   e.ApprovalsRequired,
		ApprovalsLeft:       e.ApprovalsLeft,
		ApprovedBy:          []string{},
		Reviewers:           []string{},
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}

	if existing != nil {
		doc.AuthorUsername = existing.AuthorUsername
		doc.AuthorName = existing.AuthorName
		doc.TaskKey = existing.TaskKey
		doc.TaskURL = existing.TaskURL
	} else {
		doc.AuthorUsername = e.AuthorUsername
		doc.AuthorName = e.AuthorName
	}

	if doc.TaskKey == "" {
		doc.TaskKey, doc.TaskURL = s.taskInfo(e.SourceBranch)
	}

	return doc
}

// createWithReviewers runs the open-event path: the record upsert and the
// set-once reviewer claim land in one transaction, and the winning claim
// emits the "created" notification to leads and the author after commit. A
// duplicated open event finds the slot claimed and emits nothing.
func (s *Dispatcher) createWithReviewers(ctx context.Context, doc *models.MergeRequest, existing *models.MergeRequest) error {
	var assigned []string

	txErr := s.trManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mrs.Upsert(ctx, doc); err != nil {
			return fmt.Errorf("upsert merge request: %w", err)
		}

		if existing != nil && len(existing.Reviewers) > 0 {
			return nil
		}

		reviewers, err := s.rotation.PullReviewers(ctx, []string{doc.AuthorUsername}, s.cfg.ReviewersPerMR)
		if err != nil {
			return fmt.Errorf("pull reviewers: %w", err)
		}
		if len(reviewers) == 0 {
			s.log.Warn("reviewer rotation is empty, nobody assigned",
				zap.Int64("project_id", doc.ProjectID),
				zap.Int64("iid", doc.IID),
			)
			return nil
		}

		claimed, err := s.mrs.SetReviewers(ctx, doc.ProjectID, doc.IID, reviewers)
		if err != nil {
			return fmt.Errorf("set reviewers: %w", err)
		}
		if claimed {
			assigned = reviewers
		}
		return nil
	})
	if txErr != nil {
		s.log.Error("failed to create merge request",
			zap.Error(txErr),
			zap.Int64("project_id", doc.ProjectID),
			zap.Int64("iid", doc.IID),
		)
		return txErr
	}

	if len(assigned) == 0 {
		return nil
	}
	reviewers := assigned
	doc.Reviewers = reviewers

	labels := make([]string, len(reviewers))
	for i, reviewer := range reviewers {
		labels[i] = s.directory.Label(ctx, reviewer, "")
	}

	text := message.BuildCreated(message.CreatedInput{
		MRInput:      s.mrInput(doc),
		AuthorLabel:  s.directory.Label(ctx, doc.AuthorUsername, doc.AuthorName),
		ReviewerList: strings.Join(labels, ", "),
	})

	s.log.Info("merge request created, reviewers assigned",
		zap.Int64("project_id", doc.ProjectID),
		zap.Int64("iid", doc.IID),
		zap.Strings("reviewers", reviewers),
	)

	return s.notifyLeadsAndAuthor(ctx, doc.AuthorUsername, text)
}

func (s *Dispatcher) notifyClosed(ctx context.Context, e *event.MergeRequestEvent, doc *models.MergeRequest) error {
	actionText := "closed"
	if e.Action == "merge" {
		actionText = "merged"
	}

	text := message.BuildClosed(message.ClosedInput{
		MRInput:     s.mrInput(doc),
		ActionText:  actionText,
		AuthorLabel: s.directory.Label(ctx, doc.AuthorUsername, doc.AuthorName),
		CloserLabel: s.directory.Label(ctx, e.Actor.Username, e.Actor.Name),
	})

	// Terminal for notification purposes: no further rules run.
	return s.notifyLeadsAndAuthor(ctx, doc.AuthorUsername, text)
}

// maybeNotifyFinalReview checks the approvals-reached condition against the
// reconciled record and emits the "final review ready" message exactly once
// per key. The upstream approvals_left counter, when ever observed, is
// authoritative; the locally tracked approver set is the fallback.
func (s *Dispatcher) maybeNotifyFinalReview(ctx context.Context, projectID, iid int64) error {
	rec, err := s.mrs.Find(ctx, projectID, iid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find merge request: %w", err)
	}
	if rec.FinalReviewNotified {
		return nil
	}

	triggered := false
	switch {
	case rec.ApprovalsLeft != nil:
		triggered = *rec.ApprovalsLeft <= 0
	default:
		required := s.cfg.DefaultRequiredApprovals
		if rec.ApprovalsRequired != nil {
			required = *rec.ApprovalsRequired
		}
		triggered = required > 0 && len(rec.ApprovedBy) >= required
	}
	if !triggered {
		return nil
	}

	claimed, err := s.mrs.ClaimFinalReview(ctx, projectID, iid)
	if err != nil {
		return fmt.Errorf("claim final review: %w", err)
	}
	if !claimed {
		return nil
	}

	s.log.Info("merge request collected all approvals",
		zap.Int64("project_id", projectID),
		zap.Int64("iid", iid),
	)

	leads, err := s.directory.Leads(ctx)
	if err != nil {
		return err
	}

	return s.delivery.NotifyAll(ctx, leads, message.BuildFinalReview(s.mrInput(rec)))
}

func (s *Dispatcher) handlePipeline(ctx context.Context, e *event.PipelineEvent) error {
	s.captureActorProfile(ctx, e.Actor)

	if e.Source != "merge_request_event" {
		return nil
	}
	if !isLintPipeline(e) {
		return nil
	}
	if e.MRProjectID == 0 || e.MRIID == 0 {
		s.log.Warn("lint pipeline event without merge request reference dropped")
		return nil
	}

	if err := s.mrs.SetLintStatus(ctx, e.MRProjectID, e.MRIID, e.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("pipeline event for untracked merge request dropped",
				zap.Int64("project_id", e.MRProjectID),
				zap.Int64("iid", e.MRIID),
			)
			return nil
		}
		return fmt.Errorf("set lint status: %w", err)
	}

	rec, err := s.mrs.Find(ctx, e.MRProjectID, e.MRIID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find merge request: %w", err)
	}

	switch e.Status {
	case "failed", "canceled":
		return s.notifyAuthor(ctx, rec, message.BuildLintFailed(s.mrInput(rec)))
	case "success":
		return s.notifyLintPassed(ctx, rec)
	default:
		return nil
	}
}

func (s *Dispatcher) notifyLintPassed(ctx context.Context, rec *models.MergeRequest) error {
	if len(rec.Reviewers) == 0 {
		s.log.Warn("lint passed but no reviewers assigned",
			zap.Int64("project_id", rec.ProjectID),
			zap.Int64("iid", rec.IID),
		)
		return nil
	}

	leads, err := s.directory.Leads(ctx)
	if err != nil {
		return err
	}
	if err := s.delivery.NotifyAll(ctx, leads, message.BuildLintPassedLead(s.mrInput(rec))); err != nil {
		return err
	}

	text := message.BuildLintPassed(s.mrInput(rec))
	for _, reviewer := range rec.Reviewers {
		rcpt, err := s.directory.Resolve(ctx, reviewer)
		if err != nil {
			if errors.Is(err, ErrNoRecipient) {
				s.log.Warn("cannot notify reviewer, no delivery address",
					zap.String("reviewer", reviewer),
				)
				continue
			}
			return err
		}
		if err := s.delivery.Notify(ctx, rcpt, text); err != nil {
			return err
		}
	}

	return nil
}

func (s *Dispatcher) handleNote(ctx context.Context, e *event.NoteEvent) error {
	s.captureActorProfile(ctx, e.Actor)

	if e.NoteableType != "MergeRequest" {
		return nil
	}
	if e.MRProjectID == 0 || e.MRIID == 0 {
		s.log.Warn("note event without merge request reference dropped")
		return nil
	}

	rec, err := s.mrs.Find(ctx, e.MRProjectID, e.MRIID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("note event for untracked merge request dropped",
				zap.Int64("project_id", e.MRProjectID),
				zap.Int64("iid", e.MRIID),
			)
			return nil
		}
		return fmt.Errorf("find merge request: %w", err)
	}

	if rec.AuthorUsername == "" {
		return nil
	}
	// No self-notification for the author's own comments.
	if strings.EqualFold(e.Actor.Username, rec.AuthorUsername) {
		return nil
	}

	commenter := e.Actor.Name
	if commenter == "" {
		commenter = e.Actor.Username
	}
	if commenter == "" {
		commenter = "Reviewer"
	}

	text := message.BuildComment(message.CommentInput{
		MRInput:       s.mrInput(rec),
		CommenterName: commenter,
		NoteText:      e.Note,
	})

	return s.notifyLeadsAndAuthor(ctx, rec.AuthorUsername, text)
}

func (s *Dispatcher) handlePush(ctx context.Context, e *event.PushEvent) error {
	s.captureActorProfile(ctx, e.Actor)

	branch := strings.TrimPrefix(e.Ref, "refs/heads/")
	if branch == "" {
		return nil
	}

	rec, err := s.mrs.FindByBranch(ctx, e.ProjectPath, branch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find merge request by branch: %w", err)
	}

	if rec.Terminal() || len(rec.Reviewers) == 0 {
		return nil
	}

	text := message.BuildPushUpdate(s.mrInput(rec))
	for _, reviewer := range rec.Reviewers {
		rcpt, err := s.directory.Resolve(ctx, reviewer)
		if err != nil {
			if errors.Is(err, ErrNoRecipient) {
				continue
			}
			return err
		}
		if err := s.delivery.Notify(ctx, rcpt, text); err != nil {
			return err
		}
	}

	return nil
}

// notifyLeadsAndAuthor fans out to all leads plus the author when the
// author resolves to a recipient.
func (s *Dispatcher) notifyLeadsAndAuthor(ctx context.Context, authorUsername, text string) error {
	leads, err := s.directory.Leads(ctx)
	if err != nil {
		return err
	}
	if err := s.delivery.NotifyAll(ctx, leads, text); err != nil {
		return err
	}

	rcpt, err := s.directory.Resolve(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, ErrNoRecipient) {
			s.log.Warn("author has no delivery address",
				zap.String("author", authorUsername),
			)
			return nil
		}
		return err
	}

	return s.delivery.Notify(ctx, rcpt, text)
}

func (s *Dispatcher) notifyAuthor(ctx context.Context, rec *models.MergeRequest, text string) error {
	if rec.AuthorUsername == "" {
		s.log.Warn("merge request author not set",
			zap.Int64("project_id", rec.ProjectID),
			zap.Int64("iid", rec.IID),
		)
		return nil
	}

	rcpt, err := s.directory.Resolve(ctx, rec.AuthorUsername)
	if err != nil {
		if errors.Is(err, ErrNoRecipient) {
			s.log.Warn("cannot notify author, no delivery address",
				zap.String("author", rec.AuthorUsername),
			)
			return nil
		}
		return err
	}

	return s.delivery.Notify(ctx, rcpt, text)
}

func (s *Dispatcher) captureActorProfile(ctx context.Context, actor event.Actor) {
	if actor.Username == "" || actor.Name == "" {
		return
	}
	if err := s.directory.UpsertProfile(ctx, actor.Username, actor.Name); err != nil {
		s.log.Warn("failed to store actor profile",
			zap.Error(err),
			zap.String("username", actor.Username),
		)
	}
}

func (s *Dispatcher) mrInput(rec *models.MergeRequest) message.MRInput {
	return message.MRInput{
		Title:   rec.Title,
		URL:     rec.URL,
		TaskURL: rec.TaskURL,
	}
}

func (s *Dispatcher) taskInfo(sourceBranch string) (taskKey, taskURL string) {
	if sourceBranch == "" {
		return "", ""
	}

	taskKey = taskKeyRegexp.FindString(sourceBranch)
	if taskKey == "" {
		return "", ""
	}

	if s.cfg.JiraBaseURL != "" {
		taskURL = strings.TrimRight(s.cfg.JiraBaseURL, "/") + "/" + taskKey
	}

	return taskKey, taskURL
}

func isDraft(e *event.MergeRequestEvent) bool {
	if e.WorkInProgress {
		return true
	}
	title := strings.ToLower(strings.TrimSpace(e.Title))
	return strings.HasPrefix(title, "draft:") || strings.HasPrefix(title, "draft ")
}

func isLintPipeline(e *event.PipelineEvent) bool {
	for _, stage := range e.Stages {
		if strings.EqualFold(stage, "lint") {
			return true
		}
	}
	for _, name := range e.BuildNames {
		if strings.Contains(strings.ToLower(name), "lint") {
			return true
		}
	}
	return false
}
