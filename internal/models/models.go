package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	GitlabUsername   string
	TelegramUsername string
	TelegramUserID   *int64
	ChatID           *int64
	Name             string
	IsAllowed        bool
	IsActive         bool
	IsLead           bool
	WorkHours        *WorkHours
	IgnoreWorkHours  bool
}

// WorkHours is a daily [Start, End) window in HH:MM, local to Timezone.
type WorkHours struct {
	Start    string
	End      string
	Timezone string
}

// Recipient is the directory view of a user at the instant of resolution.
// WithinHours is never cached across delivery attempts.
type Recipient struct {
	ChatID           int64
	TelegramUsername string
	GitlabUsername   string
	Name             string
	WithinHours      bool
}

type MergeRequest struct {
	ProjectID           int64
	IID                 int64
	MRID                int64
	ProjectPath         string
	Title               string
	Description         string
	SourceBranch        string
	TargetBranch        string
	URL                 string
	TaskKey             string
	TaskURL             string
	AuthorUsername      string
	AuthorName          string
	State               string
	MergeStatus         string
	DetailedMergeStatus string
	ApprovalsRequired   *int
	ApprovalsLeft       *int
	ApprovedBy          []string
	Reviewers           []string
	LastLintStatus      string
	FinalReviewNotified bool
	CreatedAt           *time.Time
	UpdatedAt           *time.Time
}

const (
	MRStateMerged = "merged"
	MRStateClosed = "closed"
)

// Terminal reports whether the record should no longer trigger
// review-progress notifications.
func (mr *MergeRequest) Terminal() bool {
	return mr.State == MRStateMerged || mr.State == MRStateClosed
}

// ReviewerQueue is the single persisted rotation record. Version guards
// concurrent writers via compare-and-set.
type ReviewerQueue struct {
	Queue     []string
	Version   int64
	UpdatedAt time.Time
}

type Notification struct {
	ID               uuid.UUID
	ChatID           int64
	Text             string
	TelegramUsername string
	GitlabUsername   string
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}
