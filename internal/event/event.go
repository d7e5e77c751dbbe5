// Package event parses loose GitLab webhook payloads into small tagged
// variants. Payloads missing required identifying fields are rejected here
// so the dispatcher never touches unchecked optional access.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownKind = errors.New("unknown event kind")
	ErrMalformed   = errors.New("malformed event payload")
)

type Kind string

const (
	KindMergeRequest Kind = "merge_request"
	KindPipeline     Kind = "pipeline"
	KindNote         Kind = "note"
	KindPush         Kind = "push"
)

// Event is one parsed inbound webhook event.
type Event interface {
	Kind() Kind
}

type Actor struct {
	Username string
	Name     string
}

type MergeRequestEvent struct {
	ProjectID           int64
	ProjectPath         string
	Actor               Actor
	Action              string
	MRID                int64
	IID                 int64
	Title               string
	Description         string
	SourceBranch        string
	TargetBranch        string
	URL                 string
	State               string
	MergeStatus         string
	DetailedMergeStatus string
	ApprovalsRequired   *int
	ApprovalsLeft       *int
	AuthorUsername      string
	AuthorName          string
	WorkInProgress      bool
	CreatedAt           *time.Time
	UpdatedAt           *time.Time
}

func (*MergeRequestEvent) Kind() Kind { return KindMergeRequest }

type PipelineEvent struct {
	Actor      Actor
	Source     string
	Status     string
	Stages     []string
	BuildNames []string
	// Merge request reference, zero when the pipeline carries none.
	MRProjectID int64
	MRIID       int64
}

func (*PipelineEvent) Kind() Kind { return KindPipeline }

type NoteEvent struct {
	Actor        Actor
	NoteableType string
	Note         string
	MRProjectID  int64
	MRIID        int64
}

func (*NoteEvent) Kind() Kind { return KindNote }

type PushEvent struct {
	Actor       Actor
	Ref         string
	ProjectPath string
}

func (*PushEvent) Kind() Kind { return KindPush }

// Raw wire shapes. Only the fields the dispatcher consumes are declared;
// everything else in the payload is ignored.
type rawPayload struct {
	ObjectKind       string              `json:"object_kind"`
	Project          rawProject          `json:"project"`
	User             rawUser             `json:"user"`
	ObjectAttributes rawObjectAttributes `json:"object_attributes"`
	MergeRequest     *rawMergeRequestRef `json:"merge_request"`
	Builds           []rawBuild          `json:"builds"`
	Ref              string              `json:"ref"`
}

type rawProject struct {
	ID                int64  `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
}

type rawUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type rawObjectAttributes struct {
	ID                  int64               `json:"id"`
	IID                 int64               `json:"iid"`
	Action              string              `json:"action"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	SourceBranch        string              `json:"source_branch"`
	TargetBranch        string              `json:"target_branch"`
	URL                 string              `json:"url"`
	State               string              `json:"state"`
	MergeStatus         string              `json:"merge_status"`
	DetailedMergeStatus string              `json:"detailed_merge_status"`
	ApprovalsRequired   *int                `json:"approvals_required"`
	ApprovalsLeft       *int                `json:"approvals_left"`
	WorkInProgress      bool                `json:"work_in_progress"`
	Author              *rawUser            `json:"author"`
	CreatedAt           string              `json:"created_at"`
	UpdatedAt           string              `json:"updated_at"`
	Source              string              `json:"source"`
	Status              string              `json:"status"`
	Stages              []string            `json:"stages"`
	NoteableType        string              `json:"noteable_type"`
	Note                string              `json:"note"`
	MergeRequest        *rawMergeRequestRef `json:"merge_request"`
}

type rawMergeRequestRef struct {
	IID             int64 `json:"iid"`
	TargetProjectID int64 `json:"target_project_id"`
	SourceProjectID int64 `json:"source_project_id"`
}

type rawBuild struct {
	Name string `json:"name"`
}

// Parse decodes body and maps it to a tagged variant by object_kind.
// ErrUnknownKind is returned for kinds the system does not consume,
// ErrMalformed when a required identifying field is missing.
func Parse(body []byte) (Event, error) {
	raw := &rawPayload{}
	if err := json.Unmarshal(body, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch Kind(raw.ObjectKind) {
	case KindMergeRequest:
		return parseMergeRequest(raw)
	case KindPipeline:
		return parsePipeline(raw)
	case KindNote:
		return parseNote(raw)
	case KindPush:
		return parsePush(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, raw.ObjectKind)
	}
}

func parseMergeRequest(raw *rawPayload) (Event, error) {
	attrs := raw.ObjectAttributes
	if raw.Project.ID == 0 || attrs.IID == 0 {
		return nil, fmt.Errorf("%w: merge request event without project id or iid", ErrMalformed)
	}

	ev := &MergeRequestEvent{
		ProjectID:           raw.Project.ID,
		ProjectPath:         raw.Project.PathWithNamespace,
		Actor:               Actor{Username: raw.User.Username, Name: raw.User.Name},
		Action:              attrs.Action,
		MRID:                attrs.ID,
		IID:                 attrs.IID,
		Title:               attrs.Title,
		Description:         attrs.Description,
		SourceBranch:        attrs.SourceBranch,
		TargetBranch:        attrs.TargetBranch,
		URL:                 attrs.URL,
		State:               attrs.State,
		MergeStatus:         attrs.MergeStatus,
		DetailedMergeStatus: attrs.DetailedMergeStatus,
		ApprovalsRequired:   attrs.ApprovalsRequired,
		ApprovalsLeft:       attrs.ApprovalsLeft,
		WorkInProgress:      attrs.WorkInProgress,
		CreatedAt:           parseTime(attrs.CreatedAt),
		UpdatedAt:           parseTime(attrs.UpdatedAt),
	}

	if attrs.Author != nil {
		ev.AuthorUsername = attrs.Author.Username
		ev.AuthorName = attrs.Author.Name
	}
	if ev.AuthorUsername == "" {
		ev.AuthorUsername = raw.User.Username
		ev.AuthorName = raw.User.Name
	}

	return ev, nil
}

func parsePipeline(raw *rawPayload) (Event, error) {
	attrs := raw.ObjectAttributes

	ev := &PipelineEvent{
		Actor:  Actor{Username: raw.User.Username, Name: raw.User.Name},
		Source: attrs.Source,
		Status: attrs.Status,
		Stages: attrs.Stages,
	}

	for _, b := range raw.Builds {
		ev.BuildNames = append(ev.BuildNames, b.Name)
	}

	mr := raw.MergeRequest
	if mr == nil {
		mr = attrs.MergeRequest
	}
	if mr != nil {
		ev.MRProjectID = mr.TargetProjectID
		if ev.MRProjectID == 0 {
			ev.MRProjectID = mr.SourceProjectID
		}
		ev.MRIID = mr.IID
	}

	return ev, nil
}

func parseNote(raw *rawPayload) (Event, error) {
	attrs := raw.ObjectAttributes

	ev := &NoteEvent{
		Actor:        Actor{Username: raw.User.Username, Name: raw.User.Name},
		NoteableType: attrs.NoteableType,
		Note:         attrs.Note,
	}

	if mr := raw.MergeRequest; mr != nil {
		ev.MRProjectID = mr.TargetProjectID
		if ev.MRProjectID == 0 {
			ev.MRProjectID = mr.SourceProjectID
		}
		ev.MRIID = mr.IID
	}

	return ev, nil
}

func parsePush(raw *rawPayload) (Event, error) {
	if raw.Ref == "" || raw.Project.PathWithNamespace == "" {
		return nil, fmt.Errorf("%w: push event without ref or project path", ErrMalformed)
	}

	return &PushEvent{
		Actor:       Actor{Username: raw.User.Username, Name: raw.User.Name},
		Ref:         raw.Ref,
		ProjectPath: raw.Project.PathWithNamespace,
	}, nil
}

var timeLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700",
	time.RFC3339,
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
