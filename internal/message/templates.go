package message

import "strings"

// MRInput is the common part of every template: the MR title, its canonical
// URL and an optional task link appended as the last line when present.
type MRInput struct {
	Title   string
	URL     string
	TaskURL string
}

// Label fields are pre-rendered HTML (see UserLabel) and are interpolated
// as-is; everything else is escaped here.

func build(in MRInput, header string, body ...string) string {
	parts := make([]string, 0, 4)
	parts = append(parts, header)
	for _, line := range body {
		if line != "" {
			parts = append(parts, line)
		}
	}
	parts = append(parts, EscapeHTML(in.URL))
	if in.TaskURL != "" {
		parts = append(parts, "Task: "+EscapeHTML(in.TaskURL))
	}
	return strings.Join(parts, "\n")
}

type CreatedInput struct {
	MRInput
	AuthorLabel  string
	ReviewerList string
}

func BuildCreated(in CreatedInput) string {
	header := `🆕 New MR "` + EscapeHTML(in.Title) + `" by ` + in.AuthorLabel + `.`
	return build(in.MRInput, header, "Reviewers: "+in.ReviewerList)
}

type ClosedInput struct {
	MRInput
	ActionText  string
	AuthorLabel string
	CloserLabel string
}

func BuildClosed(in ClosedInput) string {
	header := `ℹ️ MR "` + EscapeHTML(in.Title) + `" was ` + in.ActionText +
		`. Author: ` + in.AuthorLabel + `. Action by: ` + in.CloserLabel + `.`
	return build(in.MRInput, header)
}

func BuildFinalReview(in MRInput) string {
	header := `✅ MR "` + EscapeHTML(in.Title) + `" has collected all approvals. Run the final review.`
	return build(in, header)
}

func BuildLintFailed(in MRInput) string {
	header := `🚫 Lint failed in MR "` + EscapeHTML(in.Title) + `". Check the pipeline and fix the errors.`
	return build(in, header)
}

func BuildLintPassed(in MRInput) string {
	header := `✅ MR "` + EscapeHTML(in.Title) + `" passed lint. Time to review.`
	return build(in, header)
}

func BuildLintPassedLead(in MRInput) string {
	header := `ℹ️ MR "` + EscapeHTML(in.Title) + `" passed lint.`
	return build(in, header)
}

func BuildPushUpdate(in MRInput) string {
	header := `✏️ MR "` + EscapeHTML(in.Title) + `" has new commits. Check the updates.`
	return build(in, header)
}

type CommentInput struct {
	MRInput
	CommenterName string
	NoteText      string
}

func BuildComment(in CommentInput) string {
	header := `💬 ` + EscapeHTML(in.CommenterName) + ` commented on MR "` + EscapeHTML(in.Title) + `":`
	return build(in.MRInput, header, EscapeHTML(in.NoteText))
}
