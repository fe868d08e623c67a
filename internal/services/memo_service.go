// memo_service.go
//
// Per-project memo ledger, parallel to but independent of revisions. The
// store only ever sees whole-memo create/update/delete; which memo is
// "active" in an editor is caller state (see project.NextActiveIndex).

package services

import (
	"fmt"
	"time"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoInput carries a memo's editable fields.
type MemoInput struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// CreateMemo appends a memo and returns the updated project. A missing title
// defaults to the memo's ordinal.
func CreateMemo(db *gorm.DB, projectID string, in MemoInput, actor string) (project.Project, error) {
	var updated project.Project
	err := mutateProject(db, projectID, actor, func(p *project.Project) error {
		title := in.Title
		if title == "" {
			title = fmt.Sprintf("Memo %d", len(p.Memos)+1)
		}
		p.Memos = append(p.Memos, project.Memo{
			ID:        uuid.NewString(),
			Title:     title,
			Content:   in.Content,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
		return nil
	}, &updated)
	return updated, err
}

// UpdateMemo overwrites a memo's title/content and stamps updatedAt.
func UpdateMemo(db *gorm.DB, projectID, memoID string, in MemoInput, actor string) (project.Project, error) {
	var updated project.Project
	err := mutateProject(db, projectID, actor, func(p *project.Project) error {
		for i := range p.Memos {
			if p.Memos[i].ID != memoID {
				continue
			}
			if in.Title != "" {
				p.Memos[i].Title = in.Title
			}
			p.Memos[i].Content = in.Content
			p.Memos[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			return nil
		}
		return ErrNotFound
	}, &updated)
	return updated, err
}

// DeleteMemo removes one memo by id and returns the updated project.
func DeleteMemo(db *gorm.DB, projectID, memoID string, actor string) (project.Project, error) {
	var updated project.Project
	err := mutateProject(db, projectID, actor, func(p *project.Project) error {
		for i := range p.Memos {
			if p.Memos[i].ID == memoID {
				p.Memos = append(p.Memos[:i], p.Memos[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	}, &updated)
	return updated, err
}
