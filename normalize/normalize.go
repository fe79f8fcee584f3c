/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package normalize projects Yuque API objects into the compact payloads
// returned to MCP clients. All functions are pure.
package normalize

import (
	"github.com/PivotLLM/yuque-mcp/yuque"
)

type User struct {
	ID             int64  `json:"id"`
	Login          string `json:"login"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	AvatarURL      string `json:"avatar_url"`
	BooksCount     int    `json:"books_count"`
	FollowersCount int    `json:"followers_count"`
}

type Group struct {
	ID           int64  `json:"id"`
	Login        string `json:"login"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	BooksCount   int    `json:"books_count"`
	MembersCount int    `json:"members_count"`
}

type Repo struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Namespace   string `json:"namespace"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
	ItemsCount  int    `json:"items_count"`
	UpdatedAt   string `json:"updated_at"`
}

// DocSummary is a doc without its body, used in listings.
type DocSummary struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Format    string `json:"format"`
	Public    bool   `json:"public"`
	WordCount int    `json:"word_count"`
	UpdatedAt string `json:"updated_at"`
}

type Doc struct {
	DocSummary
	Body        string `json:"body"`
	BodyHTML    string `json:"body_html"`
	Description string `json:"description"`
}

type TocItem struct {
	Title      string `json:"title"`
	UUID       string `json:"uuid"`
	ParentUUID string `json:"parent_uuid"`
	DocID      int64  `json:"doc_id"`
	Level      int    `json:"level"`
	Visible    bool   `json:"visible"`
}

type DocVersionSummary struct {
	ID        int64  `json:"id"`
	DocID     int64  `json:"doc_id"`
	Title     string `json:"title"`
	Format    string `json:"format"`
	CreatedAt string `json:"created_at"`
}

type DocVersion struct {
	DocVersionSummary
	Body string `json:"body"`
}

type GroupMember struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	User     *User  `json:"user,omitempty"`
	Role     int    `json:"role"`
	RoleName string `json:"role_name"`
}

type SearchBook struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

type SearchItem struct {
	ID        int64       `json:"id"`
	Type      string      `json:"type"`
	Title     string      `json:"title"`
	URL       string      `json:"url"`
	Summary   string      `json:"summary"`
	Book      *SearchBook `json:"book,omitempty"`
	UpdatedAt string      `json:"updated_at"`
}

type SearchResult struct {
	Total int          `json:"total"`
	Items []SearchItem `json:"items"`
}

type GroupStatistics struct {
	BooksCount       int `json:"books_count"`
	DocsCount        int `json:"docs_count"`
	MembersCount     int `json:"members_count"`
	PublicBooksCount int `json:"public_books_count"`
	PublicDocsCount  int `json:"public_docs_count"`
}

func FromUser(u yuque.User) User {
	return User{
		ID:             u.ID,
		Login:          u.Login,
		Name:           u.Name,
		Description:    u.Description,
		AvatarURL:      u.AvatarURL,
		BooksCount:     u.BooksCount,
		FollowersCount: u.FollowersCount,
	}
}

func FromGroup(g yuque.Group) Group {
	return Group{
		ID:           g.ID,
		Login:        g.Login,
		Name:         g.Name,
		Description:  g.Description,
		BooksCount:   g.BooksCount,
		MembersCount: g.MembersCount,
	}
}

func FromRepo(r yuque.Repo) Repo {
	return Repo{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        r.Name,
		Namespace:   r.Namespace,
		Description: r.Description,
		Public:      r.Public == 1,
		ItemsCount:  r.ItemsCount,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromDocSummary(d yuque.Doc) DocSummary {
	return DocSummary{
		ID:        d.ID,
		Slug:      d.Slug,
		Title:     d.Title,
		Format:    d.Format,
		Public:    d.Public == 1,
		WordCount: d.WordCount,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDoc(d yuque.Doc) Doc {
	return Doc{
		DocSummary:  FromDocSummary(d),
		Body:        d.Body,
		BodyHTML:    d.BodyHTML,
		Description: d.Description,
	}
}

func FromTocItem(t yuque.TocItem) TocItem {
	return TocItem{
		Title:      t.Title,
		UUID:       t.UUID,
		ParentUUID: t.ParentUUID,
		DocID:      t.DocID,
		Level:      t.Level,
		Visible:    t.Visible == 1,
	}
}

func FromDocVersionSummary(v yuque.DocVersion) DocVersionSummary {
	return DocVersionSummary{
		ID:        v.ID,
		DocID:     v.DocID,
		Title:     v.Title,
		Format:    v.Format,
		CreatedAt: v.CreatedAt,
	}
}

func FromDocVersion(v yuque.DocVersion) DocVersion {
	return DocVersion{
		DocVersionSummary: FromDocVersionSummary(v),
		Body:              v.Body,
	}
}

func FromGroupMember(m yuque.GroupMember) GroupMember {
	out := GroupMember{
		ID:       m.ID,
		UserID:   m.UserID,
		Role:     m.Role,
		RoleName: RoleName(m.Role),
	}
	if m.User != nil {
		u := FromUser(*m.User)
		out.User = &u
	}
	return out
}

// RoleName returns the label for a group role; unknown roles read as "member".
func RoleName(role int) string {
	switch role {
	case yuque.RoleOwner:
		return "owner"
	case yuque.RoleAdmin:
		return "admin"
	default:
		return "member"
	}
}

func FromSearch(r yuque.SearchResult) SearchResult {
	out := SearchResult{Total: r.Total, Items: make([]SearchItem, 0, len(r.Items))}
	for _, it := range r.Items {
		item := SearchItem{
			ID:        it.ID,
			Type:      it.Type,
			Title:     it.Title,
			URL:       it.URL,
			Summary:   it.Body,
			UpdatedAt: it.UpdatedAt,
		}
		if it.Book != nil {
			item.Book = &SearchBook{ID: it.Book.ID, Name: it.Book.Name, Namespace: it.Book.Namespace}
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func FromGroupStatistics(s yuque.GroupStatistics) GroupStatistics {
	return GroupStatistics(s)
}

// Map applies fn to each element. The result is never nil so that empty
// lists encode as [] rather than null.
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
