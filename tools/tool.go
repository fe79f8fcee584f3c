/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package tools declares every Yuque tool: its name, description, parameter
// schema and handler.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PivotLLM/yuque-mcp/schema"
	"github.com/PivotLLM/yuque-mcp/yuque"
)

// Client is the subset of the Yuque API the tools call. *yuque.Client
// implements it.
type Client interface {
	GetUser(ctx context.Context) (*yuque.User, error)
	ListGroups(ctx context.Context, userID int64) ([]yuque.Group, error)
	Search(ctx context.Context, query, searchType string) (*yuque.SearchResult, error)

	ListUserRepos(ctx context.Context, login string) ([]yuque.Repo, error)
	ListGroupRepos(ctx context.Context, login string) ([]yuque.Repo, error)
	GetRepo(ctx context.Context, repo yuque.Ref) (*yuque.Repo, error)
	CreateUserRepo(ctx context.Context, login string, data yuque.CreateRepoData) (*yuque.Repo, error)
	CreateGroupRepo(ctx context.Context, login string, data yuque.CreateRepoData) (*yuque.Repo, error)
	UpdateRepo(ctx context.Context, repo yuque.Ref, data yuque.UpdateRepoData) (*yuque.Repo, error)
	DeleteRepo(ctx context.Context, repo yuque.Ref) error

	ListDocs(ctx context.Context, repo yuque.Ref) ([]yuque.Doc, error)
	GetDoc(ctx context.Context, repo, doc yuque.Ref) (*yuque.Doc, error)
	CreateDoc(ctx context.Context, repo yuque.Ref, data yuque.CreateDocData) (*yuque.Doc, error)
	UpdateDoc(ctx context.Context, repo, doc yuque.Ref, data yuque.UpdateDocData) (*yuque.Doc, error)
	DeleteDoc(ctx context.Context, repo, doc yuque.Ref) error

	GetToc(ctx context.Context, repo yuque.Ref) ([]yuque.TocItem, error)
	UpdateToc(ctx context.Context, repo yuque.Ref, tocData string) ([]yuque.TocItem, error)

	ListDocVersions(ctx context.Context, docID int64) ([]yuque.DocVersion, error)
	GetDocVersion(ctx context.Context, versionID int64) (*yuque.DocVersion, error)

	ListGroupMembers(ctx context.Context, login string) ([]yuque.GroupMember, error)
	UpdateGroupMember(ctx context.Context, login string, userID int64, role int) (*yuque.GroupMember, error)
	RemoveGroupMember(ctx context.Context, login string, userID int64) error

	GetGroupStats(ctx context.Context, login string) (*yuque.GroupStatistics, error)
	GetGroupMemberStats(ctx context.Context, login string) (any, error)
	GetGroupBookStats(ctx context.Context, login string) (any, error)
	GetGroupDocStats(ctx context.Context, login string) (any, error)

	Hello(ctx context.Context) (*yuque.Hello, error)
}

var _ Client = (*yuque.Client)(nil)

// Access classifies a tool's side effects.
type Access int

const (
	ReadOnly Access = iota
	Write
	Destructive
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case Write:
		return "write"
	case Destructive:
		return "destructive"
	}
	return "unknown"
}

// Handler runs a tool against validated arguments.
type Handler func(ctx context.Context, client Client, args schema.Args) (*Result, error)

// Tool is one registry entry.
type Tool struct {
	Name        string
	Description string
	Schema      *schema.Schema
	Access      Access
	Handler     Handler
}

// Content is one block of a tool result. Only text blocks are produced.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the outcome of a successful tool call.
type Result struct {
	Content []Content `json:"content"`
}

// Text returns the concatenated text of all blocks.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	var s string
	for _, c := range r.Content {
		s += c.Text
	}
	return s
}

// TextResult encodes v as indented JSON.
func TextResult(v any) (*Result, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &Result{Content: []Content{{Type: "text", Text: string(data)}}}, nil
}

// StatusResult returns a literal status message.
func StatusResult(status string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: status}}}
}

// Common parameter declarations.
func loginParam(desc string) schema.Param {
	return schema.Param{Name: "login", Type: schema.String, Description: desc, Required: true}
}

func repoIDParam() schema.Param {
	return schema.Param{Name: "repo_id", Type: schema.StringOrNumber, Description: "Repo ID or namespace (e.g. \"group/repo\")", Required: true}
}

func docIDParam() schema.Param {
	return schema.Param{Name: "doc_id", Type: schema.StringOrNumber, Description: "Doc ID or slug", Required: true}
}

func publicParam(desc string) schema.Param {
	return schema.Param{Name: "public", Type: schema.Integer, Description: desc, Enum: []any{0, 1}}
}
