/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package tools

import (
	"context"

	"github.com/PivotLLM/yuque-mcp/yuque"
)

// stubClient records the last call and returns canned data or err.
type stubClient struct {
	err error

	method     string
	login      string
	id         int64
	role       int
	repo       yuque.Ref
	doc        yuque.Ref
	query      string
	searchType string
	tocData    string
	createRepo yuque.CreateRepoData
	updateRepo yuque.UpdateRepoData
	createDoc  yuque.CreateDocData
	updateDoc  yuque.UpdateDocData
}

func (s *stubClient) record(method string) error {
	s.method = method
	return s.err
}

var stubUser = yuque.User{ID: 1, Login: "alice", Name: "Alice", CreatedAt: "2024-01-01"}

func (s *stubClient) GetUser(context.Context) (*yuque.User, error) {
	if err := s.record("GetUser"); err != nil {
		return nil, err
	}
	u := stubUser
	return &u, nil
}

func (s *stubClient) ListGroups(_ context.Context, userID int64) ([]yuque.Group, error) {
	s.id = userID
	if err := s.record("ListGroups"); err != nil {
		return nil, err
	}
	return []yuque.Group{{ID: 10, Login: "team", MembersCount: 3}}, nil
}

func (s *stubClient) Search(_ context.Context, query, searchType string) (*yuque.SearchResult, error) {
	s.query, s.searchType = query, searchType
	if err := s.record("Search"); err != nil {
		return nil, err
	}
	return &yuque.SearchResult{Total: 1, Items: []yuque.SearchItem{{ID: 1, Title: "hit", Body: "snippet"}}}, nil
}

func (s *stubClient) ListUserRepos(_ context.Context, login string) ([]yuque.Repo, error) {
	s.login = login
	if err := s.record("ListUserRepos"); err != nil {
		return nil, err
	}
	return []yuque.Repo{{ID: 1, Slug: "a", Public: 1, UserID: 1}}, nil
}

func (s *stubClient) ListGroupRepos(_ context.Context, login string) ([]yuque.Repo, error) {
	s.login = login
	if err := s.record("ListGroupRepos"); err != nil {
		return nil, err
	}
	return []yuque.Repo{}, nil
}

func (s *stubClient) GetRepo(_ context.Context, repo yuque.Ref) (*yuque.Repo, error) {
	s.repo = repo
	if err := s.record("GetRepo"); err != nil {
		return nil, err
	}
	return &yuque.Repo{ID: 2, Namespace: string(repo)}, nil
}

func (s *stubClient) CreateUserRepo(_ context.Context, login string, data yuque.CreateRepoData) (*yuque.Repo, error) {
	s.login, s.createRepo = login, data
	if err := s.record("CreateUserRepo"); err != nil {
		return nil, err
	}
	return &yuque.Repo{ID: 3, Name: data.Name, Slug: data.Slug}, nil
}

func (s *stubClient) CreateGroupRepo(_ context.Context, login string, data yuque.CreateRepoData) (*yuque.Repo, error) {
	s.login, s.createRepo = login, data
	if err := s.record("CreateGroupRepo"); err != nil {
		return nil, err
	}
	return &yuque.Repo{ID: 4, Name: data.Name, Slug: data.Slug}, nil
}

func (s *stubClient) UpdateRepo(_ context.Context, repo yuque.Ref, data yuque.UpdateRepoData) (*yuque.Repo, error) {
	s.repo, s.updateRepo = repo, data
	if err := s.record("UpdateRepo"); err != nil {
		return nil, err
	}
	return &yuque.Repo{ID: 2}, nil
}

func (s *stubClient) DeleteRepo(_ context.Context, repo yuque.Ref) error {
	s.repo = repo
	return s.record("DeleteRepo")
}

func (s *stubClient) ListDocs(_ context.Context, repo yuque.Ref) ([]yuque.Doc, error) {
	s.repo = repo
	if err := s.record("ListDocs"); err != nil {
		return nil, err
	}
	return []yuque.Doc{{ID: 1, Title: "one", Body: "secret body"}}, nil
}

func (s *stubClient) GetDoc(_ context.Context, repo, doc yuque.Ref) (*yuque.Doc, error) {
	s.repo, s.doc = repo, doc
	if err := s.record("GetDoc"); err != nil {
		return nil, err
	}
	return &yuque.Doc{ID: 1, Title: "one", Body: "full body", BodyLake: "lake"}, nil
}

func (s *stubClient) CreateDoc(_ context.Context, repo yuque.Ref, data yuque.CreateDocData) (*yuque.Doc, error) {
	s.repo, s.createDoc = repo, data
	if err := s.record("CreateDoc"); err != nil {
		return nil, err
	}
	return &yuque.Doc{ID: 9, Title: data.Title}, nil
}

func (s *stubClient) UpdateDoc(_ context.Context, repo, doc yuque.Ref, data yuque.UpdateDocData) (*yuque.Doc, error) {
	s.repo, s.doc, s.updateDoc = repo, doc, data
	if err := s.record("UpdateDoc"); err != nil {
		return nil, err
	}
	return &yuque.Doc{ID: 9}, nil
}

func (s *stubClient) DeleteDoc(_ context.Context, repo, doc yuque.Ref) error {
	s.repo, s.doc = repo, doc
	return s.record("DeleteDoc")
}

func (s *stubClient) GetToc(_ context.Context, repo yuque.Ref) ([]yuque.TocItem, error) {
	s.repo = repo
	if err := s.record("GetToc"); err != nil {
		return nil, err
	}
	return []yuque.TocItem{{Title: "Intro", UUID: "u1", Visible: 1}}, nil
}

func (s *stubClient) UpdateToc(_ context.Context, repo yuque.Ref, tocData string) ([]yuque.TocItem, error) {
	s.repo, s.tocData = repo, tocData
	if err := s.record("UpdateToc"); err != nil {
		return nil, err
	}
	return []yuque.TocItem{}, nil
}

func (s *stubClient) ListDocVersions(_ context.Context, docID int64) ([]yuque.DocVersion, error) {
	s.id = docID
	if err := s.record("ListDocVersions"); err != nil {
		return nil, err
	}
	return []yuque.DocVersion{{ID: 1, DocID: docID, Body: "old"}}, nil
}

func (s *stubClient) GetDocVersion(_ context.Context, versionID int64) (*yuque.DocVersion, error) {
	s.id = versionID
	if err := s.record("GetDocVersion"); err != nil {
		return nil, err
	}
	return &yuque.DocVersion{ID: versionID, Body: "old"}, nil
}

func (s *stubClient) ListGroupMembers(_ context.Context, login string) ([]yuque.GroupMember, error) {
	s.login = login
	if err := s.record("ListGroupMembers"); err != nil {
		return nil, err
	}
	return []yuque.GroupMember{{ID: 1, UserID: 1, Role: yuque.RoleOwner}}, nil
}

func (s *stubClient) UpdateGroupMember(_ context.Context, login string, userID int64, role int) (*yuque.GroupMember, error) {
	s.login, s.id, s.role = login, userID, role
	if err := s.record("UpdateGroupMember"); err != nil {
		return nil, err
	}
	return &yuque.GroupMember{ID: 1, UserID: userID, Role: role}, nil
}

func (s *stubClient) RemoveGroupMember(_ context.Context, login string, userID int64) error {
	s.login, s.id = login, userID
	return s.record("RemoveGroupMember")
}

func (s *stubClient) GetGroupStats(_ context.Context, login string) (*yuque.GroupStatistics, error) {
	s.login = login
	if err := s.record("GetGroupStats"); err != nil {
		return nil, err
	}
	return &yuque.GroupStatistics{BooksCount: 2, DocsCount: 5}, nil
}

func (s *stubClient) GetGroupMemberStats(_ context.Context, login string) (any, error) {
	s.login = login
	if err := s.record("GetGroupMemberStats"); err != nil {
		return nil, err
	}
	return map[string]any{"members": []any{}}, nil
}

func (s *stubClient) GetGroupBookStats(_ context.Context, login string) (any, error) {
	s.login = login
	if err := s.record("GetGroupBookStats"); err != nil {
		return nil, err
	}
	return map[string]any{"books": []any{}}, nil
}

func (s *stubClient) GetGroupDocStats(_ context.Context, login string) (any, error) {
	s.login = login
	if err := s.record("GetGroupDocStats"); err != nil {
		return nil, err
	}
	return map[string]any{"docs": []any{}}, nil
}

func (s *stubClient) Hello(context.Context) (*yuque.Hello, error) {
	if err := s.record("Hello"); err != nil {
		return nil, err
	}
	return &yuque.Hello{Message: "hello"}, nil
}

var _ Client = (*stubClient)(nil)
