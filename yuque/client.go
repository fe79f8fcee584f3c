/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package yuque

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/logging"
)

// Client talks to the Yuque OpenAPI. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the overall per-request timeout of the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client authenticating with the given token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    global.DefaultBaseURL,
		token:      token,
		userAgent:  global.ProgramName + "/" + global.Version,
		httpClient: &http.Client{Timeout: global.DefaultRequestTimeout * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the wrapper around every successful response.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do executes one request and decodes the envelope's data into out. body may
// be nil, a string sent verbatim, or a value encoded as JSON. Every returned
// error is an *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return MapError(fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return MapError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugf("%s %s failed: %v", method, path, err)
		return MapError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return MapError(fmt.Errorf("failed to read response: %w", err))
	}
	c.logger.Debugf("%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := &ResponseError{StatusCode: resp.StatusCode, Body: data}
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil {
			re.APIMessage = apiErr.Message
		}
		return MapError(re)
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return MapError(fmt.Errorf("failed to decode response: %w", err))
	}
	if len(env.Data) == 0 {
		return MapError(fmt.Errorf("failed to decode response: missing data field"))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return MapError(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// User

// GetUser returns the account that owns the token.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/user", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListGroups returns the groups a user belongs to.
func (c *Client) ListGroups(ctx context.Context, userID int64) ([]Group, error) {
	var groups []Group
	path := "/users/" + strconv.FormatInt(userID, 10) + "/groups"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Search

// Search runs a server-side search. searchType may be empty.
func (c *Client) Search(ctx context.Context, query, searchType string) (*SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	if searchType != "" {
		q.Set("type", searchType)
	}
	var result SearchResult
	if err := c.do(ctx, http.MethodGet, "/search", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Repos

// ListUserRepos returns the repos owned by a user.
func (c *Client) ListUserRepos(ctx context.Context, login string) ([]Repo, error) {
	return c.listRepos(ctx, "/users/"+url.PathEscape(login)+"/repos")
}

// ListGroupRepos returns the repos owned by a group.
func (c *Client) ListGroupRepos(ctx context.Context, login string) ([]Repo, error) {
	return c.listRepos(ctx, "/groups/"+url.PathEscape(login)+"/repos")
}

func (c *Client) listRepos(ctx context.Context, path string) ([]Repo, error) {
	var repos []Repo
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepo returns a repo by id or namespace.
func (c *Client) GetRepo(ctx context.Context, repo Ref) (*Repo, error) {
	return c.repoCall(ctx, http.MethodGet, "/repos/"+repo.path(), nil)
}

// CreateUserRepo creates a repo owned by a user.
func (c *Client) CreateUserRepo(ctx context.Context, login string, data CreateRepoData) (*Repo, error) {
	return c.repoCall(ctx, http.MethodPost, "/users/"+url.PathEscape(login)+"/repos", data)
}

// CreateGroupRepo creates a repo owned by a group.
func (c *Client) CreateGroupRepo(ctx context.Context, login string, data CreateRepoData) (*Repo, error) {
	return c.repoCall(ctx, http.MethodPost, "/groups/"+url.PathEscape(login)+"/repos", data)
}

// UpdateRepo changes the given fields of a repo.
func (c *Client) UpdateRepo(ctx context.Context, repo Ref, data UpdateRepoData) (*Repo, error) {
	return c.repoCall(ctx, http.MethodPut, "/repos/"+repo.path(), data)
}

// DeleteRepo deletes a repo.
func (c *Client) DeleteRepo(ctx context.Context, repo Ref) error {
	return c.do(ctx, http.MethodDelete, "/repos/"+repo.path(), nil, nil, nil)
}

func (c *Client) repoCall(ctx context.Context, method, path string, body any) (*Repo, error) {
	var r Repo
	if err := c.do(ctx, method, path, nil, body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Docs

// ListDocs returns the docs of a repo.
func (c *Client) ListDocs(ctx context.Context, repo Ref) ([]Doc, error) {
	var docs []Doc
	if err := c.do(ctx, http.MethodGet, "/repos/"+repo.path()+"/docs", nil, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDoc returns a doc with its body.
func (c *Client) GetDoc(ctx context.Context, repo, doc Ref) (*Doc, error) {
	return c.docCall(ctx, http.MethodGet, docPath(repo, doc), nil)
}

// CreateDoc creates a doc in a repo.
func (c *Client) CreateDoc(ctx context.Context, repo Ref, data CreateDocData) (*Doc, error) {
	return c.docCall(ctx, http.MethodPost, "/repos/"+repo.path()+"/docs", data)
}

// UpdateDoc changes the given fields of a doc.
func (c *Client) UpdateDoc(ctx context.Context, repo, doc Ref, data UpdateDocData) (*Doc, error) {
	return c.docCall(ctx, http.MethodPut, docPath(repo, doc), data)
}

// DeleteDoc deletes a doc.
func (c *Client) DeleteDoc(ctx context.Context, repo, doc Ref) error {
	return c.do(ctx, http.MethodDelete, docPath(repo, doc), nil, nil, nil)
}

func (c *Client) docCall(ctx context.Context, method, path string, body any) (*Doc, error) {
	var d Doc
	if err := c.do(ctx, method, path, nil, body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func docPath(repo, doc Ref) string {
	return "/repos/" + repo.path() + "/docs/" + doc.path()
}

// TOC

// GetToc returns the navigation tree of a repo.
func (c *Client) GetToc(ctx context.Context, repo Ref) ([]TocItem, error) {
	return c.tocCall(ctx, http.MethodGet, repo, nil)
}

// UpdateToc replaces the navigation tree of a repo. tocData is sent as the
// request body without modification.
func (c *Client) UpdateToc(ctx context.Context, repo Ref, tocData string) ([]TocItem, error) {
	return c.tocCall(ctx, http.MethodPut, repo, tocData)
}

func (c *Client) tocCall(ctx context.Context, method string, repo Ref, body any) ([]TocItem, error) {
	var items []TocItem
	if err := c.do(ctx, method, "/repos/"+repo.path()+"/toc", nil, body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Versions

// ListDocVersions returns the version history of a doc.
func (c *Client) ListDocVersions(ctx context.Context, docID int64) ([]DocVersion, error) {
	q := url.Values{}
	q.Set("doc_id", strconv.FormatInt(docID, 10))
	var versions []DocVersion
	if err := c.do(ctx, http.MethodGet, "/doc_versions", q, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetDocVersion returns one version including its body.
func (c *Client) GetDocVersion(ctx context.Context, versionID int64) (*DocVersion, error) {
	var v DocVersion
	if err := c.do(ctx, http.MethodGet, "/doc_versions/"+strconv.FormatInt(versionID, 10), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Groups

// ListGroupMembers returns the members of a group.
func (c *Client) ListGroupMembers(ctx context.Context, login string) ([]GroupMember, error) {
	var members []GroupMember
	if err := c.do(ctx, http.MethodGet, groupPath(login, "/users"), nil, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateGroupMember sets a member's role.
func (c *Client) UpdateGroupMember(ctx context.Context, login string, userID int64, role int) (*GroupMember, error) {
	var m GroupMember
	path := groupPath(login, "/users/"+strconv.FormatInt(userID, 10))
	if err := c.do(ctx, http.MethodPut, path, nil, UpdateMemberData{Role: role}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveGroupMember removes a user from a group.
func (c *Client) RemoveGroupMember(ctx context.Context, login string, userID int64) error {
	return c.do(ctx, http.MethodDelete, groupPath(login, "/users/"+strconv.FormatInt(userID, 10)), nil, nil, nil)
}

// Statistics

// GetGroupStats returns the statistics summary of a group.
func (c *Client) GetGroupStats(ctx context.Context, login string) (*GroupStatistics, error) {
	var s GroupStatistics
	if err := c.do(ctx, http.MethodGet, groupPath(login, "/statistics"), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetGroupMemberStats returns per-member statistics as decoded JSON.
func (c *Client) GetGroupMemberStats(ctx context.Context, login string) (any, error) {
	return c.rawStats(ctx, login, "/statistics/members")
}

// GetGroupBookStats returns per-repo statistics as decoded JSON.
func (c *Client) GetGroupBookStats(ctx context.Context, login string) (any, error) {
	return c.rawStats(ctx, login, "/statistics/books")
}

// GetGroupDocStats returns per-doc statistics as decoded JSON.
func (c *Client) GetGroupDocStats(ctx context.Context, login string) (any, error) {
	return c.rawStats(ctx, login, "/statistics/docs")
}

func (c *Client) rawStats(ctx context.Context, login, suffix string) (any, error) {
	var v any
	if err := c.do(ctx, http.MethodGet, groupPath(login, suffix), nil, nil, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func groupPath(login, suffix string) string {
	return "/groups/" + url.PathEscape(login) + suffix
}

// Hello checks connectivity and credentials.
func (c *Client) Hello(ctx context.Context) (*Hello, error) {
	var h Hello
	if err := c.do(ctx, http.MethodGet, "/hello", nil, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
