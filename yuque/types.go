/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package yuque

// User is a Yuque account.
type User struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Login            string `json:"login"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	AvatarURL        string `json:"avatar_url"`
	BooksCount       int    `json:"books_count"`
	PublicBooksCount int    `json:"public_books_count"`
	FollowersCount   int    `json:"followers_count"`
	FollowingCount   int    `json:"following_count"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// Group is a team that owns repos and has members.
type Group struct {
	ID               int64  `json:"id"`
	Login            string `json:"login"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	AvatarURL        string `json:"avatar_url"`
	BooksCount       int    `json:"books_count"`
	PublicBooksCount int    `json:"public_books_count"`
	MembersCount     int    `json:"members_count"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// Repo is a namespaced collection of documents (a "book").
type Repo struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	Namespace        string `json:"namespace"`
	UserID           int64  `json:"user_id"`
	User             *User  `json:"user,omitempty"`
	Description      string `json:"description"`
	CreatorID        int64  `json:"creator_id"`
	Public           int    `json:"public"` // 1 = public, 0 = private
	ItemsCount       int    `json:"items_count"`
	LikesCount       int    `json:"likes_count"`
	WatchesCount     int    `json:"watches_count"`
	ContentUpdatedAt string `json:"content_updated_at"`
	UpdatedAt        string `json:"updated_at"`
	CreatedAt        string `json:"created_at"`
}

// Doc is a single document belonging to one repo.
type Doc struct {
	ID               int64   `json:"id"`
	Slug             string  `json:"slug"`
	Title            string  `json:"title"`
	BookID           int64   `json:"book_id"`
	Book             *Repo   `json:"book,omitempty"`
	UserID           int64   `json:"user_id"`
	User             *User   `json:"user,omitempty"`
	Format           string  `json:"format"`
	Body             string  `json:"body"`
	BodyDraft        string  `json:"body_draft"`
	BodyHTML         string  `json:"body_html"`
	BodyLake         string  `json:"body_lake"`
	CreatorID        int64   `json:"creator_id"`
	Public           int     `json:"public"` // 1 = public, 0 = private
	Status           int     `json:"status"`
	LikesCount       int     `json:"likes_count"`
	CommentsCount    int     `json:"comments_count"`
	ContentUpdatedAt string  `json:"content_updated_at"`
	DeletedAt        *string `json:"deleted_at"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	PublishedAt      string  `json:"published_at"`
	FirstPublishedAt string  `json:"first_published_at"`
	WordCount        int     `json:"word_count"`
	Cover            *string `json:"cover"`
	Description      string  `json:"description"`
}

// TocItem is one node of a repo's navigation tree. Nodes reference each
// other by UUID.
type TocItem struct {
	Title       string `json:"title"`
	UUID        string `json:"uuid"`
	URL         string `json:"url"`
	PrevUUID    string `json:"prev_uuid"`
	SiblingUUID string `json:"sibling_uuid"`
	ChildUUID   string `json:"child_uuid"`
	ParentUUID  string `json:"parent_uuid"`
	DocID       int64  `json:"doc_id"`
	Level       int    `json:"level"`
	ID          int64  `json:"id"`
	OpenWindow  int    `json:"open_window"`
	Visible     int    `json:"visible"`
}

// SearchBook is the repo reference embedded in a search hit.
type SearchBook struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// SearchItem is a single search hit.
type SearchItem struct {
	ID        int64       `json:"id"`
	Type      string      `json:"type"`
	Title     string      `json:"title"`
	URL       string      `json:"url"`
	Body      string      `json:"body"`
	Book      *SearchBook `json:"book,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// SearchResult is the payload of the search endpoint.
type SearchResult struct {
	Items []SearchItem `json:"items"`
	Total int          `json:"total"`
}

// DocVersion is an immutable snapshot of a doc.
type DocVersion struct {
	ID        int64  `json:"id"`
	DocID     int64  `json:"doc_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	BodyDraft string `json:"body_draft"`
	Format    string `json:"format"`
	UserID    int64  `json:"user_id"`
	User      *User  `json:"user,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Group member roles.
const (
	RoleMember = 0
	RoleAdmin  = 1
	RoleOwner  = 2
)

// GroupMember is a user's membership in a group.
type GroupMember struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	UserID    int64  `json:"user_id"`
	User      *User  `json:"user,omitempty"`
	Role      int    `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// GroupStatistics is the overall statistics summary of a group.
type GroupStatistics struct {
	BooksCount       int `json:"books_count"`
	DocsCount        int `json:"docs_count"`
	MembersCount     int `json:"members_count"`
	PublicBooksCount int `json:"public_books_count"`
	PublicDocsCount  int `json:"public_docs_count"`
}

// Hello is the payload of the connectivity endpoint.
type Hello struct {
	Message string `json:"message"`
}

// CreateRepoData is the request body for creating a repo.
type CreateRepoData struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Public      *int    `json:"public,omitempty"`
	Type        *string `json:"type,omitempty"`
}

// UpdateRepoData is the request body for updating a repo. Nil fields are left unchanged.
type UpdateRepoData struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Public      *int    `json:"public,omitempty"`
}

// CreateDocData is the request body for creating a doc.
type CreateDocData struct {
	Title  string  `json:"title"`
	Slug   *string `json:"slug,omitempty"`
	Body   *string `json:"body,omitempty"`
	Format *string `json:"format,omitempty"`
	Public *int    `json:"public,omitempty"`
}

// UpdateDocData is the request body for updating a doc. Nil fields are left unchanged.
type UpdateDocData struct {
	Title  *string `json:"title,omitempty"`
	Slug   *string `json:"slug,omitempty"`
	Body   *string `json:"body,omitempty"`
	Public *int    `json:"public,omitempty"`
}

// UpdateMemberData is the request body for changing a member's role.
type UpdateMemberData struct {
	Role int `json:"role"`
}
