/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

//goland:noinspection GoCommentStart
const (
	// Configuration constants
	ConfigEnvVar          = "YUQUE_MCP_CONFIG"
	DefaultBaseDir        = "~/.yuque-mcp"
	DefaultConfigFileName = "config.json"
	DefaultBaseURL        = "https://www.yuque.com/api/v2"
	DefaultHTTPPort       = 3000
	DefaultHTTPEndpoint   = "/mcp"
	DefaultRequestTimeout = 30 // seconds
	MaxRequestTimeout     = 600

	// Credential environment variables, in order of precedence
	EnvPersonalToken = "YUQUE_PERSONAL_TOKEN"
	EnvGroupToken    = "YUQUE_GROUP_TOKEN"
	EnvToken         = "YUQUE_TOKEN"
	EnvBaseURL       = "YUQUE_BASE_URL"
	EnvPort          = "PORT"

	// Transport types
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	// MCP Tool Names - User
	ToolGetUser    = "yuque_get_user"
	ToolListGroups = "yuque_list_groups"

	// MCP Tool Names - Repo
	ToolListRepos  = "yuque_list_repos"
	ToolGetRepo    = "yuque_get_repo"
	ToolCreateRepo = "yuque_create_repo"
	ToolUpdateRepo = "yuque_update_repo"
	ToolDeleteRepo = "yuque_delete_repo"

	// MCP Tool Names - Doc
	ToolListDocs  = "yuque_list_docs"
	ToolGetDoc    = "yuque_get_doc"
	ToolCreateDoc = "yuque_create_doc"
	ToolUpdateDoc = "yuque_update_doc"
	ToolDeleteDoc = "yuque_delete_doc"

	// MCP Tool Names - TOC
	ToolGetToc    = "yuque_get_toc"
	ToolUpdateToc = "yuque_update_toc"

	// MCP Tool Names - Search
	ToolSearch = "yuque_search"

	// MCP Tool Names - Group
	ToolListGroupMembers  = "yuque_list_group_members"
	ToolUpdateGroupMember = "yuque_update_group_member"
	ToolRemoveGroupMember = "yuque_remove_group_member"

	// MCP Tool Names - Statistics
	ToolGroupStats       = "yuque_group_stats"
	ToolGroupMemberStats = "yuque_group_member_stats"
	ToolGroupBookStats   = "yuque_group_book_stats"
	ToolGroupDocStats    = "yuque_group_doc_stats"

	// MCP Tool Names - Versions and connectivity
	ToolListDocVersions = "yuque_list_doc_versions"
	ToolGetDocVersion   = "yuque_get_doc_version"
	ToolHello           = "yuque_hello"

	// MCP Prompt Names
	PromptSmartSearch     = "smart-search"
	PromptMeetingNotes    = "meeting-notes"
	PromptWeeklyReport    = "weekly-report"
	PromptTechDesign      = "tech-design"
	PromptOnboardingGuide = "onboarding-guide"
	PromptKnowledgeReport = "knowledge-report"

	// Status strings returned by destructive tools
	StatusRepoDeleted   = "Repo deleted successfully"
	StatusDocDeleted    = "Document deleted successfully"
	StatusMemberRemoved = "Group member removed successfully"

	// Log Levels
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
	LogLevelFatal = "FATAL"
)
