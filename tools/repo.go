/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package tools

import (
	"context"

	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/normalize"
	"github.com/PivotLLM/yuque-mcp/schema"
	"github.com/PivotLLM/yuque-mcp/yuque"
)

const (
	ownerUser  = "user"
	ownerGroup = "group"
)

func ownerTypeParam() schema.Param {
	return schema.Param{Name: "type", Type: schema.String, Description: "Type: user or group", Required: true, Enum: []any{ownerUser, ownerGroup}}
}

func idOrNamespaceParam() schema.Param {
	return schema.Param{Name: "id_or_namespace", Type: schema.StringOrNumber, Description: "Repo ID or namespace (e.g. \"mygroup/mybook\")", Required: true}
}

// RepoTools returns the repo (book) tools.
func RepoTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolListRepos,
			Description: "List all repos/books for a user or group",
			Schema:      schema.MustNew(loginParam("User or group login name"), ownerTypeParam()),
			Access:      ReadOnly,
			Handler:     listRepos,
		},
		{
			Name:        global.ToolGetRepo,
			Description: "Get a specific repo/book by ID or namespace (group_login/book_slug)",
			Schema:      schema.MustNew(idOrNamespaceParam()),
			Access:      ReadOnly,
			Handler:     getRepo,
		},
		{
			Name:        global.ToolCreateRepo,
			Description: "Create a new repo/book for a user or group",
			Schema: schema.MustNew(
				loginParam("User or group login name"),
				ownerTypeParam(),
				schema.Param{Name: "name", Type: schema.String, Description: "Repo name", Required: true},
				schema.Param{Name: "slug", Type: schema.String, Description: "Repo slug (URL-friendly identifier)", Required: true},
				schema.Param{Name: "description", Type: schema.String, Description: "Repo description"},
				publicParam("Public visibility: 0 (private) or 1 (public)"),
				schema.Param{Name: "repo_type", Type: schema.String, Description: "Repo type: Book, Design, etc."},
			),
			Access:  Write,
			Handler: createRepo,
		},
		{
			Name:        global.ToolUpdateRepo,
			Description: "Update a repo/book",
			Schema: schema.MustNew(
				idOrNamespaceParam(),
				schema.Param{Name: "name", Type: schema.String, Description: "New repo name"},
				schema.Param{Name: "slug", Type: schema.String, Description: "New repo slug"},
				schema.Param{Name: "description", Type: schema.String, Description: "New repo description"},
				publicParam("Public visibility: 0 (private) or 1 (public)"),
			),
			Access:  Write,
			Handler: updateRepo,
		},
		{
			Name:        global.ToolDeleteRepo,
			Description: "Delete a repo/book",
			Schema:      schema.MustNew(idOrNamespaceParam()),
			Access:      Destructive,
			Handler:     deleteRepo,
		},
	}
}

func listRepos(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	var repos []yuque.Repo
	var err error
	if args.String("type") == ownerGroup {
		repos, err = client.ListGroupRepos(ctx, args.String("login"))
	} else {
		repos, err = client.ListUserRepos(ctx, args.String("login"))
	}
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(repos, normalize.FromRepo))
}

func getRepo(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	repo, err := client.GetRepo(ctx, yuque.RefFrom(args.Value("id_or_namespace")))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromRepo(*repo))
}

func createRepo(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	data := yuque.CreateRepoData{
		Name:        args.String("name"),
		Slug:        args.String("slug"),
		Description: args.OptString("description"),
		Public:      args.OptInt("public"),
		Type:        args.OptString("repo_type"),
	}

	var repo *yuque.Repo
	var err error
	if args.String("type") == ownerGroup {
		repo, err = client.CreateGroupRepo(ctx, args.String("login"), data)
	} else {
		repo, err = client.CreateUserRepo(ctx, args.String("login"), data)
	}
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromRepo(*repo))
}

func updateRepo(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	data := yuque.UpdateRepoData{
		Name:        args.OptString("name"),
		Slug:        args.OptString("slug"),
		Description: args.OptString("description"),
		Public:      args.OptInt("public"),
	}
	repo, err := client.UpdateRepo(ctx, yuque.RefFrom(args.Value("id_or_namespace")), data)
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromRepo(*repo))
}

func deleteRepo(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	if err := client.DeleteRepo(ctx, yuque.RefFrom(args.Value("id_or_namespace"))); err != nil {
		return nil, err
	}
	return StatusResult(global.StatusRepoDeleted), nil
}
