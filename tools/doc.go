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

// DocTools returns the document tools.
func DocTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolListDocs,
			Description: "List all documents in a repo/book",
			Schema:      schema.MustNew(repoIDParam()),
			Access:      ReadOnly,
			Handler:     listDocs,
		},
		{
			Name:        global.ToolGetDoc,
			Description: "Get a specific document with full content",
			Schema:      schema.MustNew(repoIDParam(), docIDParam()),
			Access:      ReadOnly,
			Handler:     getDoc,
		},
		{
			Name:        global.ToolCreateDoc,
			Description: "Create a new document in a repo/book",
			Schema: schema.MustNew(
				repoIDParam(),
				schema.Param{Name: "title", Type: schema.String, Description: "Document title", Required: true},
				schema.Param{Name: "slug", Type: schema.String, Description: "Document slug (URL-friendly identifier)"},
				schema.Param{Name: "body", Type: schema.String, Description: "Document content (markdown or lake format)"},
				schema.Param{Name: "format", Type: schema.String, Description: "Content format: markdown, lake, html", Enum: []any{"markdown", "lake", "html"}},
				publicParam("Public visibility: 0 (private) or 1 (public)"),
			),
			Access:  Write,
			Handler: createDoc,
		},
		{
			Name:        global.ToolUpdateDoc,
			Description: "Update an existing document",
			Schema: schema.MustNew(
				repoIDParam(),
				docIDParam(),
				schema.Param{Name: "title", Type: schema.String, Description: "New document title"},
				schema.Param{Name: "slug", Type: schema.String, Description: "New document slug"},
				schema.Param{Name: "body", Type: schema.String, Description: "New document content"},
				publicParam("Public visibility: 0 (private) or 1 (public)"),
			),
			Access:  Write,
			Handler: updateDoc,
		},
		{
			Name:        global.ToolDeleteDoc,
			Description: "Delete a document",
			Schema:      schema.MustNew(repoIDParam(), docIDParam()),
			Access:      Destructive,
			Handler:     deleteDoc,
		},
	}
}

func refs(args schema.Args) (repo, doc yuque.Ref) {
	return yuque.RefFrom(args.Value("repo_id")), yuque.RefFrom(args.Value("doc_id"))
}

func listDocs(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	docs, err := client.ListDocs(ctx, yuque.RefFrom(args.Value("repo_id")))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(docs, normalize.FromDocSummary))
}

func getDoc(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	repo, doc := refs(args)
	d, err := client.GetDoc(ctx, repo, doc)
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromDoc(*d))
}

func createDoc(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	data := yuque.CreateDocData{
		Title:  args.String("title"),
		Slug:   args.OptString("slug"),
		Body:   args.OptString("body"),
		Format: args.OptString("format"),
		Public: args.OptInt("public"),
	}
	d, err := client.CreateDoc(ctx, yuque.RefFrom(args.Value("repo_id")), data)
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromDoc(*d))
}

func updateDoc(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	repo, doc := refs(args)
	data := yuque.UpdateDocData{
		Title:  args.OptString("title"),
		Slug:   args.OptString("slug"),
		Body:   args.OptString("body"),
		Public: args.OptInt("public"),
	}
	d, err := client.UpdateDoc(ctx, repo, doc, data)
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromDoc(*d))
}

func deleteDoc(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	repo, doc := refs(args)
	if err := client.DeleteDoc(ctx, repo, doc); err != nil {
		return nil, err
	}
	return StatusResult(global.StatusDocDeleted), nil
}
