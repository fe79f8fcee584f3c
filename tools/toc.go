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

// TocTools returns the table-of-contents tools.
func TocTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolGetToc,
			Description: "Get the table of contents (TOC) for a repo/book",
			Schema:      schema.MustNew(repoIDParam()),
			Access:      ReadOnly,
			Handler:     getToc,
		},
		{
			Name:        global.ToolUpdateToc,
			Description: "Update the table of contents (TOC) for a repo/book",
			Schema: schema.MustNew(
				repoIDParam(),
				schema.Param{Name: "toc_data", Type: schema.String, Description: "TOC data as JSON string", Required: true},
			),
			Access:  Write,
			Handler: updateToc,
		},
	}
}

func getToc(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	items, err := client.GetToc(ctx, yuque.RefFrom(args.Value("repo_id")))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(items, normalize.FromTocItem))
}

func updateToc(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	items, err := client.UpdateToc(ctx, yuque.RefFrom(args.Value("repo_id")), args.String("toc_data"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(items, normalize.FromTocItem))
}
