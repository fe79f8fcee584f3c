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
)

// SearchTools returns the search tool.
func SearchTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolSearch,
			Description: "Search for documents, repos, or users in Yuque",
			Schema: schema.MustNew(
				schema.Param{Name: "query", Type: schema.String, Description: "Search query string", Required: true},
				schema.Param{Name: "type", Type: schema.String, Description: "Search type: doc, repo, user (optional)", Enum: []any{"doc", "repo", "user"}},
			),
			Access:  ReadOnly,
			Handler: search,
		},
	}
}

func search(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	result, err := client.Search(ctx, args.String("query"), args.String("type"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromSearch(*result))
}
