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

// StatsTools returns the group statistics tools.
func StatsTools() []Tool {
	login := func() *schema.Schema { return schema.MustNew(loginParam("Group login name")) }
	return []Tool{
		{
			Name:        global.ToolGroupStats,
			Description: "Get overall statistics for a group/team",
			Schema:      login(),
			Access:      ReadOnly,
			Handler:     groupStats,
		},
		{
			Name:        global.ToolGroupMemberStats,
			Description: "Get member statistics for a group/team",
			Schema:      login(),
			Access:      ReadOnly,
			Handler:     rawStats(Client.GetGroupMemberStats),
		},
		{
			Name:        global.ToolGroupBookStats,
			Description: "Get book/repo statistics for a group/team",
			Schema:      login(),
			Access:      ReadOnly,
			Handler:     rawStats(Client.GetGroupBookStats),
		},
		{
			Name:        global.ToolGroupDocStats,
			Description: "Get document statistics for a group/team",
			Schema:      login(),
			Access:      ReadOnly,
			Handler:     rawStats(Client.GetGroupDocStats),
		},
	}
}

func groupStats(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	stats, err := client.GetGroupStats(ctx, args.String("login"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromGroupStatistics(*stats))
}

// rawStats adapts a statistics endpoint whose payload is returned as decoded JSON.
func rawStats(fetch func(Client, context.Context, string) (any, error)) Handler {
	return func(ctx context.Context, client Client, args schema.Args) (*Result, error) {
		v, err := fetch(client, ctx, args.String("login"))
		if err != nil {
			return nil, err
		}
		return TextResult(v)
	}
}
