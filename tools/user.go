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

// UserTools returns the account tools.
func UserTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolGetUser,
			Description: "Get current authenticated user information",
			Schema:      schema.MustNew(),
			Access:      ReadOnly,
			Handler:     getUser,
		},
		{
			Name:        global.ToolListGroups,
			Description: "List all groups/teams that the user belongs to",
			Schema: schema.MustNew(
				schema.Param{Name: "user_id", Type: schema.Integer, Description: "User ID to list groups for", Required: true},
			),
			Access:  ReadOnly,
			Handler: listGroups,
		},
	}
}

func getUser(ctx context.Context, client Client, _ schema.Args) (*Result, error) {
	user, err := client.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromUser(*user))
}

func listGroups(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	groups, err := client.ListGroups(ctx, args.Int("user_id"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(groups, normalize.FromGroup))
}
