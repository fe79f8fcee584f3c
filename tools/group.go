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

// GroupTools returns the group membership tools.
func GroupTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolListGroupMembers,
			Description: "List all members of a group/team",
			Schema:      schema.MustNew(loginParam("Group login name")),
			Access:      ReadOnly,
			Handler:     listGroupMembers,
		},
		{
			Name:        global.ToolUpdateGroupMember,
			Description: "Update a group member role",
			Schema: schema.MustNew(
				loginParam("Group login name"),
				schema.Param{Name: "user_id", Type: schema.Integer, Description: "User ID to update", Required: true},
				schema.Param{Name: "role", Type: schema.Integer, Description: "Role: 0 (member), 1 (admin), 2 (owner)", Required: true,
					Enum: []any{yuque.RoleMember, yuque.RoleAdmin, yuque.RoleOwner}},
			),
			Access:  Write,
			Handler: updateGroupMember,
		},
		{
			Name:        global.ToolRemoveGroupMember,
			Description: "Remove a member from a group/team",
			Schema: schema.MustNew(
				loginParam("Group login name"),
				schema.Param{Name: "user_id", Type: schema.Integer, Description: "User ID to remove", Required: true},
			),
			Access:  Destructive,
			Handler: removeGroupMember,
		},
	}
}

func listGroupMembers(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	members, err := client.ListGroupMembers(ctx, args.String("login"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(members, normalize.FromGroupMember))
}

func updateGroupMember(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	member, err := client.UpdateGroupMember(ctx, args.String("login"), args.Int("user_id"), int(args.Int("role")))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromGroupMember(*member))
}

func removeGroupMember(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	if err := client.RemoveGroupMember(ctx, args.String("login"), args.Int("user_id")); err != nil {
		return nil, err
	}
	return StatusResult(global.StatusMemberRemoved), nil
}
