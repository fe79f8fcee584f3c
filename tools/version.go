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

// VersionTools returns the doc history tools and the connectivity check.
func VersionTools() []Tool {
	return []Tool{
		{
			Name:        global.ToolListDocVersions,
			Description: "List all versions of a document",
			Schema: schema.MustNew(
				schema.Param{Name: "doc_id", Type: schema.Integer, Description: "Document ID", Required: true},
			),
			Access:  ReadOnly,
			Handler: listDocVersions,
		},
		{
			Name:        global.ToolGetDocVersion,
			Description: "Get a specific version of a document",
			Schema: schema.MustNew(
				schema.Param{Name: "version_id", Type: schema.Integer, Description: "Version ID", Required: true},
			),
			Access:  ReadOnly,
			Handler: getDocVersion,
		},
		{
			Name:        global.ToolHello,
			Description: "Test API connectivity with Yuque",
			Schema:      schema.MustNew(),
			Access:      ReadOnly,
			Handler:     hello,
		},
	}
}

func listDocVersions(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	versions, err := client.ListDocVersions(ctx, args.Int("doc_id"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.Map(versions, normalize.FromDocVersionSummary))
}

func getDocVersion(ctx context.Context, client Client, args schema.Args) (*Result, error) {
	version, err := client.GetDocVersion(ctx, args.Int("version_id"))
	if err != nil {
		return nil, err
	}
	return TextResult(normalize.FromDocVersion(*version))
}

func hello(ctx context.Context, client Client, _ schema.Args) (*Result, error) {
	h, err := client.Hello(ctx)
	if err != nil {
		return nil, err
	}
	return TextResult(h)
}
