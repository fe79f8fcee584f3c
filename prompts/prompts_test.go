/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package prompts

import (
	"strings"
	"testing"

	"github.com/PivotLLM/yuque-mcp/global"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	all := r.All()
	if len(all) != 6 {
		t.Fatalf("expected 6 prompts, got %d", len(all))
	}
	if all[0].Name != global.PromptSmartSearch || all[5].Name != global.PromptKnowledgeReport {
		t.Errorf("unexpected order: %s ... %s", all[0].Name, all[5].Name)
	}
	for _, p := range all {
		if p.Description == "" || len(p.Arguments) == 0 {
			t.Errorf("%s is incomplete", p.Name)
		}
	}
}

func TestPromptsNameTheirTools(t *testing.T) {
	tests := []struct {
		name  string
		args  map[string]string
		tools []string
	}{
		{global.PromptSmartSearch, map[string]string{"query": "q"}, []string{global.ToolSearch, global.ToolGetDoc}},
		{global.PromptMeetingNotes, map[string]string{"content": "c", "repo_id": "r"}, []string{global.ToolCreateDoc}},
		{global.PromptWeeklyReport, map[string]string{"login": "l", "repo_id": "r"}, []string{global.ToolGroupDocStats, global.ToolGroupMemberStats, global.ToolCreateDoc}},
		{global.PromptTechDesign, map[string]string{"title": "t", "requirements": "q", "repo_id": "r"}, []string{global.ToolCreateDoc}},
		{global.PromptOnboardingGuide, map[string]string{"login": "l", "repo_id": "r"}, []string{global.ToolListRepos, global.ToolGetToc, global.ToolCreateDoc}},
		{global.PromptKnowledgeReport, map[string]string{"login": "l", "repo_id": "r"}, []string{global.ToolGroupStats, global.ToolGroupMemberStats, global.ToolGroupBookStats, global.ToolGroupDocStats, global.ToolCreateDoc}},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.Lookup(tt.name)
			if !ok {
				t.Fatalf("prompt %s missing", tt.name)
			}
			if missing := p.MissingArgument(tt.args); missing != "" {
				t.Fatalf("unexpected missing argument %s", missing)
			}
			msgs, err := p.Messages(tt.args)
			if err != nil {
				t.Fatalf("Messages: %v", err)
			}
			if len(msgs) != 1 || msgs[0].Role != RoleUser || msgs[0].Content.Type != "text" {
				t.Fatalf("unexpected messages: %+v", msgs)
			}
			text := msgs[0].Content.Text
			last := -1
			for _, tool := range tt.tools {
				i := strings.Index(text, tool)
				if i < 0 {
					t.Errorf("tool %s not mentioned", tool)
					continue
				}
				if i < last {
					t.Errorf("tool %s out of order", tool)
				}
				last = i
			}
		})
	}
}

func TestArgumentsAreInsertedVerbatim(t *testing.T) {
	p, _ := Default().Lookup(global.PromptTechDesign)
	title := `<Cache & "Queue"> {{.x}}`
	msgs, err := p.Messages(map[string]string{"title": title, "requirements": "line1\nline2", "repo_id": "team/designs"})
	if err != nil {
		t.Fatal(err)
	}
	text := msgs[0].Content.Text
	for _, want := range []string{title, "line1\nline2", `"team/designs"`, "Technical Design - " + title} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q", want)
		}
	}
}

func TestMissingArgument(t *testing.T) {
	p, _ := Default().Lookup(global.PromptMeetingNotes)
	if got := p.MissingArgument(map[string]string{"repo_id": "r"}); got != "content" {
		t.Errorf("missing = %q, want content", got)
	}
	if got := p.MissingArgument(nil); got != "content" {
		t.Errorf("first declared required argument should be reported, got %q", got)
	}
}

func TestNewRegistryErrors(t *testing.T) {
	if _, err := NewRegistry(smartSearch, smartSearch); err == nil {
		t.Error("expected duplicate error")
	}
	if _, err := NewRegistry(Definition{Name: "bad", Template: "{{.x"}); err == nil {
		t.Error("expected template error")
	}
	if _, err := NewRegistry(Definition{}); err == nil {
		t.Error("expected empty name error")
	}
}
