/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package prompts

import (
	"github.com/PivotLLM/yuque-mcp/global"
)

// Definitions returns the built-in prompt declarations in display order.
func Definitions() []Definition {
	return []Definition{
		smartSearch,
		meetingNotes,
		weeklyReport,
		techDesign,
		onboardingGuide,
		knowledgeReport,
	}
}

var smartSearch = Definition{
	Name:        global.PromptSmartSearch,
	Description: "Smart search and Q&A - search Yuque docs in natural language and summarize the key points",
	Arguments: []Argument{
		{Name: "query", Description: "Search keywords or question", Required: true},
	},
	Template: `Please search Yuque and answer the following question: "{{.query}}"

Follow these steps:

1. **Search documents**: call the yuque_search tool with query "{{.query}}" and type "doc".
2. **Filter results**: pick the 1-3 most relevant documents from the search results.
3. **Read content**: for each relevant document, call the yuque_get_doc tool to fetch its full content.
4. **Summarize**: answer the question in a clear, structured format based on the documents.

Output requirements:
- Start with a short direct answer
- Then list the key points as bullet points
- Finish with the titles and links of the referenced documents
- If the search finds nothing relevant, say so plainly`,
}

var meetingNotes = Definition{
	Name:        global.PromptMeetingNotes,
	Description: "Meeting notes archive - turn raw meeting content into minutes and file them in a Yuque repo",
	Arguments: []Argument{
		{Name: "content", Description: "Meeting content (raw notes or key points)", Required: true},
		{Name: "repo_id", Description: "Target repo ID or namespace (e.g. \"mygroup/meeting-notes\")", Required: true},
	},
	Template: `Please turn the following meeting content into standard meeting minutes and file them in a Yuque repo.

## Raw meeting content
{{.content}}

## Steps

1. **Format**: organize the content above into standard meeting minutes with these sections:
   - Meeting details (date, time, location or channel)
   - Attendees
   - Agenda
   - Discussion points (grouped by agenda item)
   - Decisions
   - Action items (with owner and due date)
   - Notes

2. **Create the document**: call the yuque_create_doc tool to create the minutes in repo "{{.repo_id}}".
   - title: use the format "Meeting Notes - YYYY-MM-DD - Topic"
   - body: the formatted markdown content
   - format: "markdown"

Output requirements:
- Use Markdown
- Write action items as checkboxes (- [ ])
- Keep the language concise and professional
- After creation, report the document title and link`,
}

var weeklyReport = Definition{
	Name:        global.PromptWeeklyReport,
	Description: "Weekly report - generate a team weekly report from this week's data",
	Arguments: []Argument{
		{Name: "login", Description: "Team login name", Required: true},
		{Name: "repo_id", Description: "Repo ID or namespace where the report is stored", Required: true},
	},
	Template: `Please generate this week's report for team "{{.login}}" and save it to a Yuque repo.

## Steps

1. **Document statistics**: call the yuque_group_doc_stats tool with login "{{.login}}" to get this week's document creation and update data.
2. **Member statistics**: call the yuque_group_member_stats tool with login "{{.login}}" to get member activity data.
3. **Write the report**: based on the data above, produce a structured report with:
   - Overview (summary of key numbers)
   - Document activity (new, updated and popular documents)
   - Member contributions (most active members, highlights)
   - Trends (compared with last week)
   - Suggestions for next week
4. **Create the document**: call the yuque_create_doc tool to save the report in repo "{{.repo_id}}".
   - title: use the format "Weekly Report - YYYY Week N (MM.DD - MM.DD)"
   - body: the report as markdown
   - format: "markdown"

Output requirements:
- Use concrete numbers, avoid vague wording
- Show rankings in tables
- Mark trends with arrows
- After creation, report the document title and link`,
}

var techDesign = Definition{
	Name:        global.PromptTechDesign,
	Description: "Technical design - write a technical design document from a standard template",
	Arguments: []Argument{
		{Name: "title", Description: "Design title", Required: true},
		{Name: "requirements", Description: "Requirements description", Required: true},
		{Name: "repo_id", Description: "Target repo ID or namespace", Required: true},
	},
	Template: `Please write a technical design document for the following requirements and save it to a Yuque repo.

## Title
{{.title}}

## Requirements
{{.requirements}}

## Steps

1. **Write the design** using this standard structure:
   - **1. Background**: current state and the problem
   - **2. Goals and scope**: what the design achieves and its boundaries
   - **3. Design**
     - 3.1 Architecture: components and how they fit together
     - 3.2 Core flows: key processes
     - 3.3 Data model: core data structures
     - 3.4 Interfaces: key API definitions
   - **4. Technology choices** and the reasons for them
   - **5. Schedule**: milestones and dates
   - **6. Risks** and mitigations
   - **7. References**
2. **Create the document**: call the yuque_create_doc tool to save the design in repo "{{.repo_id}}".
   - title: "Technical Design - {{.title}}"
   - body: the design as markdown
   - format: "markdown"

Output requirements:
- Use Markdown with a clear heading hierarchy
- Architecture may be described in text or ASCII diagrams
- Show interfaces in code blocks
- Show the schedule as a table
- Rate each risk high, medium or low
- Be specific and avoid generic statements
- After creation, report the document title and link`,
}

var onboardingGuide = Definition{
	Name:        global.PromptOnboardingGuide,
	Description: "Onboarding guide - collect a team's core documents into a reading guide for new members",
	Arguments: []Argument{
		{Name: "login", Description: "Team login name", Required: true},
		{Name: "repo_id", Description: "Repo ID or namespace where the guide is stored", Required: true},
	},
	Template: `Please build an onboarding knowledge pack for team "{{.login}}" and save it to a Yuque repo.

## Steps

1. **List the team's repos**: call the yuque_list_repos tool with login "{{.login}}" and type "group".
2. **Read each table of contents**: for each repo, call the yuque_get_toc tool to see how its documents are organized.
3. **Select core documents** that new members must read, focusing on:
   - Team introduction and organization
   - Development and coding standards
   - Environment and tool setup
   - Product and business documentation
   - Processes (release, code review and similar)
   - FAQ
4. **Write the guide** as a structured reading plan with:
   - How to use the guide (estimated reading time, suggested order)
   - Required reading, by priority and with links
     - Week one
     - Week two
     - Further reading
   - Repo map (what each repo is for)
   - Tips for new members
5. **Create the document**: call the yuque_create_doc tool to save the guide in repo "{{.repo_id}}".
   - title: "Onboarding Pack - {{.login}} team"
   - body: the guide as markdown
   - format: "markdown"

Output requirements:
- Link documents using Yuque document paths
- Give each recommended document a one or two sentence summary
- Layer the list by priority to avoid overload
- Keep the tone friendly and encouraging
- After creation, report the document title and link`,
}

var knowledgeReport = Definition{
	Name:        global.PromptKnowledgeReport,
	Description: "Knowledge report - generate a monthly knowledge management report for a team",
	Arguments: []Argument{
		{Name: "login", Description: "Team login name", Required: true},
		{Name: "repo_id", Description: "Repo ID or namespace where the report is stored", Required: true},
	},
	Template: `Please generate this month's knowledge management report for team "{{.login}}" and save it to a Yuque repo.

## Steps

1. **Team overview**: call the yuque_group_stats tool with login "{{.login}}" to get overall team statistics.
2. **Member statistics**: call the yuque_group_member_stats tool with login "{{.login}}" to get member activity and contribution data.
3. **Repo statistics**: call the yuque_group_book_stats tool with login "{{.login}}" to get usage of each repo.
4. **Document statistics**: call the yuque_group_doc_stats tool with login "{{.login}}" to get document creation and update data.
5. **Write the report** from all of the data above, with:
   - **Monthly overview**: key metrics and growth against last month
   - **Member contributions**: top 10 members, new contributors, activity distribution
   - **Repo analysis**: documents per repo, top 5 most active repos, repo health
   - **Document analysis**: new documents, most read or liked documents, update frequency
   - **Trends and insights**: knowledge growth, team maturity, notable highlights and issues
   - **Recommendations**: concrete improvements and focus areas for next month
6. **Create the document**: call the yuque_create_doc tool to save the report in repo "{{.repo_id}}".
   - title: "Knowledge Report - YYYY-MM - {{.login}}"
   - body: the report as markdown
   - format: "markdown"

Output requirements:
- Support every conclusion with data
- Show rankings and comparisons in tables
- Mark trends with arrows
- Make recommendations specific and actionable
- After creation, report the document title and link`,
}
