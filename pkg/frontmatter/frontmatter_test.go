package frontmatter

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   *Frontmatter
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid frontmatter",
			content: `---
id: root
title: Launch
tags: [q3, infra]
nodes: 4
exported: 2024-01-02 11:00:00
---

# Launch`,
			wantFM: &Frontmatter{
				ID:       "root",
				Title:    "Launch",
				Tags:     []string{"q3", "infra"},
				Nodes:    4,
				Exported: "2024-01-02 11:00:00",
			},
			wantBody: "\n# Launch",
		},
		{
			name:     "no frontmatter",
			content:  "# Just a title\n\n- item",
			wantFM:   nil,
			wantBody: "# Just a title\n\n- item",
		},
		{
			name: "invalid yaml",
			content: `---
id: root
title: [invalid
---

Body`,
			wantErr: true,
		},
		{
			name: "missing tags",
			content: `---
id: root
title: T
---
`,
			wantFM:   &Frontmatter{ID: "root", Title: "T", Tags: []string{}},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := Parse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(fm, tt.wantFM) {
				t.Errorf("Parse() fm = %+v, want %+v", fm, tt.wantFM)
			}
			if body != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestBuildQuotesSpecialValues(t *testing.T) {
	got := Build(&Frontmatter{
		ID:       "root",
		Title:    "Plan: phase 1",
		Tags:     []string{"a,b", "c"},
		Nodes:    2,
		Exported: "2024-01-01 00:00:00",
	})
	want := "---\n" +
		"id: root\n" +
		"title: \"Plan: phase 1\"\n" +
		"tags: [\"a,b\", c]\n" +
		"nodes: 2\n" +
		"exported: 2024-01-01 00:00:00\n" +
		"---"
	if got != want {
		t.Errorf("Build() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender(t *testing.T) {
	doc := &models.Node{
		ID:      models.RootID,
		Title:   "Launch",
		Summary: "Q3 release",
		Children: []*models.Node{
			{
				ID:       "a",
				Title:    "Backend",
				Summary:  "APIs",
				Metadata: &models.Metadata{Status: models.StatusImportant, Tags: []string{"infra"}},
				Children: []*models.Node{{ID: "a1", Title: "Auth"}},
			},
			{ID: "b", Title: "Docs", Metadata: &models.Metadata{Status: models.StatusDraft, Tags: []string{"infra", "writing"}}},
		},
	}
	exported := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	out := Render(doc, exported)

	fm, body, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Render()) error = %v", err)
	}
	wantFM := &Frontmatter{
		ID:       models.RootID,
		Title:    "Launch",
		Tags:     []string{"infra", "writing"},
		Nodes:    4,
		Exported: "2024-06-01 08:00:00",
	}
	if !reflect.DeepEqual(fm, wantFM) {
		t.Errorf("frontmatter = %+v, want %+v", fm, wantFM)
	}

	wantBody := "\n# Launch\n\nQ3 release\n\n" +
		"- Backend: APIs [important] #infra\n" +
		"  - Auth\n" +
		"- Docs #infra #writing\n"
	if body != wantBody {
		t.Errorf("body =\n%q\nwant\n%q", body, wantBody)
	}
}

func TestRenderSingleNode(t *testing.T) {
	out := Render(models.NewDocument(), time.Now())
	if !strings.Contains(out, "nodes: 1\n") {
		t.Errorf("expected a node count of 1 in %q", out)
	}
	if !strings.HasSuffix(out, "# Mindmap\n\nStart here\n\nAdd children to grow your map.\n") {
		t.Errorf("unexpected body in %q", out)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2023, 5, 15, 14, 30, 45, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2023-05-15 14:30:45" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
}

func TestMergeTags(t *testing.T) {
	tests := []struct {
		name    string
		sources [][]string
		want    []string
	}{
		{"empty", nil, []string{}},
		{"single", [][]string{{"a", "b"}}, []string{"a", "b"}},
		{"duplicates", [][]string{{"a", "b"}, {"b", "c"}}, []string{"a", "b", "c"}},
		{"blank tags", [][]string{{"", "a", ""}}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeTags(tt.sources...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeTags() = %v, want %v", got, tt.want)
			}
		})
	}
}
