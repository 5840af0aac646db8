package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/pkg/search"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
)

var searchUlog = grovelogging.NewUnifiedLogger("grove-mindmap.cmd.search")

type searchHit struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Path    []string       `json:"path"`
	Matched []search.Field `json:"matched"`
	Score   int            `json:"score"`
}

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		searchLimit int
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search nodes",
		Long: `Search node titles, summaries, descriptions and tags, ignoring case.
Title matches rank first.

Examples:
  mm search "launch"          # Every match
  mm search api --limit 5     # Best five`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := (*svc).Open()
			query := strings.Join(args, " ")
			results := sess.Search(query, &search.Options{Limit: searchLimit})
			if jsonOutput {
				hits := make([]searchHit, 0, len(results))
				for _, r := range results {
					hits = append(hits, searchHit{
						ID:      r.Node.ID,
						Title:   r.Node.Title,
						Path:    r.Path,
						Matched: r.Matched,
						Score:   r.Score,
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(hits)
			}

			if len(results) == 0 {
				searchUlog.Info("No results found").
					Field("query", query).
					Pretty(fmt.Sprintf("No results found for %q", query)).
					PrettyOnly().
					Emit()
				return nil
			}

			searchUlog.Info("Search results").
				Field("query", query).
				Field("result_count", len(results)).
				Pretty(fmt.Sprintf("Found %d results:\n", len(results))).
				PrettyOnly().
				Emit()

			for i, r := range results {
				searchUlog.Info("Search result").
					Field("query", query).
					Field("result_index", i+1).
					Field("id", r.Node.ID).
					Field("title", r.Node.Title).
					Field("score", r.Score).
					Pretty(fmt.Sprintf("%d. %s  [%s]\n", i+1, strings.Join(r.Path, " › "), r.Node.ID)).
					PrettyOnly().
					Emit()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of results (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
