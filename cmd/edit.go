package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
	"github.com/mattsolo1/grove-mindmap/pkg/session"
)

func NewAddCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <parent-id> [title]",
		Short: "Add a child node",
		Long: `Append a new child under a node.

Examples:
  mm add root                 # Child titled "New Child Node"
  mm add root "Research"      # Child with a title`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var added *models.Node
			_, err := (*svc).Mutate(func(s *session.Session) error {
				child, err := s.AddChild(args[0])
				if err != nil {
					return err
				}
				added = child
				if len(args) > 1 {
					return s.UpdateTitle(child.ID, args[1])
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), added.ID)
			return nil
		},
	}
	return cmd
}

func NewSiblingCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sibling <id> [title]",
		Short: "Add a sibling right after a node",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var added *models.Node
			_, err := (*svc).Mutate(func(s *session.Session) error {
				sib, err := s.AddSibling(args[0])
				if err != nil {
					return err
				}
				added = sib
				if len(args) > 1 {
					return s.UpdateTitle(sib.ID, args[1])
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), added.ID)
			return nil
		},
	}
	return cmd
}

func NewRemoveCmd(svc **service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a node and its subtree",
		Long: `Delete a node together with everything below it.

Examples:
  mm rm node-123              # Asks for confirmation
  mm rm node-123 --force      # No questions`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := (*svc).Mutate(func(s *session.Session) error {
				if !force {
					n, err := s.Edit(args[0])
					if err != nil {
						return err
					}
					if !confirm(cmd, fmt.Sprintf("Delete %q and all its children?", n.Title)) {
						return errAborted
					}
				}
				return s.Delete(args[0])
			})
			if errors.Is(err, errAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")
	return cmd
}

func NewMoveCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv <id> <new-parent-id>",
		Short: "Move a node under a new parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := (*svc).Mutate(func(s *session.Session) error {
				return s.Move(args[0], args[1])
			})
			return err
		},
	}
	return cmd
}

func NewDuplicateCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dup <id>",
		Short: "Duplicate a node and its subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var clone *models.Node
			_, err := (*svc).Mutate(func(s *session.Session) error {
				c, err := s.Duplicate(args[0])
				clone = c
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), clone.ID)
			return nil
		},
	}
	return cmd
}

func NewEditCmd(svc **service.Service) *cobra.Command {
	var (
		title       string
		summary     string
		description string
		status      string
		tags        []string
		fields      []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit the fields of a node",
		Long: `Change the text fields and metadata of a node. Only the given
flags are changed.

Custom field values are parsed: numbers and true/false keep their type,
anything else is stored as text. An empty value removes the field.

Examples:
  mm edit node-123 --title "Launch plan" --status important
  mm edit node-123 --tag q3 --tag infra
  mm edit node-123 --field priority=2 --field owner=kim`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			_, err := (*svc).Mutate(func(s *session.Session) error {
				form, err := s.Edit(args[0])
				if err != nil {
					return err
				}
				if flags.Changed("title") {
					form.Title = title
				}
				if flags.Changed("summary") {
					form.Summary = summary
				}
				if flags.Changed("description") {
					form.Description = description
				}
				if flags.Changed("status") {
					form.Status = models.Status(status)
				}
				if flags.Changed("tag") {
					form.Tags = tags
				}
				for _, kv := range fields {
					k, v, ok := strings.Cut(kv, "=")
					if !ok {
						return fmt.Errorf("invalid field %q, expected key=value", kv)
					}
					if form.CustomFields == nil {
						form.CustomFields = make(map[string]string)
					}
					if v == "" {
						delete(form.CustomFields, k)
						continue
					}
					form.CustomFields[k] = v
				}
				_, err = s.SaveEdit(args[0], form)
				return err
			})
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Node title")
	cmd.Flags().StringVar(&summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&description, "description", "", "Long description")
	cmd.Flags().StringVar(&status, "status", "", "Status: draft, completed, important or archived")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable, replaces existing tags)")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "Custom field key=value (repeatable)")

	return cmd
}
