package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codemap/pkg/config"
	"github.com/matzehuels/codemap/pkg/errors"
	"github.com/matzehuels/codemap/pkg/pipeline"
	"github.com/matzehuels/codemap/pkg/store"
)

// snapshotCommand creates the snapshot command tree for persisting graphs.
func (c *CLI) snapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, list and delete graph snapshots",
		Long: `Persist dependency graphs as named snapshots so they can be compared or
served later without rescanning.

Snapshots are stored under the XDG data directory by default, or in
MongoDB when a mongo_uri is configured.`,
	}

	cmd.AddCommand(c.snapshotSaveCommand())
	cmd.AddCommand(c.snapshotListCommand())
	cmd.AddCommand(c.snapshotDeleteCommand())

	return cmd
}

// newStore picks the snapshot backend from config: MongoDB when a URI is
// set, local files otherwise.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.Store.MongoURI != "" {
		return store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.Database)
	}
	return store.NewFileStore(cfg.Store.Dir)
}

// ============================================================================
// Save
// ============================================================================

func (c *CLI) snapshotSaveCommand() *cobra.Command {
	var (
		flags scanFlags
		name  string
	)

	cmd := &cobra.Command{
		Use:   "save [path]",
		Short: "Scan a source tree and save the graph as a snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg, root)
			return c.runSnapshotSave(cmd.Context(), cfg, opts, name, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&name, "name", "n", "", "snapshot name (default: directory name)")

	return cmd
}

func (c *CLI) runSnapshotSave(ctx context.Context, cfg *config.Config, opts pipeline.Options, name string, noCache bool) error {
	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", opts.Root))
	spinner.Start()
	g, fileCount, _, err := buildGraph(ctx, runner, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if name == "" {
		abs, err := filepath.Abs(opts.Root)
		if err != nil {
			abs = opts.Root
		}
		name = filepath.Base(abs)
	}

	snap, err := store.New(name, opts.Root, fileCount, g)
	if err != nil {
		return err
	}

	st, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer st.Close()

	if err := st.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	printSuccess("Saved snapshot %q", snap.Name)
	printKeyValue("ID", snap.ID)
	printStats(snap.EntityCount, g.RelationCount(), false)
	printNewline()
	printNextStep("List snapshots", "codemap snapshot list")
	return nil
}

// ============================================================================
// List
// ============================================================================

func (c *CLI) snapshotListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(".")
			if err != nil {
				return err
			}
			return c.runSnapshotList(cmd.Context(), cfg)
		},
	}
}

func (c *CLI) runSnapshotList(ctx context.Context, cfg *config.Config) error {
	st, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer st.Close()

	snaps, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}
	if len(snaps) == 0 {
		printInfo("No snapshots saved")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Created", "Entities", "Files").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	for _, s := range snaps {
		t.Row(
			shortID(s.ID),
			s.Name,
			formatRelativeTime(s.CreatedAt),
			fmt.Sprintf("%d", s.EntityCount),
			fmt.Sprintf("%d", s.FileCount),
		)
	}

	fmt.Println(t.Render())
	return nil
}

// ============================================================================
// Delete
// ============================================================================

func (c *CLI) snapshotDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot by ID or ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(".")
			if err != nil {
				return err
			}
			return c.runSnapshotDelete(cmd.Context(), cfg, args[0])
		},
	}
}

func (c *CLI) runSnapshotDelete(ctx context.Context, cfg *config.Config, id string) error {
	st, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer st.Close()

	resolved, err := resolveSnapshotID(ctx, st, id)
	if err != nil {
		return err
	}
	if err := st.Delete(ctx, resolved); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	printSuccess("Deleted snapshot %s", shortID(resolved))
	return nil
}

// resolveSnapshotID expands an ID prefix to a full snapshot ID. Exact
// matches win; otherwise the prefix must match exactly one snapshot.
func resolveSnapshotID(ctx context.Context, st store.Store, id string) (string, error) {
	snaps, err := st.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list snapshots: %w", err)
	}

	var matches []string
	for _, s := range snaps {
		if s.ID == id {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, id) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", errors.New(errors.ErrCodeSnapshotNotFound, "snapshot %q not found", id)
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "snapshot ID %q is ambiguous (%d matches)", id, len(matches))
	}
}

// shortID trims a UUID down to its first block for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// formatRelativeTime renders a timestamp as a coarse relative age.
func formatRelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
