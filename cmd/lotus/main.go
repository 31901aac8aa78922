package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lotus/internal/bootstrap"
	collection "lotus/internal/modules/collection/domain"
	saveddto "lotus/internal/modules/saved/dto"
	studiesdto "lotus/internal/modules/studies/dto"
	"lotus/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir string
	apiBase string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "lotus",
		Short:         "Search, sort and save neuroscience studies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", config.DefaultDataDir(), "directory for config, database, logs and exports")
	root.PersistentFlags().StringVar(&flags.apiBase, "api", "", "study backend base URL (overrides config and "+config.EnvAPIBase+")")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSearchCmd(flags))
	root.AddCommand(newSavedCmd(flags))
	root.AddCommand(newAuthCmd(flags))
	return root
}

func loadApp(flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.dataDir, flags.apiBase)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, flags.verbose)
}

// withApp opens the application for the duration of run.
func withApp(flags *globalFlags, run func(app *bootstrap.App) error) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return run(app)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the lotus terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				return bootstrap.RunTUI(app, query)
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "initial boolean query")
	return cmd
}

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var sortKey, dir string
	var page int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fetch studies matching a boolean query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			column, direction, err := parseSort(studiesdto.Columns, sortKey, dir)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.StudiesCLI.Search(context.Background(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if len(out.Studies) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no studies")
					return nil
				}
				sorted := collection.SortedBy(out.Studies, column, direction)
				size := app.Config.PageSize
				total := collection.TotalPages(len(sorted), size)
				current := collection.ClampPage(page, total)
				for _, s := range collection.Page(sorted, current, size) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", year(s.Year), s.Title, s.Authors, s.Journal)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d, %d studies\n", current, total, len(sorted))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", studiesdto.DefaultSort.Key, "sort column: year|title|authors|journal")
	cmd.Flags().StringVar(&dir, "dir", string(studiesdto.DefaultSort.Direction), "sort direction: asc|desc")
	cmd.Flags().IntVar(&page, "page", 1, "page to print")
	return cmd
}

func newSavedCmd(flags *globalFlags) *cobra.Command {
	saved := &cobra.Command{Use: "saved", Short: "Manage saved studies"}

	var sortKey, dir string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved studies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			column, direction, err := parseSort(saveddto.Columns, sortKey, dir)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *bootstrap.App) error {
				items := app.SavedCLI.List(context.Background())
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved studies")
					return nil
				}
				for _, s := range collection.SortedBy(items, column, direction) {
					savedAt := ""
					if !s.SavedAt.IsZero() {
						savedAt = s.SavedAt.Local().Format("2006-01-02 15:04")
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", s.Index, year(s.Year), s.Title, s.Authors, savedAt)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&sortKey, "sort", saveddto.DefaultSort.Key, "sort column: year|title|authors|journal|savedAt")
	listCmd.Flags().StringVar(&dir, "dir", string(saveddto.DefaultSort.Direction), "sort direction: asc|desc")

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write saved studies to a dated file in the export directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.SavedCLI.Export(context.Background(), format)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d studies to %s\n", out.Count, out.Location)
				return nil
			})
		},
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "export format: json|yaml")

	removeCmd := &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the saved study with the index shown by list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.SavedCLI.Remove(context.Background(), index); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", index)
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved study",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.SavedCLI.Clear(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared saved studies")
				return nil
			})
		},
	}

	saved.AddCommand(listCmd, exportCmd, removeCmd, clearCmd)
	return saved
}

func newAuthCmd(flags *globalFlags) *cobra.Command {
	auth := &cobra.Command{Use: "auth", Short: "Local sign-in"}

	var password, name string
	loginCmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				user, err := app.AuthCLI.Login(context.Background(), args[0], password)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s <%s>\n", user.Name, user.Email)
				return nil
			})
		},
	}
	loginCmd.Flags().StringVar(&password, "password", "", "password")

	registerCmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a local account and sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				user, err := app.AuthCLI.Register(context.Background(), args[0], password, name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s> (%s)\n", user.Name, user.Email, user.ID)
				return nil
			})
		},
	}
	registerCmd.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	registerCmd.Flags().StringVar(&name, "name", "", "display name (defaults to the email local part)")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.AuthCLI.Logout(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
				return nil
			})
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				user, err := app.AuthCLI.Current(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> since %s\n", user.Name, user.Email, user.CreatedAt.Local().Format("2006-01-02"))
				return nil
			})
		},
	}

	auth.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
	return auth
}

func parseSort[T any](columns []collection.Column[T], key, dir string) (collection.Column[T], collection.Direction, error) {
	column, ok := collection.Lookup(columns, key)
	if !ok {
		return collection.Column[T]{}, "", fmt.Errorf("unknown sort column %q", key)
	}
	switch d := collection.Direction(dir); d {
	case collection.Asc, collection.Desc:
		return column, d, nil
	default:
		return collection.Column[T]{}, "", fmt.Errorf("sort direction must be asc or desc, got %q", dir)
	}
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return strconv.Itoa(y)
}
