package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tractionhq/mobilecore/internal/api"
	"github.com/tractionhq/mobilecore/internal/config"
	"github.com/tractionhq/mobilecore/internal/credential"
	"github.com/tractionhq/mobilecore/internal/domain/auth"
	"github.com/tractionhq/mobilecore/internal/domain/dashboard"
	"github.com/tractionhq/mobilecore/internal/domain/rock"
	"github.com/tractionhq/mobilecore/internal/domain/todo"
	"github.com/tractionhq/mobilecore/internal/gateway"
	"github.com/tractionhq/mobilecore/internal/keyval"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired client stack shared by all commands.
type app struct {
	cfg        config.Config
	logger     *slog.Logger
	db         *keyval.DB
	gateway    *gateway.Client
	auth       *auth.Store
	todos      *todo.Store
	rocks      *rock.Store
	dashboards *dashboard.Store
}

// newApp wires config -> storage -> gateway -> clients -> stores, then
// rehydrates any persisted session so authenticated commands work without a
// fresh login.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureStorageDir(cfg.Storage.Path); err != nil {
		return nil, fmt.Errorf("preparing storage path: %w", err)
	}
	db, err := keyval.New(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating storage: %w", err)
	}
	storage := keyval.NewSQLiteStorage(db)

	gw := gateway.New(cfg.API.URL, storage, logger)
	creds := credential.NewStore(storage, logger)

	authClient := api.NewAuthClient(gw)
	todoClient := api.NewTodoClient(gw)
	rockClient := api.NewRockClient(gw)
	dashboardClient := api.NewDashboardClient(gw)

	a := &app{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		gateway:    gw,
		auth:       auth.NewStore(authClient, gw, creds, logger),
		todos:      todo.NewStore(todoClient, logger),
		rocks:      rock.NewStore(rockClient, logger),
		dashboards: dashboard.NewStore(dashboardClient, logger),
	}
	a.auth.Rehydrate()
	return a, nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tractionctl",
		Short:         "Traction client for todos, rocks, and dashboards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newTodosCmd(),
		newRocksCmd(),
		newDashboardsCmd(),
	)
	return root
}

func newLoginCmd() *cobra.Command {
	var email, password, tenant string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if tenant == "" {
				tenant = a.cfg.API.Tenant
			}

			ok, err := a.auth.Login(cmd.Context(), email, password, tenant)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s", a.auth.Snapshot().Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in to %s\n", tenant)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant id (defaults to configured tenant)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.auth.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			state := a.auth.Snapshot()
			if !state.IsAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}

			if state.User == nil {
				if err := a.auth.GetProfile(cmd.Context()); err != nil {
					return err
				}
				state = a.auth.Snapshot()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tenant: %s\n", state.Tenant)
			if state.User != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "user:   %s <%s>\n", state.User.FullName, state.User.Email)
			}
			return nil
		},
	}
}

func newTodosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Work with todos",
	}

	var teamIDs string
	var all, archived bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List the first page of todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.todos.Fetch(cmd.Context(), todo.ListParams{
				GetAll:     all,
				IsArchived: archived,
				TeamIDs:    teamIDs,
			})
			return printTodos(cmd, a.todos.Snapshot())
		},
	}
	list.Flags().StringVar(&teamIDs, "teams", "", "comma-separated team ids")
	list.Flags().BoolVar(&all, "all", false, "include todos for all owners")
	list.Flags().BoolVar(&archived, "archived", false, "list archived todos")

	more := &cobra.Command{
		Use:   "more",
		Short: "Fetch the next page after a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.todos.Fetch(cmd.Context(), todo.ListParams{})
			a.todos.LoadMore(cmd.Context())
			return printTodos(cmd, a.todos.Snapshot())
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a todo between ON_TRACK and DONE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.todos.Fetch(cmd.Context(), todo.ListParams{})
			a.todos.ToggleStatus(cmd.Context(), args[0])

			state := a.todos.Snapshot()
			if state.Error != "" {
				return fmt.Errorf("%s", state.Error)
			}
			for _, t := range state.Todos {
				if t.ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", t.ID, t.Status)
					return nil
				}
			}
			return fmt.Errorf("todo %s not found on the first page", args[0])
		},
	}

	var title, team, owner, due string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a todo",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			client := api.NewTodoClient(a.gateway)
			created, err := client.CreateTodos(cmd.Context(), []todo.CreateInput{{
				Title:   title,
				TeamID:  team,
				OwnerID: owner,
				DueDate: due,
				Status:  todo.StatusOnTrack,
			}})
			if err != nil {
				return err
			}
			for _, t := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s  %s\n", t.ID, t.Title)
			}
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "todo title")
	add.Flags().StringVar(&team, "team", "", "team id")
	add.Flags().StringVar(&owner, "owner", "", "owner id")
	add.Flags().StringVar(&due, "due", "", "due date (RFC 3339)")
	add.MarkFlagRequired("title")
	add.MarkFlagRequired("team")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			t, err := api.NewTodoClient(a.gateway).GetTodo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]  %s\n", t.ID, t.Status, t.Title)
			if t.Description != "" {
				fmt.Fprintln(cmd.OutOrStdout(), t.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "owner: %s  due: %s\n", t.Owner.FullName, t.DueDate)
			return nil
		},
	}

	cmd.AddCommand(list, more, toggle, add, show)
	return cmd
}

func newRocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rocks",
		Short: "Work with rocks",
	}

	var team, session string
	list := &cobra.Command{
		Use:   "list",
		Short: "List rocks with aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.rocks.Fetch(cmd.Context(), rock.ListParams{TeamID: team, SessionID: session})

			state := a.rocks.Snapshot()
			if state.Error != "" {
				return fmt.Errorf("%s", state.Error)
			}
			for _, r := range state.Rocks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [%-9s]  %3.0f%%  %s\n", r.ID, r.Status, r.Progress, r.Title)
			}
			if stats := state.Statistics; stats != nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"\n%d rocks: %d on track, %d off track, %d done, avg progress %d%%\n",
					stats.TotalRocks, stats.OnTrackRocks, stats.OffTrackRocks, stats.DoneRocks, stats.AverageProgress)
			}
			return nil
		},
	}
	list.Flags().StringVar(&team, "team", "", "team id")
	list.Flags().StringVar(&session, "session", "", "session id")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one rock with its milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			r, err := api.NewRockClient(a.gateway).GetRock(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]  %.0f%%  %s\n", r.ID, r.Status, r.Progress, r.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "owner: %s  due: %s\n", r.Owner.FullName, r.DueDate)
			for _, m := range r.Milestones {
				fmt.Fprintf(cmd.OutOrStdout(), "  - [%s] %s\n", m.Status, m.Title)
			}
			return nil
		},
	}

	var percent float64
	checkin := &cobra.Command{
		Use:   "checkin <milestone-id>",
		Short: "Record milestone progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.rocks.CheckIn(cmd.Context(), args[0], percent); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked in %s at %.0f%%\n", args[0], percent)
			return nil
		},
	}
	checkin.Flags().Float64Var(&percent, "percent", 0, "progress percentage (0-100)")
	checkin.MarkFlagRequired("percent")

	cmd.AddCommand(list, show, checkin)
	return cmd
}

func newDashboardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboards",
		Short: "Work with dashboards",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List dashboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.dashboards.Fetch(cmd.Context())

			state := a.dashboards.Snapshot()
			if state.Error != "" {
				return fmt.Errorf("%s", state.Error)
			}
			for _, d := range state.Dashboards {
				marker := " "
				if d.IsFeatured {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s (%d widgets)\n", marker, d.ID, d.Name, len(d.Widgets))
			}
			return nil
		},
	}

	cmd.AddCommand(list)
	return cmd
}

func printTodos(cmd *cobra.Command, state todo.State) error {
	if state.Error != "" {
		return fmt.Errorf("%s", state.Error)
	}
	for _, t := range state.Todos {
		check := " "
		if t.Status == todo.StatusDone {
			check = "x"
		}
		line := fmt.Sprintf("[%s] %s  %s", check, t.ID, t.Title)
		if t.PriorityType == todo.PriorityHigh {
			line += "  (high)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "showing %d of %d\n", len(state.Todos), state.Total)
	return nil
}

func ensureStorageDir(path string) error {
	if path == ":memory:" || path == "" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
