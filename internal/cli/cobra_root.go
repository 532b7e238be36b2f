package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/client"
	"task-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
	tasks  TaskService
	out    io.Writer
}

// RootOption configures a RootCommand
type RootOption func(*RootCommand)

// WithTaskService replaces the HTTP client built from configuration
func WithTaskService(tasks TaskService) RootOption {
	return func(r *RootCommand) {
		r.tasks = tasks
	}
}

// WithOutput redirects command output
func WithOutput(out io.Writer) RootOption {
	return func(r *RootCommand) {
		r.out = out
	}
}

// WithLoader replaces the default configuration loader
func WithLoader(loader *config.Loader) RootOption {
	return func(r *RootCommand) {
		r.loader = loader
	}
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opts ...RootOption) *RootCommand {
	root := &RootCommand{
		loader: config.NewLoader(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A small task tracking server and client",
		Long: `tasks runs an HTTP task tracking server and talks to it from the command line.

EXAMPLES:
  tasks serve                              # Start the server on :3977 with in-memory storage
  tasks serve --storage sqlite --dsn tasks.db
  tasks add Buy milk -d "two litres"       # Create a task
  tasks list                               # List tasks in creation order
  tasks done <id>                          # Mark a task completed
  tasks edit <id> --title "Buy oat milk"   # Change only the title
  tasks delete <id>                        # Remove a task

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

  Server:
    TASKS_HOST, TASKS_PORT (or PORT)       Listen address (default: :3977)
    TASKS_API_PREFIX                       Extra route prefix (default: /api)
    TASKS_CORS_ORIGINS                     Allowed origins (default: *)
    TASKS_SHUTDOWN_TIMEOUT                 Graceful shutdown budget (default: 30s)

  Storage:
    TASKS_STORAGE_DRIVER                   memory or sqlite (default: memory)
    TASKS_STORAGE_DSN                      SQLite data source (default: :memory:)

  Client:
    TASKS_URL                              Server base URL (default: http://localhost:3977)
    TASKS_CLIENT_TIMEOUT                   Request timeout (default: 10s)
    TASKS_OUTPUT_FORMAT                    table or json (default: table)

  Logging:
    TASKS_LOG_LEVEL, TASKS_LOG_FORMAT, TASKS_LOG_OUTPUT, TASKS_LOG_FILE
    TASKS_DEBUG                            Trace client requests to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.loadConfig(cmd)
		},
	}
	root.cmd.SetOut(root.out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the cobra command, mainly so tests can set arguments
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Server configuration
	flags.String("host", "", "Listen host (overrides TASKS_HOST)")
	flags.Int("port", 0, "Listen port (overrides TASKS_PORT and PORT)")
	flags.String("cors-origins", "", "Allowed CORS origins (overrides TASKS_CORS_ORIGINS)")

	// Storage configuration
	flags.String("storage", "", "Storage driver: memory or sqlite (overrides TASKS_STORAGE_DRIVER)")
	flags.String("dsn", "", "SQLite data source (overrides TASKS_STORAGE_DSN)")

	// Validation configuration
	flags.Int("title-max-length", 0, "Maximum title length, 0 for unlimited (overrides TASKS_TITLE_MAX_LENGTH)")

	// Log configuration
	flags.String("log-level", "", "Log level (overrides TASKS_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: json or text (overrides TASKS_LOG_FORMAT)")

	// Client configuration
	flags.String("url", "", "Task server base URL (overrides TASKS_URL)")
	flags.Duration("timeout", 0, "Client request timeout (overrides TASKS_CLIENT_TIMEOUT)")
	flags.StringP("output", "o", "", "Output format: table or json (overrides TASKS_OUTPUT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP task server",
		Long:  "Run the HTTP task server until interrupted. SIGINT and SIGTERM trigger a graceful shutdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.config).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewListCommand(r.newApp()).Execute(ctx, args)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewGetCommand(r.newApp()).Execute(ctx, args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a task",
		Long: `Create a pending task. Remaining arguments are joined into the title.

Examples:
  tasks add Buy milk
  tasks add "Write report" --description "quarterly numbers"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			description, _ := cmd.Flags().GetString("description")
			return NewAddCommand(r.newApp(), description).Execute(ctx, args)
		},
	}
	addCmd.Flags().StringP("description", "d", "", "Task description")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change selected fields of a task",
		Long: `Change only the fields given as flags; everything else is left as stored.

Examples:
  tasks edit <id> --title "Buy oat milk"
  tasks edit <id> --description ""
  tasks edit <id> --completed=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewEditCommand(r.newApp(), editOptionsFromFlags(cmd)).Execute(ctx, args)
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().Bool("completed", false, "Completion state")

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewCompleteCommand(r.newApp(), true).Execute(ctx, args)
		},
	}

	undoneCmd := &cobra.Command{
		Use:   "undone <id>",
		Short: "Mark a task pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewCompleteCommand(r.newApp(), false).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id...>",
		Short: "Delete one or more tasks",
		Long:  "Delete tasks by id. This operation cannot be undone.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewDeleteCommand(r.newApp()).Execute(ctx, args)
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the task server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.clientContext(cmd)
			defer cancel()

			return NewHealthCommand(r.newApp()).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		serveCmd,
		listCmd,
		getCmd,
		addCmd,
		editCmd,
		doneCmd,
		undoneCmd,
		deleteCmd,
		healthCmd,
	)
}

func editOptionsFromFlags(cmd *cobra.Command) EditOptions {
	var opts EditOptions
	flags := cmd.Flags()
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		opts.Title = &title
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		opts.Description = &description
	}
	if flags.Changed("completed") {
		completed, _ := flags.GetBool("completed")
		opts.Completed = &completed
	}
	return opts
}

func (r *RootCommand) newApp() *App {
	tasks := r.tasks
	if tasks == nil {
		tasks = client.NewFromConfig(r.config)
	}
	return NewAppWithConfig(tasks, r.config, r.out)
}

func (r *RootCommand) clientContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, r.getClientTimeout())
}

// getClientTimeout returns the configured client timeout
func (r *RootCommand) getClientTimeout() time.Duration {
	if r.config != nil && r.config.Client.Timeout > 0 {
		return r.config.Client.Timeout
	}
	return 10 * time.Second
}

// loadConfig resolves configuration with only the flags the user actually set
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("host") {
		host, _ := flags.GetString("host")
		overrides.Host = &host
	}
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		overrides.Port = &port
	}
	if flags.Changed("cors-origins") {
		origins, _ := flags.GetString("cors-origins")
		overrides.CORSOrigins = &origins
	}
	if flags.Changed("storage") {
		driver, _ := flags.GetString("storage")
		overrides.StorageDriver = &driver
	}
	if flags.Changed("dsn") {
		dsn, _ := flags.GetString("dsn")
		overrides.StorageDSN = &dsn
	}
	if flags.Changed("title-max-length") {
		maxLength, _ := flags.GetInt("title-max-length")
		overrides.TitleMaxLength = &maxLength
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		overrides.LogLevel = &level
	}
	if flags.Changed("log-format") {
		format, _ := flags.GetString("log-format")
		overrides.LogFormat = &format
	}
	if flags.Changed("url") {
		baseURL, _ := flags.GetString("url")
		overrides.BaseURL = &baseURL
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("output") {
		output, _ := flags.GetString("output")
		overrides.OutputFormat = &output
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	r.config = cfg
	return nil
}
