package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hailam/gerf/internal/adapters/factory"
	"github.com/hailam/gerf/internal/adapters/progress"
	"github.com/hailam/gerf/internal/adapters/prompt"
	adapterutils "github.com/hailam/gerf/internal/adapters/utils"
	"github.com/hailam/gerf/internal/application"
	"github.com/hailam/gerf/internal/config"
	"github.com/hailam/gerf/internal/content"
	"github.com/hailam/gerf/internal/logging"
	"github.com/hailam/gerf/internal/paths"
	"github.com/hailam/gerf/internal/policy"
	"github.com/hailam/gerf/internal/ports"
	"github.com/hailam/gerf/internal/units"
)

const version = "1.0.0"

// cli holds the flag values and streams of one invocation.
type cli struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	kilobyte, megabyte, gigabyte, terabyte bool
	words, numbers                         bool
	exceed, override                       bool
	showLog                                bool
	seed                                   uint64
	configFile                             string

	exitCode int
}

// run executes gerf with args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	rootCmd := c.rootCmd()
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return c.exitCode
}

func banner() string {
	return fmt.Sprintf("%s\n%s",
		color.New(color.FgHiMagenta, color.Bold).Sprint("GERF"),
		color.New(color.Faint, color.Italic).Sprint("Generate Random File Content"))
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gerf [SIZE]",
		Short: "Generate Random File Content",
		Long: banner() + `

Generate a file with a specified size and random (or not so random) file content.
The size defaults to bytes; use a unit flag or a suffix (e.g. 10KB, 2MB) for
larger units.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.showLog {
				return c.runShowLog()
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runGenerate(cmd, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&c.kilobyte, "kilobyte", "k", false, "Interpret SIZE in kilobytes (1024 bytes)")
	flags.BoolVarP(&c.megabyte, "megabyte", "m", false, "Interpret SIZE in megabytes")
	flags.BoolVarP(&c.gigabyte, "gigabyte", "g", false, "Interpret SIZE in gigabytes")
	flags.BoolVarP(&c.terabyte, "terabyte", "t", false, "Interpret SIZE in terabytes")
	flags.BoolVarP(&c.words, "words", "w", false, "Fill the file with lorem-like words (default)")
	flags.BoolVarP(&c.numbers, "numbers", "n", false, "Fill the file with digits")
	flags.BoolVarP(&c.exceed, "exceed", "e", false, "Exceed the default maximum filesize without asking")
	flags.BoolVarP(&c.override, "override", "o", false, "Override an existing file")
	flags.BoolVarP(&c.showLog, "log", "L", false, "Show content of the log file")
	flags.StringP(config.KeyPath, "p", config.DefaultPath, "Set a custom filepath / filename")
	flags.Uint64Var(&c.seed, "seed", 0, "Seed the content generator for reproducible content")
	flags.StringVar(&c.configFile, "config", "", "Read settings from this config file")
	_ = flags.MarkHidden("seed")

	// --name is an alias of --path
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "name" {
			name = config.KeyPath
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.MarkFlagsMutuallyExclusive("kilobyte", "megabyte", "gigabyte", "terabyte")
	rootCmd.MarkFlagsMutuallyExclusive("words", "numbers")

	rootCmd.AddCommand(c.logCmd())
	return rootCmd
}

func (c *cli) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show content of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShowLog()
		},
	}
}

func (c *cli) runShowLog() error {
	dir, err := paths.ConfigDir("")
	if err != nil {
		c.exitCode = 1
		fmt.Fprintf(c.stderr, "Unable to find the config directory: %v\n", err)
		return nil
	}
	logs, err := logging.Show(dir)
	if err != nil {
		c.exitCode = 1
		fmt.Fprintf(c.stderr, "Unable to read logs: %v\n", err)
		return nil
	}
	fmt.Fprintln(c.stdout, color.New(color.FgYellow, color.Bold).Sprint("Available logs:"))
	fmt.Fprintln(c.stdout, logs)
	return nil
}

func (c *cli) runGenerate(cmd *cobra.Command, size string) error {
	// --- Setup: config dir, logger, settings ---
	dir, err := paths.ConfigDir("")
	if err == nil {
		err = paths.EnsureDir(dir)
	}
	if err != nil {
		c.exitCode = 1
		fmt.Fprintf(c.stderr, "Unable to find or create a config directory: %v\n", err)
		return nil
	}
	logger, err := logging.Setup(dir, c.stderr)
	if err != nil {
		c.exitCode = 1
		fmt.Fprintf(c.stderr, "Unable to set up logging: %v\n", err)
		return nil
	}
	defer logger.Close()

	req, service, err := c.compose(cmd, dir, size)
	if err != nil {
		c.exitCode = application.ExitCode(err)
		logger.Errorf("%v", err)
		return nil
	}

	// --- Execute Core Logic ---
	written, err := service.CreateFile(req)
	c.exitCode = application.ExitCode(err)
	switch {
	case err == nil:
		logger.Infof("Created '%s' (%s)", req.Path, humanize.IBytes(written))
	case errors.Is(err, policy.ErrHardCap):
		logger.Warningf("%v", err)
		logger.Infof("Lower the size or raise %s in %s", config.KeyMaxSize, paths.ConfigFile(dir))
	case errors.Is(err, policy.ErrDeclined):
		logger.Warningf("%v", err)
		logger.Infof("Use the [ -e ] or [ --exceed ] flag to exceed the default maximum filesize")
	case errors.Is(err, application.ErrFileExists):
		logger.Warningf("%v", err)
		logger.Infof("Use the [ -o ] or [ --override ] flag to override the existing file")
	case errors.Is(err, application.ErrInput):
		logger.Warningf("%v", err)
	default:
		logger.Errorf("%v", err)
	}
	return nil
}

// compose is the composition root: it resolves settings and wires the
// adapters into a FileService.
func (c *cli) compose(cmd *cobra.Command, dir, size string) (application.Request, *application.FileService, error) {
	v := config.New()
	if err := v.BindPFlag(config.KeyPath, cmd.Flags().Lookup(config.KeyPath)); err != nil {
		return application.Request{}, nil, err
	}
	configFile := c.configFile
	if configFile == "" {
		configFile = paths.ConfigFile(dir)
	}
	if err := config.ReadFile(v, configFile, c.configFile != ""); err != nil {
		return application.Request{}, nil, err
	}
	conf, err := config.Load(v)
	if err != nil {
		return application.Request{}, nil, err
	}

	unit, err := units.UnitFromFlags(c.kilobyte, c.megabyte, c.gigabyte, c.terabyte)
	if err != nil {
		return application.Request{}, nil, application.InputError(err)
	}
	kind := conf.Kind
	switch {
	case c.numbers:
		kind = ports.ContentKindNumbers
	case c.words:
		kind = ports.ContentKindWords
	}

	gate, err := policy.NewGate(conf.WarnSize, conf.MaxSize)
	if err != nil {
		return application.Request{}, nil, err
	}

	opts := []content.Option{content.WithWorkers(conf.Workers)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, content.WithSeed(c.seed))
	}
	generatorFactory := progress.NewSpinnerFactory(factory.NewStaticGeneratorFactory(opts...), c.stderr, conf.WarnSize)
	sizeParser := adapterutils.NewUnitSizeParser()
	confirmer := prompt.New(c.stdin, c.stdout)
	service := application.NewFileService(generatorFactory, sizeParser, gate, confirmer)

	req := application.Request{
		Size:     size,
		Unit:     unit,
		Kind:     kind,
		Path:     conf.Path,
		Exceed:   c.exceed,
		Override: c.override,
	}
	return req, service, nil
}
