package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xll-gen/file2header/internal/config"
	"github.com/xll-gen/file2header/internal/ui"
	"github.com/xll-gen/file2header/pkg/log"
)

// ErrUsage is returned when the command is invoked with the wrong arguments.
var ErrUsage = errors.New("incorrect usage")

var (
	arrayName string
	logLevel  string
	logFile   string
	noColor   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "file2header <input> <output> [bytes-per-line]",
	Short: "Convert a binary file into a C++ header holding its bytes",
	Long: `file2header reads a binary file and writes a C++ header declaring
a const uint8_t array with the file's contents, so the data can be compiled
straight into a program.

bytes-per-line defaults to 25.`,
	Args:          validateArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateLogLevel(logLevel); err != nil {
			return err
		}
		// The flag default covers the unset case; an explicit value must be valid as given.
		if cmd.Flags().Changed("name") {
			if err := config.ValidateName(arrayName); err != nil {
				return err
			}
		}
		closer, err := log.Init(logFile, logLevel)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer closer.Close()

		opts := options{
			input:  args[0],
			output: args[1],
			name:   arrayName,
		}
		if len(args) == 3 {
			opts.bytesPerLine = args[2]
		}
		return runConvert(ui.NewConsole(noColor), opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(ui.NewConsole(noColor), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&arrayName, "name", config.DefaultName, "Identifier of the generated array")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write diagnostic logs to this file instead of stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored status output")
	rootCmd.SetFlagErrorFunc(flagError)
}

// flagError classifies flag parse failures. A negative number such as -5
// in the bytes-per-line position reaches pflag as a shorthand flag.
func flagError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	if i := strings.LastIndex(msg, " in -"); i >= 0 {
		tok := msg[i+len(" in "):]
		if len(tok) > 1 && tok[1] >= '0' && tok[1] <= '9' {
			if _, perr := config.ParseBytesPerLine(tok); perr != nil {
				return perr
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// validateArgs accepts an input path, an output path and an optional
// bytes-per-line value.
func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(2, 3)(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// reportError prints err as a status line. Usage errors also get an example
// invocation.
func reportError(r *ui.Reporter, err error) {
	if errors.Is(err, ErrUsage) {
		r.Error("Error", "Incorrect usage!")
		r.Info("Example", fmt.Sprintf("%s image.exe image.h %d", rootCmd.Name(), config.DefaultBytesPerLine))
		return
	}
	r.Error("Error", err.Error())
}
