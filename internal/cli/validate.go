package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmaulidane/txn-validation-service/internal/config"
	"github.com/tmaulidane/txn-validation-service/internal/domain"
	"github.com/tmaulidane/txn-validation-service/internal/report"
	"github.com/tmaulidane/txn-validation-service/internal/validator"
)

var (
	cfgFile      string
	profile      string
	outputFormat string
	outputFile   string
	prettyPrint  bool
	concurrent   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.csv>",
	Short: "Validate a CSV transaction file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&cfgFile, "config", "", "path to a YAML validation policy file")
	validateCmd.Flags().StringVar(&profile, "profile", "strict", "built-in policy profile: strict or lenient")
	validateCmd.Flags().StringVar(&outputFormat, "format", "json", "output format: json or text")
	validateCmd.Flags().StringVar(&outputFile, "output", "", "path to output file (if empty, writes to stdout)")
	validateCmd.Flags().BoolVar(&prettyPrint, "pretty", true, "pretty print JSON output")
	validateCmd.Flags().BoolVar(&concurrent, "concurrent", false, "validate row batches on a worker pool")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	policy, err := resolvePolicy()
	if err != nil {
		return err
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	engine := validator.NewEngine(policy, nil)
	input := validator.Input{Filename: filepath.Base(path), Reader: f}

	var result domain.ValidationResult
	if concurrent {
		result, err = engine.ValidateConcurrently(input)
	} else {
		result, err = engine.Validate(input)
	}
	if err != nil {
		var fileErr *domain.InvalidFileError
		if errors.As(err, &fileErr) {
			return fmt.Errorf("file rejected: %s", fileErr.Error())
		}
		return err
	}

	var formatter report.OutputFormatter
	switch outputFormat {
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint)
	case "text":
		formatter = report.NewTextFormatter()
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	output, err := formatter.Format(report.New(filepath.Base(path), result))
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if outputFile != "" {
		// If no extension is provided, add the formatter's default one.
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}
		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// resolvePolicy picks the validation policy: an explicit YAML file wins over
// the named built-in profile.
func resolvePolicy() (config.Policy, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	switch profile {
	case "strict":
		return config.Default(), nil
	case "lenient":
		return config.Lenient(), nil
	default:
		return config.Policy{}, fmt.Errorf("unknown profile %q: expected strict or lenient", profile)
	}
}
