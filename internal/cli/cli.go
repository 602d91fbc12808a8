// Package cli implements the command-line interface of tabulate.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tabulatehq/tabulate/internal/config"
	"github.com/tabulatehq/tabulate/internal/formats"
	"github.com/tabulatehq/tabulate/internal/sortkey"
	"github.com/tabulatehq/tabulate/internal/trace"
	"github.com/tabulatehq/tabulate/internal/util"
)

// parseOutputFormat takes "table" or "json" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) outputFormat {
	switch formatStr {
	case "table":
		return outputFormatTable
	case "json":
		return outputFormatJSON
	default:
		util.Die(`Error: invalid format %#v (must be "table" or "json")`, formatStr)
		return 0
	}
}

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'tabulate --version'.
func getVersion() string {
	return "tabulate " + version
}

// addFormatFlag registers the --format flag, shared by every command
// that emits a table.
func addFormatFlag(cmd *cobra.Command, formatStr *string) {
	cmd.Flags().StringVarP(
		formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
}

// addRenderFlags registers the table-shaping flags, shared by the
// commands that render tables and by 'preset save'.
func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVar(
		&opts.style, "style", "ascii",
		"rule style (one of "+strings.Join(styleNames, ", ")+")",
	)
	cmd.Flags().StringVar(
		&opts.align, "align", "left",
		"default cell alignment (left, center, or right)",
	)
	cmd.Flags().StringArrayVar(
		&opts.alignCols, "align-col", nil,
		"per-column alignment as COLUMN=ALIGNMENT (repeatable)",
	)
	cmd.Flags().StringVar(
		&opts.sortColumn, "sort", "", "sort rows by the given column",
	)
	cmd.Flags().BoolVar(
		&opts.desc, "desc", false, "sort in descending order",
	)
	cmd.Flags().StringVar(
		&opts.sortKey, "sort-key", "none",
		"sort key (one of "+strings.Join(sortkey.Names(), ", ")+")",
	)
	cmd.Flags().IntVar(
		&opts.padding, "padding", 1, "spaces on each side of every cell",
	)
	cmd.Flags().BoolVar(
		&opts.noBorder, "no-border", false, "draw no horizontal rules",
	)
	cmd.Flags().BoolVar(
		&opts.noHeader, "no-header", false, "don't display the header row",
	)
	cmd.Flags().StringVar(
		&opts.hrules, "hrules", "frame",
		"where to draw horizontal rules (none, frame, header, or all)",
	)
	cmd.Flags().StringVar(
		&opts.vrules, "vrules", "all",
		"where to draw vertical rules (none, frame, or all)",
	)
}

// addOutputFlags registers the flags that say where rendered output
// goes.
func addOutputFlags(cmd *cobra.Command, outputPath *string, noPager *bool) {
	cmd.Flags().StringVarP(
		outputPath, "output", "o", "", "write to a file instead of stdout",
	)
	cmd.Flags().BoolVar(
		noPager, "no-pager", false, "never page output through less",
	)
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	formats.CheckAll()

	if trace.MaybeTrace(version) {
		defer trace.Stop()
	}

	var formatStr string
	var inputName string
	var presetName string
	var outputPath string
	var noPager bool
	var opts renderOptions

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "tabulate",
		Version: getVersion(),
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	// Not sorting the root command options because none of the
	// documented ways to disable sorting work for it (the root
	// command itself has the options sorted correctly, but they
	// are alphabetized in the help strings for subcommands).
	rootCmd.PersistentFlags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show what commands are being run",
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	cmdRender := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render a data file as a table",
		Long:  "Render a data file, URL, or stdin as a table",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			filename := ""
			if len(args) >= 1 {
				filename = args[0]
			}
			applyPreset(cmd, &opts, presetName)
			outputFormat := parseOutputFormat(formatStr)
			runRender(filename, inputName, opts, outputFormat, outputPath, noPager)
		},
	}
	cmdRender.Flags().SortFlags = false
	addFormatFlag(cmdRender, &formatStr)
	cmdRender.Flags().StringVarP(
		&inputName, "input", "i", "",
		"input format (one of "+strings.Join(formats.GetFormatNames(), ", ")+
			"; default: detect from the file extension)",
	)
	addRenderFlags(cmdRender, &opts)
	cmdRender.Flags().StringVar(
		&presetName, "preset", "", "apply a saved preset",
	)
	addOutputFlags(cmdRender, &outputPath, &noPager)
	rootCmd.AddCommand(cmdRender)

	cmdQuery := &cobra.Command{
		Use:   "query DATABASE QUERY",
		Short: "Render a SQLite query as a table",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			applyPreset(cmd, &opts, presetName)
			outputFormat := parseOutputFormat(formatStr)
			runQuery(args[0], args[1], opts, outputFormat, outputPath, noPager)
		},
	}
	cmdQuery.Flags().SortFlags = false
	addFormatFlag(cmdQuery, &formatStr)
	addRenderFlags(cmdQuery, &opts)
	cmdQuery.Flags().StringVar(
		&presetName, "preset", "", "apply a saved preset",
	)
	addOutputFlags(cmdQuery, &outputPath, &noPager)
	rootCmd.AddCommand(cmdQuery)

	cmdFormats := &cobra.Command{
		Use:   "formats",
		Short: "List supported input formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runFormats()
		},
	}
	rootCmd.AddCommand(cmdFormats)

	cmdStyles := &cobra.Command{
		Use:   "styles",
		Short: "Show the available table styles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runStyles()
		},
	}
	rootCmd.AddCommand(cmdStyles)

	cmdPreset := &cobra.Command{
		Use:   "preset",
		Short: "Save and reuse rendering options",
	}
	cmdPresetSave := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the given rendering options under a name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runPresetSave(args[0], opts)
		},
	}
	cmdPresetSave.Flags().SortFlags = false
	addRenderFlags(cmdPresetSave, &opts)
	cmdPreset.AddCommand(cmdPresetSave)

	cmdPresetList := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runPresetList()
		},
	}
	cmdPreset.AddCommand(cmdPresetList)

	cmdPresetDelete := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runPresetDelete(args[0])
		},
	}
	cmdPreset.AddCommand(cmdPresetDelete)
	rootCmd.AddCommand(cmdPreset)

	specialArgs := map[string](func()){}
	for _, helpFlag := range []string{"-help", "-?"} {
		specialArgs[helpFlag] = func() {
			rootCmd.Usage()
			os.Exit(0)
		}
	}
	for _, versionFlag := range []string{"-version", "-V"} {
		specialArgs[versionFlag] = func() {
			fmt.Println(getVersion())
			os.Exit(0)
		}
	}

	if len(os.Args) >= 2 {
		fn, ok := specialArgs[os.Args[1]]
		if ok {
			fn()
		}
	}

	rootCmd.Execute()
}
