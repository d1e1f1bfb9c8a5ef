package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LucMc/toprompt/internal/app"
	"github.com/LucMc/toprompt/internal/config"
)

func main() {
	cfg := &config.Config{}
	var ignoreList string

	root := &cobra.Command{
		Use:   "toprompt [flags] <file|dir> [file|dir ...]",
		Short: "Copy source files to the clipboard as labeled code blocks",
		Long: `toprompt gathers source files, formats each as a labeled fenced code
block, and places the concatenated result on the system clipboard.

Examples:
  toprompt main.go util.go   # copy specific files
  toprompt .                 # copy all files in the current folder (non-recursive)
  toprompt -r .              # recurse through subfolders
  toprompt -i .              # apply .gitignore rules
  toprompt -ri .             # both`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Paths = args
			for _, pat := range strings.Split(ignoreList, ",") {
				if pat = strings.TrimSpace(pat); pat != "" {
					cfg.IgnorePatterns = append(cfg.IgnorePatterns, pat)
				}
			}
			cfg.Finalize()
			return app.New(cfg).Run()
		},
	}

	root.Flags().BoolVarP(&cfg.Recursive, "recursive", "r", false, "process directories recursively")
	root.Flags().BoolVarP(&cfg.UseGitignore, "gitignore", "i", false, "use .gitignore files to exclude files/directories")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output (show ignored files)")
	root.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress informational output")
	root.Flags().BoolVar(&cfg.NoColor, "no-color", false, "disable color output")
	root.Flags().StringVar(&ignoreList, "ignore", "", "extra ignore patterns (comma-separated, gitignore syntax)")
	root.Flags().StringVarP(&cfg.OutputFile, "output", "o", "", "write to a file instead of the clipboard")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
