// Command content-check audits the site's locale catalogs. It exits non-zero
// when a locale is missing keys, has keys the default locale lacks, or
// disagrees with the default on a key's kind.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/numiflow/website/internal/content"
	"github.com/numiflow/website/internal/locale"
)

var errProblems = errors.New("catalog audit failed")

type checkFlags struct {
	dir     string
	verbose bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "content-check",
		Short: "Audit the locale catalogs for missing or mismatched keys",
		Long: `Load the locale catalogs and compare every locale against the default (en).

By default the catalogs embedded in the website binary are checked. Use --dir
to check a directory of <locale>.yaml files before they are committed.

Examples:
  content-check
  content-check --dir internal/content/locales --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(out, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "directory of <locale>.yaml files (default: embedded catalogs)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print key counts per locale")

	return cmd
}

func runCheck(out io.Writer, flags checkFlags) error {
	var (
		cat *content.Catalog
		err error
	)
	if flags.dir != "" {
		cat, err = content.Load(os.DirFS(flags.dir))
	} else {
		cat, err = content.LoadEmbedded()
	}
	if err != nil {
		return err
	}

	if flags.verbose {
		for _, loc := range locale.Supported() {
			fmt.Fprintf(out, "%s: %d keys\n", loc, len(cat.Table(loc).Keys()))
		}
	}

	problems := cat.Audit()
	for _, p := range problems {
		fmt.Fprintln(out, p.String())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problem(s)", errProblems, len(problems))
	}

	fmt.Fprintln(out, "ok")
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
