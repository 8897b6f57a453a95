package main

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/intuitionamiga/sicasm/assembler"
)

type options struct {
	outDir  string
	listing bool
	quiet   bool
	color   bool
}

// report is the outcome of assembling one source file.
type report struct {
	path    string
	result  *assembler.Result
	listing []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "sicasm [flags] source.asm [source.asm...]",
		Short: "Two-pass assembler for the SIC instruction set",
		Long: `Sicasm assembles SIC assembly source into object programs made of
Header, Text and End records.

Each source file produces <name>.obj in the output directory. Several files
may be given; they are assembled concurrently and the first error stops the
run. No object file is written for a source that fails to assemble.

Examples:
  sicasm copy.asm
  sicasm -o build -l prog1.asm prog2.asm
`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// glog checks that the standard flag set has been parsed.
			if err := goflag.CommandLine.Parse([]string{}); err != nil {
				return err
			}
			opts.color = isTerminal(cmd.OutOrStdout())
			return run(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", ".", "directory for object files")
	cmd.Flags().BoolVarP(&opts.listing, "listing", "l", false, "print the assembly listing")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress diagnostics")
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// checkObjectNames rejects inputs that would write the same object file.
func checkObjectNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := assembler.ObjectFileName(path)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both produce %s", prev, path, name)
		}
		seen[name] = path
	}
	return nil
}

func run(ctx context.Context, stdout io.Writer, paths []string, opts options) error {
	if err := checkObjectNames(paths); err != nil {
		return err
	}
	reports := make([]report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			asm := assembler.NewAssembler()
			asm.SetListingMode(opts.listing)
			res, err := asm.AssembleFile(ctx, path, opts.outDir)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report{path: path, result: res, listing: asm.GetListing()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.quiet {
		return nil
	}
	printer := pp.New()
	printer.SetOutput(stdout)
	printer.SetColoringEnabled(opts.color)
	for _, r := range reports {
		printReport(stdout, printer, r)
	}
	return nil
}

func printReport(w io.Writer, printer *pp.PrettyPrinter, r report) {
	res := r.result
	tokens := make([][]string, len(res.Lines))
	for i, line := range res.Lines {
		tokens[i] = line.Tokens
	}

	fmt.Fprintf(w, "[FILE] %s\n", r.path)
	fmt.Fprint(w, "[TOKENS] ")
	printer.Println(tokens)
	fmt.Fprint(w, "[SYM TABLE] ")
	printer.Println(res.Symbols.Symbols())
	if len(r.listing) > 0 {
		fmt.Fprintln(w, "[LISTING]")
		for _, l := range r.listing {
			fmt.Fprintln(w, l)
		}
	}
	fmt.Fprintf(w, "[PROG_LEN] %d (0x%06X)\n", res.FinalLength, res.FinalLength)
	fmt.Fprintf(w, "[OBJECT] %s\n", res.ObjectPath)
}
