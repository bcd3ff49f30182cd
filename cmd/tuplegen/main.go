// The tuplegen command regenerates the per-arity source files of the
// tuplejoin module: the tuple struct types, the join/split relation
// table and the push/pop layer. It is normally invoked through go
// generate from the module root.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tuplekit/tuplejoin/internal/gen"
)

func main() {
	root := &cobra.Command{
		Use:          "tuplegen",
		Short:        "Regenerate the tuple, join and append source files",
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().IntP("max", "n", gen.DefaultMax, "maximum arity of a single operand")
	root.Flags().StringP("dir", "d", ".", "module root to write the generated files into")
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tuplegen: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	max, _ := cmd.Flags().GetInt("max")
	dir, _ := cmd.Flags().GetString("dir")
	files, err := gen.Files(gen.ModulePath, max)
	if err != nil {
		return err
	}
	for _, f := range files {
		name := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(name), 0o777); err != nil {
			return errors.Wrap(err, "create output directory")
		}
		if err := os.WriteFile(name, f.Data, 0o666); err != nil {
			return errors.Wrapf(err, "write %s", f.Name)
		}
		fmt.Printf("wrote %s\n", name)
	}
	return nil
}
