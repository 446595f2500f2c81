package cmd

import (
	"fmt"

	"github.com/go-drift/decl/pkg/loader"
)

func init() {
	RegisterCommand(&Command{
		Name:  "convert",
		Short: "Convert a description between formats",
		Long: `Read a description file and write it in the format implied by the output
extension: .json, .json5, .yaml/.yml, .toml or .xml.

JSON5 output is plain JSON, which every JSON5 reader accepts.`,
		Usage: "decl convert <in> <out>",
		Run:   runConvert,
	})
}

func runConvert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("convert requires an input and an output file")
	}
	return convert(args[0], args[1])
}

func convert(in, out string) error {
	root, err := loader.Auto().Load(in)
	if err != nil {
		return err
	}
	if err := loader.WriteFile(out, root); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d widgets)\n", out, root.Count())
	return nil
}
