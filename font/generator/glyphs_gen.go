//go:generate go run glyphs_gen.go

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/font"
)

const definitionsFile = "../definitions.txt"
const generatedGoFile = "../table.go"

// the generated table is placed in the font package so the type is the named
// type in that package
var goOptions = emit.GoOptions{
	Generator: "hexfont/font/generator",
	Package:   "font",
	Variable:  "HexDigits",
	Type:      "Table",
}

func generate(definitions string) ([]byte, error) {
	df, err := os.Open(definitions)
	if err != nil {
		return nil, fmt.Errorf("error opening glyph definitions (%s)", err)
	}
	defer df.Close()

	tab, err := font.ParseDefinitions(df)
	if err != nil {
		return nil, err
	}

	if err := tab.Validate(); err != nil {
		return nil, err
	}

	return emit.GoSource(&tab, goOptions)
}

func main() {
	output, err := generate(definitionsFile)
	if err != nil {
		fmt.Printf("error during glyph table generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during glyph table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(output)
	if err != nil {
		fmt.Printf("error during glyph table generation: %s\n", err)
		os.Exit(10)
	}
}
