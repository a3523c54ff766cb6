package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// inputFile is the on-disk element source accepted by --input.
//
//	elements = ["red", "green", "blue"]
//	second   = ["s", "m"]        # product only
type inputFile struct {
	Elements []string `toml:"elements"`
	Second   []string `toml:"second"`
}

var errNoElements = errors.New("cli: no elements given (positional args or --input file)")

// loadInput reads and decodes a TOML element file.
func loadInput(path string) (inputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inputFile{}, fmt.Errorf("read input: %w", err)
	}
	var in inputFile
	if err := toml.Unmarshal(data, &in); err != nil {
		return inputFile{}, fmt.Errorf("decode input: %w", err)
	}

	return in, nil
}

// resolveElements picks the element sequence for a command: positional
// args win, then the --input file's elements table. Empty both ways is an
// error — every enumerable space here needs a source.
func resolveElements(args []string, inputPath string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if inputPath == "" {
		return nil, errNoElements
	}
	in, err := loadInput(inputPath)
	if err != nil {
		return nil, err
	}
	if len(in.Elements) == 0 {
		return nil, errNoElements
	}

	return in.Elements, nil
}
