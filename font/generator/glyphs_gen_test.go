package main

import (
	"os"
	"testing"

	"github.com/jetsetilly/hexfont/test"
)

// the committed table must be the same as the table produced by running the
// generator over the current definitions file
func TestGeneratedTableIsCurrent(t *testing.T) {
	output, err := generate(definitionsFile)
	test.DemandSuccess(t, err)

	current, err := os.ReadFile(generatedGoFile)
	test.DemandSuccess(t, err)

	if string(output) != string(current) {
		t.Errorf("%s is out of date. run go generate in the font/generator directory", generatedGoFile)
	}
}
