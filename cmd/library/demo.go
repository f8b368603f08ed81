package main

import (
	"io"

	"go.uber.org/zap"
)

// demoScript walks an empty library through add, show and remove.
var demoScript = []string{
	"add Book A",
	"add Book B",
	"show 1",
	"remove 1",
	"show 1",
	"all",
}

func runDemo(logger *zap.Logger, out io.Writer) error {
	r := newREPL(logger, out, "")
	for _, line := range demoScript {
		if _, err := io.WriteString(out, "> "+line+"\n"); err != nil {
			return err
		}
		r.exec(line)
	}
	return nil
}
