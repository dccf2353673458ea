package main

import (
	"fmt"

	"github.com/jarvis322/namescan"
)

// Run executes the names command.
func (c *NamesCmd) Run(deps *Dependencies) error {
	dict := namescan.NewDictionary(namescan.BaseNames()...)
	for _, name := range deps.Config.Names {
		dict.Add(name)
	}
	if c.NamesFile != "" {
		names, err := readNamesFile(c.NamesFile)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", namescan.ErrorMessage(err))
			return err
		}
		for _, name := range names {
			dict.Add(name)
		}
	}
	for _, name := range c.Name {
		dict.Add(name)
	}

	for _, name := range dict.Names() {
		if c.Links {
			fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", name, deps.Normalize(name), namescan.SearchURL(name, deps.Normalize))
		} else {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", name, deps.Normalize(name))
		}
	}

	return nil
}
