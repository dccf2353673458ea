package main

import (
	"fmt"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	resolve := deps.Resolver.Resolve
	if c.Refresh {
		resolve = deps.Resolver.Refresh
	}

	docs, status := resolve(deps.Ctx)

	fmt.Fprintf(deps.Stderr, "index: %s\n", status)
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for i, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%3d  %s  %s\n", i+1, doc.Title, doc.URL)
	}

	return nil
}
