package main

import "fmt"

// Run executes the queue list command.
func (c *QueueListCmd) Run(deps *Dependencies) error {
	items, err := deps.Queue.Read(deps.Ctx)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, items)
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "Queue is empty")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", item.AddedAt.Format("2006-01-02 15:04"), item.URL)
	}
	return nil
}

// Run executes the queue clear command.
func (c *QueueClearCmd) Run(deps *Dependencies) error {
	if err := deps.Queue.Clear(deps.Ctx); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, "Queue cleared")
	return nil
}
