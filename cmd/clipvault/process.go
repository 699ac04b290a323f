package main

import (
	"fmt"

	"github.com/ewozniak/clipvault/save"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	batch, err := deps.Saver.ProcessQueue(deps.Ctx, save.Options{
		Tags:   splitTags(c.Tags),
		DryRun: c.DryRun,
	})
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSONBatch(deps.Stdout, batch)
	}

	for _, result := range batch.Results {
		if err := printResult(deps.Stdout, result, false); err != nil {
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Processed %d: %d saved, %d duplicates, %d failed\n",
		batch.Processed, batch.Saved, batch.Duplicates, batch.Failed)
	return nil
}
