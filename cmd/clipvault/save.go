package main

import (
	"fmt"
	"strings"

	"github.com/ewozniak/clipvault/save"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	if c.Queue {
		return c.enqueue(deps)
	}

	result := deps.Saver.SaveOne(deps.Ctx, c.URL, save.Options{
		Tags:   splitTags(c.Tags),
		DryRun: c.DryRun,
	})

	if err := printResult(deps.Stdout, result, c.JSON); err != nil {
		return err
	}

	if result.Failure != nil {
		return fmt.Errorf("save failed: %s", result.Failure.Message)
	}
	return nil
}

// enqueue adds the URL to the durable queue instead of saving immediately.
func (c *SaveCmd) enqueue(deps *Dependencies) error {
	res, err := deps.Queue.Add(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, map[string]any{
			"outcome": "queued",
			"added":   res.Added,
			"reason":  res.Reason,
			"url":     c.URL,
		})
	}

	if res.Added {
		fmt.Fprintf(deps.Stdout, "Queued %s\n", c.URL)
	} else {
		fmt.Fprintf(deps.Stdout, "Not queued: %s\n", res.Reason)
	}
	return nil
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
