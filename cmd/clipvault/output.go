package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ewozniak/clipvault/save"
)

// jsonResult is the machine-readable form of a save.Result.
type jsonResult struct {
	URL     string `json:"url"`
	Outcome string `json:"outcome"`

	File      string   `json:"file,omitempty"`
	Title     string   `json:"title,omitempty"`
	Author    string   `json:"author,omitempty"`
	Source    string   `json:"source,omitempty"`
	Published string   `json:"published,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Status    string   `json:"status,omitempty"`
	DryRun    bool     `json:"dryRun,omitempty"`

	ExistingFile  string `json:"existingFile,omitempty"`
	ExistingTitle string `json:"existingTitle,omitempty"`

	Error string `json:"error,omitempty"`
}

// toJSONResult flattens a result into its serializable form.
func toJSONResult(result save.Result) jsonResult {
	out := jsonResult{URL: result.URL}
	switch {
	case result.Saved != nil:
		out.Outcome = "saved"
		out.File = result.Saved.File
		out.Title = result.Saved.Title
		out.Author = result.Saved.Author
		out.Source = result.Saved.Source
		out.Published = result.Saved.Published
		out.Tags = result.Saved.Tags
		out.Status = string(result.Saved.Status)
		out.DryRun = result.Saved.DryRun
	case result.Duplicate != nil:
		out.Outcome = "duplicate"
		out.ExistingFile = result.Duplicate.File
		out.ExistingTitle = result.Duplicate.Title
	case result.Failure != nil:
		out.Outcome = "failed"
		out.Error = result.Failure.Message
	}
	return out
}

// printResult writes one result in human or JSON form.
func printResult(w io.Writer, result save.Result, asJSON bool) error {
	if asJSON {
		return printJSON(w, toJSONResult(result))
	}

	switch {
	case result.Saved != nil:
		prefix := "Saved"
		if result.Saved.DryRun {
			prefix = "Would save"
		}
		fmt.Fprintf(w, "%s %q -> %s [%s] (%s)\n",
			prefix, result.Saved.Title, result.Saved.File,
			strings.Join(result.Saved.Tags, ", "), result.Saved.Status)
	case result.Duplicate != nil:
		title := result.Duplicate.Title
		if title == "" {
			title = result.Duplicate.File
		}
		fmt.Fprintf(w, "Already saved as %q (%s)\n", title, result.Duplicate.File)
	case result.Failure != nil:
		fmt.Fprintf(w, "Failed %s: %s\n", result.URL, result.Failure.Message)
	}
	return nil
}

// printJSONBatch writes a batch result in JSON form.
func printJSONBatch(w io.Writer, batch *save.BatchResult) error {
	results := make([]jsonResult, 0, len(batch.Results))
	for _, result := range batch.Results {
		results = append(results, toJSONResult(result))
	}
	return printJSON(w, map[string]any{
		"processed":  batch.Processed,
		"saved":      batch.Saved,
		"duplicates": batch.Duplicates,
		"failed":     batch.Failed,
		"results":    results,
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
