// Package clipvault provides a local, CLI-based web article archiver.
// It fetches articles, extracts readable content as markdown, attaches
// structured metadata, and persists each article as a single file in a
// local vault, skipping URLs that were already saved.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, http/, trafilatura/).
package clipvault
