// Package dsdoc extracts machine-readable design-system metadata from
// component documentation sites. It scrapes a site's story index and
// per-component documentation pages into a normalized schema describing
// every component's props, control types, categories and usage variants,
// suitable for downstream AI-assisted code generation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, figma/).
package dsdoc
