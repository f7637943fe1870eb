// Package widget renders the primitive surfaces of the dashboard: bordered
// panes, centered overlays, the help overlay, selectable lists, and text
// fields. Widgets hold only focus flags and titles; list selection and text
// editing state live in internal/ui/state so they can be tested without a
// terminal. Every render function returns a block of exactly the requested
// width and height so callers can join or composite blocks freely.
package widget
