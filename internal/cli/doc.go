// Package cli defines the Cobra command tree for create-rspack. The root
// command runs the interactive project creation flow; the remaining files each
// register one subcommand. Commands delegate to internal packages for the work
// and only handle flags, prompts, and output formatting.
package cli
