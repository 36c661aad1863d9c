// Package flags formats custom --flag values for the bundled tools.
//
// Values arrive as "name" or "name value" strings. SplitValues breaks them
// into separate argv tokens and ForTool turns names into single-dash flags.
package flags

import "strings"

// FlagPrefix is prepended to every flag passed to a bundled tool
const FlagPrefix = "-"

// ForTool returns a new slice with FlagPrefix prepended to each flag.
//
//	ForTool([]string{"v", "o"}) => ["-v", "-o"]
func ForTool(flags []string) []string {
	result := make([]string, len(flags))
	for i, flag := range flags {
		result[i] = FlagPrefix + flag
	}
	return result
}

// SplitValues splits every entry on single spaces and flattens the pieces,
// keeping their order. Quotes are not interpreted and consecutive spaces
// produce empty tokens.
//
//	SplitValues([]string{"width 512", "verbose"}) => ["width", "512", "verbose"]
func SplitValues(flags []string) []string {
	result := make([]string, 0, len(flags))
	for _, flag := range flags {
		result = append(result, strings.Split(flag, " ")...)
	}
	return result
}

// Args converts raw --flag values into argv tokens for a bundled tool.
//
//	Args([]string{"mipmaps", "quality 10"}) => ["-mipmaps", "-quality", "10"]
func Args(flags []string) []string {
	return SplitValues(ForTool(flags))
}
