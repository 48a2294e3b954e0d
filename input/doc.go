// Package input provides interactive terminal prompts.
//
// # Usage
//
//	pkg := input.Prompt("Java package", "com.example.app")
//	if input.Confirm("Write R.txt symbols?", false) {
//	    // User said yes
//	}
//
// The package-level functions read stdin. Commands that need to be driven
// from tests build a Prompter around their own reader and writer:
//
//	p := input.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
//	dir := p.Prompt("Output directory", "gen")
//
// # Non-Interactive Mode
//
// When stdin is closed or at EOF every prompt returns its default, so
// `kestrel init < /dev/null` writes the default configuration.
package input
