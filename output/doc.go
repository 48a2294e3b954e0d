// Package output provides styled terminal messages for the kestrel CLI.
//
// # Usage
//
//	output.Success("Generated gen/com/example/app/R.java")
//	output.Info("Next steps:")
//	output.Step("kestrel check")
//	output.Error("manifest has 2 validation errors")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("Loaded 42 resources from resources.yml")
//
// # Destination
//
// Messages go to stdout unless SetWriter redirects them, which commands
// do so that cobra's configured output and tests see the same stream.
//
// # Styling
//
//   - Success: 🪶 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
