// Package cli implements the command-line interface of myapp.
//
// # Overview
//
// The command tree returned by NewCommand is the single description of the
// CLI. It is consumed twice: by the runtime binary (cmd/myapp), which parses
// argv and dispatches to a Handler, and by the manual page generator
// (cmd/myapp-mangen), which walks the same tree at build time. Anything added
// here is therefore documented automatically.
//
// # Commands
//
// config get - Get a configuration value:
//
//	myapp config get [--format plain|json] <KEY>
//
// config set - Set a configuration value:
//
//	myapp config set [--global] <KEY> <VALUE>
//
// server - Run the demo server:
//
//	myapp server [--port N] [--addr ADDR] [-v...]
//
// remote - Add, remove or show a remote:
//
//	myapp remote [--url URL] [--remove] <NAME>
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -V  Show version information
//
// # Parsing Without Dispatch
//
// Parse runs the same tree with a capturing handler and returns the decoded
// Invocation, which makes the CLI testable without capturing stdout:
//
//	inv, err := cli.Parse(ctx, []string{"myapp", "server", "-vv"})
//	// inv == cli.Server{Addr: "127.0.0.1", Port: 8080, Verbose: 2}
//
// # Exit Codes
//
//	0  Success
//	1  Usage error or execution failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/myapp/pkg/cli.version=1.0.0'"
package cli
