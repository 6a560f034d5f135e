// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML configuration at ~/.namereg/config.toml, reloaded on
//     change through fsnotify
package file
