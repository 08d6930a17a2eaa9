// Package testutil provides test environments for textplot commands.
//
// Key components:
//   - TestEnvironment: isolated XDG config and state directories with
//     TEXTPLOT_* variables cleared for the duration of a test
//   - File assertions built on testify
//
// Each test should get its own environment. Nothing here touches the real
// user config.
package testutil
