// Package fileutil holds small filesystem helpers shared by the CLI and the
// caption compiler.
package fileutil
