// Package shell provides shell integration for the picker.
// It generates a small shell function (zp) per shell flavor that runs
// zpick in print mode and cd's into the selected directory.
package shell
