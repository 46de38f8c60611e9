//go:build !webview

package main

import "errors"

// runUI is a stub for headless builds.
func runUI(_ string) error {
	return errors.New("embedded UI not available in this build; rebuild with -tags webview or open the page in a browser")
}
