//go:build webview

package main

import (
	webview "github.com/webview/webview_go"
)

// runUI opens the assessment page in an embedded browser window and blocks
// until the window is closed.
func runUI(url string) error {
	w := webview.New(false)
	defer w.Destroy()

	w.SetTitle("Stormwater Assessment")
	w.SetSize(1200, 800, webview.HintNone)
	w.Navigate(url)

	w.Run()
	return nil
}
