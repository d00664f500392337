// Command cursorctl inspects, renders and plays Xcursor themes.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
