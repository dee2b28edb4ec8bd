//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of mad-coral requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/coral-view` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal view use ./cmd/coral-term; for images use ./cmd/coral.")
	os.Exit(2)
}
