package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/tilewalk/internal/placeholders"
)

func main() {
	dir := flag.String("dir", "assets", "directory to write placeholder sprites into")
	flag.Parse()

	fmt.Println("Tilewalk Placeholder Graphics Generator")
	fmt.Println("=======================================")
	fmt.Println()

	written, err := placeholders.GenerateAndSave(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
}
