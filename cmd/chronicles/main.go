package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe()
	case "head":
		err = runHead(os.Stdout)
	case "meta":
		err = runMeta(os.Stdout)
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: chronicles inspect <file|url>")
			os.Exit(1)
		}
		err = runInspect(os.Stdout, os.Args[2])
	case "version":
		fmt.Printf("chronicles %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`chronicles - Ted's Tech Chronicles site server

Usage:
  chronicles <command> [arguments]

Commands:
  serve             Run the site server
  head              Print the rendered <head> for the home page
  meta              Print the site metadata as JSON
  inspect <target>  Print the head tags found in an HTML file or URL
  version           Print the chronicles version
  help              Show this help message

Environment:
  SITE_URL          Canonical base URL (default: authored value)
  SITE_ADDR         Listen address (default ":3000")
  SITE_STATIC_DIR   Static asset directory (default "public")
  SITE_META_FILE    Optional YAML metadata override file`)
}
