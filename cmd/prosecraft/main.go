package main

import (
	"os"

	"prosecraft/internal/log"
)

func main() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}
