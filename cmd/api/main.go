package main

import (
	"os"

	"github.com/bioskopid/bioskop-api/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
