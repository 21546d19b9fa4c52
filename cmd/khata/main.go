// Command khata is a terminal client for an Ekthaa business account: login,
// customers, payment reminders, invoice totals and PDFs, category lookups.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
