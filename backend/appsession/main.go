// Command appsession runs the native command backend of the task-list shell.
package main

import (
	"log"
	"os"

	"github.com/viant/appsession/backend"
)

func main() {
	if err := backend.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
