// cmd/mhnorm-summary/main.go
package main

import (
	"mhnorm/internal/appshell"
	"mhnorm/internal/summaryapp"
)

func main() {
	appshell.Main(summaryapp.RunContext)
}
