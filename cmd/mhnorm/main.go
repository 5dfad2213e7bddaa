// cmd/mhnorm/main.go
package main

import (
	"mhnorm/internal/app"
	"mhnorm/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
