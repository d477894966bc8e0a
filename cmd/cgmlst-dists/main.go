// cmd/cgmlst-dists/main.go
package main

import (
	"cgmlst-dists/internal/app"
	"cgmlst-dists/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
