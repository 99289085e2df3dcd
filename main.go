package main

import (
	"github.com/lungsod/zoning-backend/cmd/app"
)

func main() {
	app.Run()
}
