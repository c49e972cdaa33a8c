package main

import (
	"github.com/Maaz-R-Khan/truck-logistics-app/cmd"
)

func main() {
	cmd.Execute()
}
