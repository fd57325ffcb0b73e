package main

import (
	"artscout/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
