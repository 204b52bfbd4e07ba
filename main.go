package main

import "github.com/spendlens/backend/cmd"

func main() {
	cmd.Execute()
}
