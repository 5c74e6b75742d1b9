package main

import "github.com/avolkov/bookdesk/internal/cmd"

func main() {
	cmd.Execute()
}
