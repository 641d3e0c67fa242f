package main

import "github.com/wabot-sh/wabot/internal/cmd"

func main() {
	cmd.Execute()
}
