package main

import "github.com/mj1618/taskbadge/cmd"

func main() {
	cmd.Execute()
}
