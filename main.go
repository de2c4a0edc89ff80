package main

import "github.com/flowdesk/flowdesk/cmd"

func main() {
	cmd.Execute()
}
