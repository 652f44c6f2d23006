package main

import "github.com/mouse-blink/visualize/cmd"

func main() {
	cmd.Execute()
}
