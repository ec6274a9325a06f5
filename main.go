package main

import "github.com/qupu/jianpu/cmd"

func main() {
	cmd.Execute()
}
