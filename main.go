package main

import "github.com/CosmoTheDev/cmsprobe/cmd"

func main() {
	cmd.Execute()
}
