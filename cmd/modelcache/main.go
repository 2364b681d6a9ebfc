package main

import "github.com/deheerhoreca/Aoe-ModelCache/cmd/modelcache/commands"

func main() {
	commands.Execute()
}
