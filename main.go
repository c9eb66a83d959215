package main

import "github.com/nightcatdev/aiwrap/cmd"

func main() {
	cmd.Execute()
}
