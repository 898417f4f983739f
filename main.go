package main

import "github.com/ankurkotwal/quotecard/cmd"

func main() {
	cmd.Execute()
}
