package main

import "toolbelt-go/cmd/toolbelt"

func main() {
	toolbelt.Execute()
}
