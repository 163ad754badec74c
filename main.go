package main

import "github.com/frida/v8-codegen/cmd"

func main() {
	cmd.Execute()
}
