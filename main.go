package main

import "github.com/rowanlk/passbook/cmd"

func main() {
	cmd.Execute()
}
