package main

import "unipick/cmd"

func main() {
	cmd.Execute()
}
