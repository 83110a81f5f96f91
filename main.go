package main

import "github.com/colvahr/backoffice/cmd"

func main() {
	cmd.Execute()
}
