package main

import "github.com/alexvitali001/rust-mc-theo/cmd"

func main() {
	cmd.Execute()
}
