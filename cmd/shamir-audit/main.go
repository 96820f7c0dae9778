package main

import "github.com/Laisky/shamir-audit/cmd"

func main() {
	cmd.Execute()
}
