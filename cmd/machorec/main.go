/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/machorec/cmd/machorec/cmd"

func main() {
	cmd.Execute()
}
