/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/hoteldb/cmd/hoteldb/cmd"
)

func main() {
	cmd.Execute()
}
