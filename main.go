/*
Copyright © 2022 Daniils Petrovs <thedanpetrov@gmail.com>

*/
package main

import "github.com/DaniruKun/circle-tracker/cmd"

func main() {
	cmd.Execute()
}
