package main

import "fooddelivery/cmd"

func main() {
	cmd.Execute()
}
