package main

import "eshop-catalog/cmd"

func main() {
	cmd.Execute()
}
