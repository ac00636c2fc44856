package main

import "github.com/lukman83/sportvision-scrap/cmd"

func main() {
	cmd.Execute()
}
