package main

import "championship-pipeline/cmd"

func main() {
	cmd.Execute()
}
