package main

import "github.com/shandysiswandi/xlplot/cmd"

func main() {
	cmd.Execute()
}
